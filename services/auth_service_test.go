package services_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/models"
	"storefront/repository"
	"storefront/services"
)

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) EnsureIndexes(_ context.Context) error { return nil }

var authTestSecret = []byte("test-secret")

func newTestAuthService(repo repository.UserRepo) services.AuthService {
	return services.NewAuthService(repo, authTestSecret, zap.NewNop())
}

func signupReq() *services.SignupRequest {
	return &services.SignupRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
		Fullname: "Jane Doe",
		UserName: "jane",
	}
}

func TestSignup_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	user, token, svcErr := svc.Signup(context.Background(), signupReq())
	assert.Nil(t, svcErr)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return authTestSecret, nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "jane@example.com", claims["email"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	_, _, svcErr := svc.Signup(context.Background(), signupReq())
	assert.Nil(t, svcErr)

	_, _, svcErr = svc.Signup(context.Background(), signupReq())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "User already exists with this email", svcErr.Message)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)
	_, _, _ = svc.Signup(context.Background(), signupReq())

	user, token, svcErr := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	assert.Nil(t, svcErr)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestLogin_WrongPasswordAndUnknownEmailShareMessage(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)
	_, _, _ = svc.Signup(context.Background(), signupReq())

	_, _, wrongPw := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "jane@example.com",
		Password: "nope",
	})
	_, _, unknown := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ghost@example.com",
		Password: "nope",
	})

	assert.NotNil(t, wrongPw)
	assert.NotNil(t, unknown)
	assert.Equal(t, 400, wrongPw.StatusCode)
	assert.Equal(t, wrongPw.Message, unknown.Message)
}
