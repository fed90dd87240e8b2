package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/models"
	"storefront/repository"
)

// SignupRequest carries a registration payload.
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Fullname string `json:"fullname" binding:"required"`
	UserName string `json:"userName" binding:"required"`
}

// LoginRequest carries a login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService registers accounts and issues signed credentials.
type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*models.User, string, *ServiceError)
	Login(ctx context.Context, req *LoginRequest) (*models.User, string, *ServiceError)
}

type authServiceImpl struct {
	repo   repository.UserRepo
	secret []byte
	logger *zap.Logger
}

func NewAuthService(repo repository.UserRepo, secret []byte, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		repo:   repo,
		secret: secret,
		logger: logger,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, req *SignupRequest) (*models.User, string, *ServiceError) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", &ServiceError{StatusCode: http.StatusBadRequest, Message: "User already exists with this email"}
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during signup", Err: err}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during signup", Err: err}
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		Fullname: req.Fullname,
		UserName: req.UserName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during signup", Err: err}
	}

	token, err := GenerateToken(s.secret, user.ID.String(), user.Email)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during signup", Err: err}
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return user, token, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *LoginRequest) (*models.User, string, *ServiceError) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same message as a wrong password so valid emails are
			// not enumerable.
			return nil, "", &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during login", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}
	}

	token, err := GenerateToken(s.secret, user.ID.String(), user.Email)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error during login", Err: err}
	}

	return user, token, nil
}
