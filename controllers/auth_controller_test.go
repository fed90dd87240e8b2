package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"storefront/controllers"
	"storefront/models"
	"storefront/services"
)

type mockAuthSvc struct {
	user  *models.User
	token string
	err   *services.ServiceError
}

func (m *mockAuthSvc) Signup(_ context.Context, _ *services.SignupRequest) (*models.User, string, *services.ServiceError) {
	return m.user, m.token, m.err
}

func (m *mockAuthSvc) Login(_ context.Context, _ *services.LoginRequest) (*models.User, string, *services.ServiceError) {
	return m.user, m.token, m.err
}

func setupAuthRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := controllers.NewAuthController(svc)
	r.POST("/api/signup", ac.Signup)
	r.POST("/api/login", ac.Login)
	return r
}

func TestSignup_Created(t *testing.T) {
	svc := &mockAuthSvc{
		user:  &models.User{ID: uuid.New(), Email: "jane@example.com", Fullname: "Jane Doe", UserName: "jane"},
		token: "signed-token",
	}
	r := setupAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/signup", gin.H{
		"email": "jane@example.com", "password": "hunter22", "fullname": "Jane Doe", "userName": "jane",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	body := envelope(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed-token", body["token"])

	user, ok := body["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", user["email"])
	// password hash never leaves the server
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestSignup_MissingFields(t *testing.T) {
	r := setupAuthRouter(&mockAuthSvc{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/signup", gin.H{
		"email": "jane@example.com",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", envelope(t, w)["message"])
}

func TestLogin_InvalidCredentialsPassThrough(t *testing.T) {
	svc := &mockAuthSvc{err: &services.ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email or password"}}
	r := setupAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", gin.H{
		"email": "jane@example.com", "password": "wrong",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := envelope(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestLogin_Success(t *testing.T) {
	svc := &mockAuthSvc{
		user:  &models.User{ID: uuid.New(), Email: "jane@example.com"},
		token: "signed-token",
	}
	r := setupAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login", gin.H{
		"email": "jane@example.com", "password": "hunter22",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed-token", body["token"])
}
