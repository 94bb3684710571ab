package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edunexus/edunexus-backend/internal/app/models/dto"
	"github.com/edunexus/edunexus-backend/internal/pkg/apperrors"
)

// stubAuthService returns canned results for controller tests
type stubAuthService struct {
	registerResp *dto.AuthResponse
	registerErr  error
	loginResp    *dto.AuthResponse
	loginErr     error
}

func (s *stubAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc, zerolog.Nop())
	router.POST("/api/auth/register", controller.Register)
	router.POST("/api/auth/login", controller.Login)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Success(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &dto.AuthResponse{
			Token: "signed.jwt.token",
			User: dto.UserResponse{
				ID:        "64b0c9f1a2b3c4d5e6f70809",
				Email:     "a@b.com",
				FirstName: "A",
				LastName:  "B",
				Role:      "student",
			},
		},
	}
	router := newAuthTestRouter(svc)

	w := postJSON(t, router, "/api/auth/register", gin.H{
		"email": "a@b.com", "password": "secret1",
		"firstName": "A", "lastName": "B", "role": "student",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	// The projection never carries the password hash
	assert.NotContains(t, user, "password")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{registerErr: apperrors.ErrEmailAlreadyExists})

	w := postJSON(t, router, "/api/auth/register", gin.H{"email": "a@b.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Email already exists", body.Message)
}

func TestRegisterEndpoint_InvalidRole(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{registerErr: apperrors.ErrInvalidRole})

	w := postJSON(t, router, "/api/auth/register", gin.H{"email": "a@b.com", "role": "teacher"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid role. Must be one of: student, instructor, admin", body.Message)
}

func TestRegisterEndpoint_ValidationError(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{
		registerErr: apperrors.NewValidationError("Password must be at least 6 characters long"),
	})

	w := postJSON(t, router, "/api/auth/register", gin.H{"email": "a@b.com", "password": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Password must be at least 6 characters long", body.Message)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := postJSON(t, router, "/api/auth/login", gin.H{"email": "a@b.com", "password": "wrong"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid credentials", body.Message)
}

func TestLoginEndpoint_UnexpectedError(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginErr: assert.AnError})

	w := postJSON(t, router, "/api/auth/login", gin.H{"email": "a@b.com", "password": "secret1"})

	// Internal details never reach the client
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body.Message)
}

func TestLoginEndpoint_MalformedBody(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
