package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/model"
	"statusfeed/internal/service"
	"statusfeed/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	// handlers are exercised without the router, so the custom binding
	// rule has to be registered here too
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

func TestRespondDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation failure maps to 400",
			err:    apperrors.Validation("text", "Status cannot be empty"),
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid credentials map to 401",
			err:    apperrors.ErrInvalidCredentials,
			status: http.StatusUnauthorized,
		},
		{
			name:   "not found maps to 404",
			err:    apperrors.NotFound("status", 7),
			status: http.StatusNotFound,
		},
		{
			name:   "duplicate username maps to 409",
			err:    apperrors.ErrDuplicateUsername,
			status: http.StatusConflict,
		},
		{
			name:   "storage error maps to 500",
			err:    apperrors.Storage(errors.New("disk I/O error")),
			status: http.StatusInternalServerError,
		},
		{
			name:   "unexpected error maps to 500",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			respondDomainError(ctx, tt.err)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondDomainErrorValidationBody(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	respondDomainError(ctx, apperrors.Validation("text", "Status cannot be empty"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "text", body["field"])
	assert.Equal(t, []any{"Status cannot be empty"}, body["reasons"])
}

func TestRespondDomainErrorHidesStorageDetail(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	respondDomainError(ctx, apperrors.Storage(errors.New("disk I/O error")))

	assert.NotContains(t, w.Body.String(), "disk I/O error")
}

// stubUserService lets handler tests pick the outcome the service reports.
type stubUserService struct {
	registerErr error
}

var _ service.UserService = (*stubUserService)(nil)

func (s *stubUserService) Register(username, password string) (*model.User, error) {
	return nil, s.registerErr
}

func (s *stubUserService) Authenticate(username, password string) (*model.User, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (s *stubUserService) LoginExternal(email, displayName string) (*model.User, error) {
	return nil, apperrors.ErrDuplicateUsername
}

func (s *stubUserService) GetUserByID(id uint) (*model.User, error) {
	return nil, apperrors.NotFound("user", id)
}

func (s *stubUserService) GetUserByUsername(username string) (*model.User, error) {
	return nil, apperrors.NotFound("user", username)
}

func (s *stubUserService) Exists(username string) (bool, error) {
	return false, nil
}

func (s *stubUserService) DeleteUser(id uint) error {
	return nil
}

func TestRegisterRejectionCarriesStrength(t *testing.T) {
	reasons := []string{
		"Password must be at least 8 characters",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
		"Password must contain at least one special character",
	}
	c := NewUserController(
		&stubUserService{registerErr: apperrors.Validation("password", reasons...)},
		logger.NewNop(),
	)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"username":"bob","password":"short","confirm_password":"short"}`))
	ctx.Request.Header.Set("Content-Type", "application/json")

	c.Register(ctx)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "password", body["field"])
	assert.Equal(t, "Very Weak", body["strength"])
	assert.Len(t, body["reasons"], len(reasons))
}

func TestRegisterDuplicateHasNoStrength(t *testing.T) {
	c := NewUserController(
		&stubUserService{registerErr: apperrors.ErrDuplicateUsername},
		logger.NewNop(),
	)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"username":"alice","password":"Passw0rd!","confirm_password":"Passw0rd!"}`))
	ctx.Request.Header.Set("Content-Type", "application/json")

	c.Register(ctx)

	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "strength")
}
