package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	mockRepo "ratehub/internal/mocks/repository"
	mockService "ratehub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&mockService.MockTokenService{}, &mockRepo.MockUserRepository{})

	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&mockService.MockTokenService{}, &mockRepo.MockUserRepository{})

	c, rec := newAuthTestContext("Basic abc123")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_Authenticate_DeletedAccountRejected(t *testing.T) {
	tokens := &mockService.MockTokenService{}
	userRepo := &mockRepo.MockUserRepository{}
	m := NewAuthMiddleware(tokens, userRepo)

	tokens.On("ValidateToken", "valid-token").
		Return(&service.TokenClaims{UserID: 42, Email: "gone@example.com", Role: entity.RoleNormal}, nil)
	userRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, repository.ErrUserNotFound)

	c, rec := newAuthTestContext("Bearer valid-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsAuthUser(t *testing.T) {
	tokens := &mockService.MockTokenService{}
	userRepo := &mockRepo.MockUserRepository{}
	m := NewAuthMiddleware(tokens, userRepo)

	stored := &entity.User{ID: 42, Email: "here@example.com", Role: entity.RoleStoreOwner}
	tokens.On("ValidateToken", "valid-token").
		Return(&service.TokenClaims{UserID: 42}, nil)
	userRepo.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)

	c, rec := newAuthTestContext("Bearer valid-token")

	var seen *entity.User
	handler := func(c echo.Context) error {
		seen = GetAuthUser(c)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stored, seen)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(&mockService.MockTokenService{}, &mockRepo.MockUserRepository{})

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		SetAuthUser(c, &entity.User{ID: 1, Role: entity.RoleAdmin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		SetAuthUser(c, &entity.User{ID: 3, Role: entity.RoleStoreOwner})

		require.NoError(t, m.RequireRole(entity.RoleAdmin, entity.RoleStoreOwner)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		SetAuthUser(c, &entity.User{ID: 2, Role: entity.RoleNormal})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		c, rec := newAuthTestContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
