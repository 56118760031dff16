package handler

import (
	"net/http"
	"testing"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	mockUsecase "ratehub/internal/mocks/usecase"
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	authUC := &mockUsecase.MockAuthUsecase{}
	h := &AuthHandler{authUC: authUC, logger: discardLogger()}

	body := `{"name":"Jonathan Doe Example Person","email":"jon@example.com","password":"Password1!","address":"1 Example Road"}`
	c, rec := newTestContext(http.MethodPost, "/api/register", body)

	authUC.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthResult{
			Token: "token-xyz",
			User:  &entity.User{ID: 7, Role: entity.RoleNormal},
		}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-xyz")
}

func TestAuthHandler_Register_ShortNameRejected(t *testing.T) {
	authUC := &mockUsecase.MockAuthUsecase{}
	h := &AuthHandler{authUC: authUC, logger: discardLogger()}

	body := `{"name":"Jon","email":"jon@example.com","password":"Password1!"}`
	c, rec := newTestContext(http.MethodPost, "/api/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	authUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_BadEmailRejected(t *testing.T) {
	authUC := &mockUsecase.MockAuthUsecase{}
	h := &AuthHandler{authUC: authUC, logger: discardLogger()}

	body := `{"name":"Jonathan Doe Example Person","email":"not-an-email","password":"Password1!"}`
	c, rec := newTestContext(http.MethodPost, "/api/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authUC := &mockUsecase.MockAuthUsecase{}
	h := &AuthHandler{authUC: authUC, logger: discardLogger()}

	body := `{"email":"jane@store.com","password":"wrong"}`
	c, rec := newTestContext(http.MethodPost, "/api/login", body)

	authUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Me(t *testing.T) {
	authUC := &mockUsecase.MockAuthUsecase{}
	h := &AuthHandler{authUC: authUC, logger: discardLogger()}

	c, rec := newTestContext(http.MethodGet, "/api/me", "")
	middleware.SetAuthUser(c, &entity.User{ID: 5})

	authUC.On("GetProfile", mock.Anything, uint(5)).
		Return(&entity.User{ID: 5, Email: "me@example.com", Role: entity.RoleNormal}, nil)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}
