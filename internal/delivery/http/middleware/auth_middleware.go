// Package middleware contains the HTTP middleware of the API server.
package middleware

import (
	"strings"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyAuthUser is the echo.Context key holding the resolved *entity.User.
const keyAuthUser = "authUser"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and re-resolves the account from
// storage, so deleted accounts are rejected even with a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenMissing.ErrorCode(), domainerrors.ErrTokenMissing.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		SetAuthUser(c, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that gates a route to the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetAuthUser(c)
			if user == nil {
				return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
		}
	}
}

// SetAuthUser stores the authenticated user on the echo context.
func SetAuthUser(c echo.Context, user *entity.User) {
	c.Set(keyAuthUser, user)
}

// GetAuthUser returns the authenticated user, or nil when the route is not
// behind Authenticate.
func GetAuthUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyAuthUser).(*entity.User)

	return user
}
