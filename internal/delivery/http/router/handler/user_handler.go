package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user management handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the admin account creation request body
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,oneof=admin normal store_owner"`
}

// UpdatePasswordRequest represents the password change request body
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ListUsers handles the filtered, sorted user listing. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Name:      c.QueryParam("name"),
		Email:     c.QueryParam("email"),
		Address:   c.QueryParam("address"),
		Role:      entity.Role(c.QueryParam("role")),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	if filter.Role != "" && !filter.Role.Valid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "role must be one of admin, normal, store_owner")
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// CreateUser handles admin account creation with an explicit role.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// GetUser handles the single-user lookup. Admin only.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUintParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdatePassword handles the password change of the target account. The
// actor must be the target or an admin; the usecase enforces that.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
	}

	targetID, err := parseUintParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUC.UpdatePassword(c.Request().Context(), actor, targetID, &usecase.UpdatePasswordInput{
		Password: req.Password,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// parseUintParam parses a positive integer path parameter.
func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(value), nil
}
