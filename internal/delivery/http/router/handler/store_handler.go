package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// CreateStoreRequest represents the store creation request body. OwnerID
// accepts a number, a numeric string or an empty string (treated as absent).
type CreateStoreRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=60"`
	Email   string          `json:"email" validate:"required,email"`
	Address string          `json:"address" validate:"max=400"`
	OwnerID json.RawMessage `json:"owner_id"`
}

// ownerID normalizes the raw owner_id field to a *uint.
func (r *CreateStoreRequest) ownerID() (*uint, error) {
	raw := string(r.OwnerID)
	if raw == "" || raw == "null" || raw == `""` {
		return nil, nil
	}

	var asNumber uint
	if err := json.Unmarshal(r.OwnerID, &asNumber); err == nil {
		return &asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(r.OwnerID, &asString); err != nil {
		return nil, err
	}
	parsed, err := strconv.ParseUint(asString, 10, 32)
	if err != nil {
		return nil, err
	}
	value := uint(parsed)

	return &value, nil
}

// ListStores handles the public store listing with rating aggregates.
func (h *StoreHandler) ListStores(c echo.Context) error {
	filter := repository.StoreFilter{
		Name:      c.QueryParam("name"),
		Email:     c.QueryParam("email"),
		Address:   c.QueryParam("address"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	stores, err := h.storeUC.ListStores(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// GetStore handles the single-store lookup. When the path id misses, an
// optional ?email= query serves as the fallback key.
func (h *StoreHandler) GetStore(c echo.Context) error {
	id, err := parseUintParam(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), id, c.QueryParam("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// CreateStore handles admin store creation.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ownerID, err := req.ownerID()
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "owner_id must be a positive integer")
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// GetStoreRaters handles the rater listing of a store. Admin or store owner
// only.
func (h *StoreHandler) GetStoreRaters(c echo.Context) error {
	id, err := parseUintParam(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	details, err := h.storeUC.GetStoreDetails(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "")
}
