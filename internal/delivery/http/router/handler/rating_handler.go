package handler

import (
	"log/slog"
	"net/http"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler holds dependencies for rating handlers
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// SubmitRatingRequest represents the rating submission body. The author is
// always the authenticated caller.
type SubmitRatingRequest struct {
	StoreID uint `json:"store_id" validate:"required"`
	Rating  int  `json:"rating" validate:"required"`
}

// SubmitRating handles the rating upsert.
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
	}

	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if req.Rating < entity.RatingMin || req.Rating > entity.RatingMax {
		return response.BadRequest(c, domainerrors.ErrRatingOutOfRange.ErrorCode(), domainerrors.ErrRatingOutOfRange.Message())
	}

	rating, err := h.ratingUC.SubmitRating(c.Request().Context(), actor, &usecase.SubmitRatingInput{
		StoreID: req.StoreID,
		Rating:  req.Rating,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating submitted successfully")
}

// GetUserRatingForStore handles looking up the caller's own rating for one
// store. Callers can only read their own rating.
func (h *RatingHandler) GetUserRatingForStore(c echo.Context) error {
	actor := middleware.GetAuthUser(c)
	if actor == nil {
		return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
	}

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}
	storeID, err := parseUintParam(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	if actor.ID != userID && actor.Role != entity.RoleAdmin {
		return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
	}

	rating, err := h.ratingUC.GetOwnRating(c.Request().Context(), userID, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating, "")
}

// GetStoreRatings handles the public rating listing of a store.
func (h *RatingHandler) GetStoreRatings(c echo.Context) error {
	storeID, err := parseUintParam(c, "storeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	ratings, err := h.ratingUC.ListStoreRatings(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings, "")
}
