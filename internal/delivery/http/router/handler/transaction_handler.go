package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler holds dependencies for the sales-record reporting handlers
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// ListTransactions handles the paginated, searchable listing.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return response.BadRequest(c, "VALIDATION_ERROR", "Page must be a positive integer")
	}

	limit, err := queryInt(c, "limit", 10)
	if err != nil || limit < 1 || limit > 100 {
		return response.BadRequest(c, "VALIDATION_ERROR", "Limit must be between 1 and 100")
	}

	month, err := queryMonth(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Month must be between 1 and 12")
	}

	result, err := h.transactionUC.ListTransactions(c.Request().Context(), repository.TransactionQuery{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Month:  month,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetStatistics handles the sold/unsold totals, optionally month-scoped.
func (h *TransactionHandler) GetStatistics(c echo.Context) error {
	month, err := queryMonth(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Month must be between 1 and 12")
	}

	stats, err := h.transactionUC.GetStatistics(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// GetBarChart handles the fixed price-band counts.
func (h *TransactionHandler) GetBarChart(c echo.Context) error {
	month, err := queryMonth(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Month must be between 1 and 12")
	}

	bars, err := h.transactionUC.GetBarChart(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bars, "")
}

// GetPieChart handles the per-category counts.
func (h *TransactionHandler) GetPieChart(c echo.Context) error {
	month, err := queryMonth(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Month must be between 1 and 12")
	}

	pies, err := h.transactionUC.GetPieChart(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pies, "")
}

// GetCombinedData handles the bundled statistics + bar chart + pie chart
// report of one month.
func (h *TransactionHandler) GetCombinedData(c echo.Context) error {
	month, err := queryMonth(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Month must be between 1 and 12")
	}

	report, err := h.transactionUC.GetCombinedReport(c.Request().Context(), month)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}

// queryMonth parses the optional month filter; zero means unset.
func queryMonth(c echo.Context) (int, error) {
	month, err := queryInt(c, "month", 0)
	if err != nil {
		return 0, err
	}
	if month != 0 && (month < 1 || month > 12) {
		return 0, errInvalidMonth
	}

	return month, nil
}

var errInvalidMonth = echo.NewHTTPError(http.StatusBadRequest, "Month must be between 1 and 12")
