// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/router/handler"
	"ratehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	StoreHandler       *handler.StoreHandler
	RatingHandler      *handler.RatingHandler
	TransactionHandler *handler.TransactionHandler
	DashboardHandler   *handler.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.params.AuthMiddleware
	api := e.Group("/api")

	// Public auth routes
	api.POST("/register", r.params.AuthHandler.Register)
	api.POST("/login", r.params.AuthHandler.Login)
	api.GET("/me", r.params.AuthHandler.Me, auth.Authenticate)

	// Admin user management
	api.GET("/users", r.params.UserHandler.ListUsers, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	api.POST("/users", r.params.UserHandler.CreateUser, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	api.GET("/users/:userId", r.params.UserHandler.GetUser, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	// Self-or-admin; the usecase enforces the actor check.
	api.PUT("/users/:userId/password", r.params.UserHandler.UpdatePassword, auth.Authenticate)

	// Stores: browsing is public, creation is admin, raters are owner/admin
	api.GET("/stores", r.params.StoreHandler.ListStores)
	api.GET("/stores/:storeId", r.params.StoreHandler.GetStore)
	api.POST("/stores", r.params.StoreHandler.CreateStore, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	api.GET("/stores/:storeId/raters", r.params.StoreHandler.GetStoreRaters,
		auth.Authenticate, auth.RequireRole(entity.RoleAdmin, entity.RoleStoreOwner))

	// Ratings
	api.POST("/ratings", r.params.RatingHandler.SubmitRating, auth.Authenticate)
	api.GET("/ratings/user/:userId/store/:storeId", r.params.RatingHandler.GetUserRatingForStore, auth.Authenticate)
	api.GET("/ratings/store/:storeId", r.params.RatingHandler.GetStoreRatings)

	// Sales-record reporting (read only)
	api.GET("/transactions", r.params.TransactionHandler.ListTransactions)
	api.GET("/statistics", r.params.TransactionHandler.GetStatistics)
	api.GET("/bar-chart", r.params.TransactionHandler.GetBarChart)
	api.GET("/pie-chart", r.params.TransactionHandler.GetPieChart)
	api.GET("/combined-data", r.params.TransactionHandler.GetCombinedData)

	// Admin dashboard
	api.GET("/dashboard/stats", r.params.DashboardHandler.GetStats, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
}
