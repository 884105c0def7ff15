// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/integration/entrypoint/controller"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	saleController      *controller.SaleController
	expenseController   *controller.ExpenseController
	insightsController  *controller.InsightsController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	saleController *controller.SaleController,
	expenseController *controller.ExpenseController,
	insightsController *controller.InsightsController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		saleController:     saleController,
		expenseController:  expenseController,
		insightsController: insightsController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.PUT("/:id", r.saleController.Update)
				sales.DELETE("/:id", r.saleController.Delete)
				sales.DELETE("", r.saleController.Clear)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
				expenses.DELETE("", r.expenseController.Clear)
			}
		}

		// Insights routes (require authentication)
		if r.insightsController != nil && r.authMiddleware != nil {
			insights := v1.Group("/insights")
			insights.Use(r.authMiddleware.Authenticate())
			{
				insights.GET("", r.insightsController.Get)
				insights.GET("/advice", r.insightsController.GetAdvice)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("/weekly", r.reportController.SendWeekly)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
