// Package main is the entry point for the ShopLedger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/shopledger/backend/config"
	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/application/usecase/auth"
	"github.com/shopledger/backend/internal/application/usecase/expense"
	"github.com/shopledger/backend/internal/application/usecase/insights"
	"github.com/shopledger/backend/internal/application/usecase/report"
	"github.com/shopledger/backend/internal/application/usecase/sale"
	"github.com/shopledger/backend/internal/infra/db"
	"github.com/shopledger/backend/internal/infra/server/router"
	"github.com/shopledger/backend/internal/integration/adapters"
	"github.com/shopledger/backend/internal/integration/email"
	"github.com/shopledger/backend/internal/integration/email/templates"
	"github.com/shopledger/backend/internal/integration/entrypoint/controller"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
	"github.com/shopledger/backend/internal/integration/persistence"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting ShopLedger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.SaleModel{},
			&model.ExpenseModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize the Redis-backed insights cache. A missing cache is not
	// fatal; insights are recomputed on every request instead.
	var redisClient *redis.Client
	var insightsCache adapter.InsightsCache
	var cacheHealthChecker func() bool

	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, insights caching disabled", "error", err)
	} else {
		redisClient = redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis connection failed, insights caching disabled", "error", err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			insightsCache = persistence.NewInsightsCache(redisClient)
			cacheHealthChecker = func() bool {
				pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer pingCancel()
				return redisClient.Ping(pingCtx).Err() == nil
			}
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
			slog.Info("Insights cache connected", "ttl", cfg.Insights.CacheTTL)
		}
		cancel()
	}

	// Create health controller with dependency health checkers
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var saleController *controller.SaleController
	var expenseController *controller.ExpenseController
	var insightsController *controller.InsightsController
	var reportController *controller.ReportController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		saleRepo := persistence.NewSaleRepository(database.DB())
		expenseRepo := persistence.NewExpenseRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
		advisor := adapters.NewGeminiAdvisor(cfg.Advisor.GeminiAPIKey)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		// Create sale use cases
		createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, insightsCache)
		updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo, insightsCache)
		deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, insightsCache)
		listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
		clearSalesUseCase := sale.NewClearSalesUseCase(saleRepo, insightsCache)

		// Create expense use cases
		createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, insightsCache)
		updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, insightsCache)
		deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, insightsCache)
		listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
		clearExpensesUseCase := expense.NewClearExpensesUseCase(expenseRepo, insightsCache)

		// Create insights use cases
		getInsightsUseCase := insights.NewGetInsightsUseCase(saleRepo, expenseRepo, insightsCache, cfg.Insights.CacheTTL)
		getAdviceUseCase := insights.NewGetAdviceUseCase(getInsightsUseCase, userRepo, advisor)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		)
		saleController = controller.NewSaleController(
			createSaleUseCase,
			updateSaleUseCase,
			deleteSaleUseCase,
			listSalesUseCase,
			clearSalesUseCase,
		)
		expenseController = controller.NewExpenseController(
			createExpenseUseCase,
			updateExpenseUseCase,
			deleteExpenseUseCase,
			listExpensesUseCase,
			clearExpensesUseCase,
		)
		insightsController = controller.NewInsightsController(getInsightsUseCase, getAdviceUseCase)

		// Weekly report delivery needs an email provider
		if cfg.Email.ResendAPIKey != "" {
			renderer, err := templates.NewRenderer()
			if err != nil {
				slog.Error("Failed to parse report templates", "error", err)
				os.Exit(1)
			}
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			sendWeeklyUseCase := report.NewSendWeeklyReportUseCase(getInsightsUseCase, userRepo, renderer, sender)
			reportController = controller.NewReportController(sendWeeklyUseCase)
		} else {
			slog.Warn("Resend API key not configured, weekly reports disabled")
		}

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Ledger and insights systems initialized successfully")
	} else {
		slog.Warn("Ledger and insights systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		saleController,
		expenseController,
		insightsController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
