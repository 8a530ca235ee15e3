package main

import (
	"log/slog"
	"os"

	"github.com/apamcare/apam_backend/internal/adapters/registry/memory"
	"github.com/apamcare/apam_backend/internal/core/services"
	"github.com/apamcare/apam_backend/internal/dto"
	"github.com/apamcare/apam_backend/internal/handlers"
	"github.com/apamcare/apam_backend/internal/middleware"
	"github.com/apamcare/apam_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory registries and the orchestrator; one AdminService per
	// logical organization.
	accountRegistry := memory.NewAccountRegistry()
	admin := services.NewAdminService(accountRegistry)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	dto.RegisterCustomValidators()
	handlers.RegisterRoutes(r, cfg, admin, accountRegistry)

	logger.Info("Starting server", slog.String("port", cfg.Port), slog.String("org", cfg.OrgName))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
