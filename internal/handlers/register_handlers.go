package handlers

import (
	"github.com/apamcare/apam_backend/internal/core/ports/registries"
	"github.com/apamcare/apam_backend/internal/core/services"
	"github.com/apamcare/apam_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	admin *services.AdminService,
	accounts registries.AccountRegistry,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r, cfg)

	v1 := r.Group("/api/v1")
	registerPartyRoutes(v1, admin)
	registerAccountRoutes(v1, admin, accounts)
	registerTransactionRoutes(v1, admin)
	registerCityHallRoutes(v1, admin)
}
