package handlers

import (
	"net/http"

	"github.com/apamcare/apam_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the root route.
func registerHomeRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.OrgName + " bookkeeping backend",
			"status":  "ok",
		})
	})
}
