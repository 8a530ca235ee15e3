package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/services"
	"github.com/apamcare/apam_backend/internal/dto"
	"github.com/apamcare/apam_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cityHallHandler handles HTTP requests for city-hall care assignments and
// monthly payment computation.
type cityHallHandler struct {
	admin *services.AdminService
}

// registerCityHallRoutes registers routes related to city halls.
func registerCityHallRoutes(rg *gin.RouterGroup, admin *services.AdminService) {
	h := &cityHallHandler{admin: admin}

	cityHalls := rg.Group("/city-halls/:id")
	{
		cityHalls.POST("/children", h.assignChild)
		cityHalls.GET("/children", h.listChildren)
		cityHalls.GET("/payment", h.calculatePayment)
	}
}

func (h *cityHallHandler) assignChild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cityHallID := c.Param("id")

	var req dto.AssignChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignChild", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cityHall, err := h.admin.FindParty(cityHallID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find city hall", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find city hall"})
		return
	}

	child, err := h.admin.FindParty(req.ChildID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find child", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find child"})
		return
	}

	if err := h.admin.AssignChild(c.Request.Context(), cityHall, child); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error assigning child", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to assign child", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign child"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *cityHallHandler) listChildren(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cityHallID := c.Param("id")

	cityHall, err := h.admin.FindParty(cityHallID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find city hall", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find city hall"})
		return
	}

	children, err := h.admin.CityHallChildren(c.Request.Context(), cityHall)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list children", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list children"})
		return
	}

	c.JSON(http.StatusOK, dto.CityHallChildrenResponse{
		CityHallID: cityHallID,
		Children:   dto.ToListPartyResponse(children),
	})
}

func (h *cityHallHandler) calculatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cityHallID := c.Param("id")

	cityHall, err := h.admin.FindParty(cityHallID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find city hall", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find city hall"})
		return
	}

	total, err := h.admin.CalculateCityHallPayment(c.Request.Context(), cityHall)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to calculate payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate payment"})
		return
	}

	logger.Info("City hall payment calculated",
		slog.String("city_hall_id", cityHallID),
		slog.String("total", total.String()))
	c.JSON(http.StatusOK, dto.CityHallPaymentResponse{
		CityHallID: cityHallID,
		Total:      total,
	})
}
