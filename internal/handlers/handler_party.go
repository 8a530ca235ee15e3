package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/apamcare/apam_backend/internal/core/services"
	"github.com/apamcare/apam_backend/internal/dto"
	"github.com/apamcare/apam_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	admin *services.AdminService
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, admin *services.AdminService) {
	h := &partyHandler{admin: admin}

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.POST("/anonymous-donor", h.createAnonymousDonor)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
	}
}

func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		party domain.Party
		err   error
	)
	switch req.Variant {
	case dto.VariantPerson:
		party, err = domain.NewPerson(req.ID, req.Name, req.Age, req.PartyType)
	case dto.VariantInstitution:
		party, err = domain.NewInstitution(req.ID, req.Name, req.Age, req.PartyType)
	}
	if err != nil {
		logger.Warn("Validation error creating party", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.RegisterParty(c.Request.Context(), party); err != nil {
		logger.Error("Failed to register party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register party"})
		return
	}

	logger.Info("Party registered", slog.String("party_id", party.ID()), slog.String("party_type", string(party.Type())))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

func (h *partyHandler) createAnonymousDonor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donor := domain.NewAnonymousDonor()
	if err := h.admin.RegisterParty(c.Request.Context(), donor); err != nil {
		logger.Error("Failed to register anonymous donor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register anonymous donor"})
		return
	}

	logger.Info("Anonymous donor registered", slog.String("party_id", donor.ID()))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(donor))
}

func (h *partyHandler) listParties(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListPartyResponse(h.admin.Parties()))
}

func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	party, err := h.admin.FindParty(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find party", slog.String("party_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find party"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}
