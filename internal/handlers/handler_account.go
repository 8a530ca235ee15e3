package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/apamcare/apam_backend/internal/core/ports/registries"
	"github.com/apamcare/apam_backend/internal/core/services"
	"github.com/apamcare/apam_backend/internal/dto"
	"github.com/apamcare/apam_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	admin    *services.AdminService
	accounts registries.AccountRegistry
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, admin *services.AdminService, accounts registries.AccountRegistry) {
	h := &accountHandler{admin: admin, accounts: accounts}

	group := rg.Group("/accounts")
	{
		group.POST("", h.createAccount)
		group.GET("", h.listAccounts)
		group.GET("/by-party/:partyID/balance", h.getBalance)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	owner, err := h.admin.FindParty(req.OwnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find owner party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find owner party"})
		return
	}

	account, err := domain.NewAccount(uuid.NewString(), req.Number, req.AccountType)
	if err != nil {
		logger.Warn("Validation error creating account", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.OpenAccount(c.Request.Context(), owner, account); err != nil {
		logger.Error("Failed to open account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open account"})
		return
	}

	logger.Info("Account opened", slog.String("account_id", account.ID()), slog.String("owner_id", owner.ID()))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListAccountResponse(h.accounts.ListAccounts()))
}

func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	account, err := h.accounts.FindAccountByPartyID(partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find account", slog.String("party_id", partyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find account"})
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		OwnerID:   partyID,
		AccountID: account.ID(),
		Balance:   account.Balance(),
	})
}
