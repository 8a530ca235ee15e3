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
	"github.com/google/uuid"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	admin *services.AdminService
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, admin *services.AdminService) {
	h := &transactionHandler{admin: admin}

	rg.POST("/transactions", h.createTransaction)
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	source, err := h.admin.FindParty(req.SourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find source party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find source party"})
		return
	}

	counterparty, err := h.admin.FindParty(req.CounterpartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to find counterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find counterparty"})
		return
	}

	txn, err := domain.NewTransaction(uuid.NewString(), req.Description, req.Value, req.Subject, counterparty)
	if err != nil {
		logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admin.PostTransaction(c.Request.Context(), source, txn); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error posting transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to post transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post transaction"})
		return
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", txn.ID()),
		slog.String("source_id", source.ID()),
		slog.String("subject", string(txn.Subject())))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
