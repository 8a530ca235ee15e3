package dto

import (
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open an account for a
// registered party.
type CreateAccountRequest struct {
	OwnerID     string             `json:"ownerID" binding:"required"`
	Number      string             `json:"number" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,accounttype"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Number      string             `json:"number"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.ID(),
		Number:      acc.Number(),
		AccountType: acc.Type(),
		Balance:     acc.Balance(),
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []*domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	OwnerID   string          `json:"ownerID"`
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
