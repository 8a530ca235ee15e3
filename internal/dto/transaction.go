package dto

import (
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction to
// the source party's account. The counterparty is the party on the other
// side of the money movement.
type CreateTransactionRequest struct {
	SourceID       string                    `json:"sourceID" binding:"required"`
	CounterpartyID string                    `json:"counterpartyID" binding:"required"`
	Description    string                    `json:"description" binding:"required"`
	Value          decimal.Decimal           `json:"value" binding:"required"`
	Subject        domain.TransactionSubject `json:"subject" binding:"required,txsubject"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID             string                      `json:"id"`
	Description    string                      `json:"description"`
	Amount         decimal.Decimal             `json:"amount"`
	Subject        domain.TransactionSubject   `json:"subject"`
	Direction      domain.TransactionDirection `json:"direction"`
	CounterpartyID string                      `json:"counterpartyID"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             txn.ID(),
		Description:    txn.Description(),
		Amount:         txn.Amount(),
		Subject:        txn.Subject(),
		Direction:      txn.Subject().Direction(),
		CounterpartyID: txn.Party().ID(),
	}
}
