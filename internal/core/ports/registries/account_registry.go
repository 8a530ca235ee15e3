// Package registries defines the ports the core services use to reach
// registry state. Adapters live under internal/adapters.
package registries

import (
	"github.com/apamcare/apam_backend/internal/core/domain"
)

// AccountRegistry keeps at most one account per owning party.
type AccountRegistry interface {
	// SaveAccount associates an account with its owner. If the owner
	// already holds an account the call is a no-op (put-if-absent).
	SaveAccount(owner domain.Party, account *domain.Account) error

	// FindAccountByParty returns the owner's account, or an error wrapping
	// apperrors.ErrNotFound when the owner holds none.
	FindAccountByParty(owner domain.Party) (*domain.Account, error)

	// FindAccountByPartyID is FindAccountByParty keyed by the owner id.
	FindAccountByPartyID(partyID string) (*domain.Account, error)

	// ListAccounts returns all registered accounts in registration order.
	ListAccounts() []*domain.Account
}
