// Package memory provides in-memory registry adapters. The system keeps all
// state in process, so these are the only adapters in the tree; the ports
// they implement leave room for persistent ones.
package memory

import (
	"fmt"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/apamcare/apam_backend/internal/core/ports/registries"
)

// AccountRegistry maps owning party ids to their single account.
type AccountRegistry struct {
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRegistry creates an empty account registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{
		accounts: make(map[string]*domain.Account),
	}
}

var _ registries.AccountRegistry = (*AccountRegistry)(nil)

// SaveAccount registers the account under its owner. A second registration
// for the same owner is ignored.
func (r *AccountRegistry) SaveAccount(owner domain.Party, account *domain.Account) error {
	if owner == nil {
		return fmt.Errorf("owner cannot be nil: %w", apperrors.ErrNilParam)
	}
	if account == nil {
		return fmt.Errorf("account cannot be nil: %w", apperrors.ErrNilParam)
	}
	if _, exists := r.accounts[owner.ID()]; exists {
		return nil
	}
	r.accounts[owner.ID()] = account
	r.order = append(r.order, owner.ID())
	return nil
}

// FindAccountByParty returns the owner's account.
func (r *AccountRegistry) FindAccountByParty(owner domain.Party) (*domain.Account, error) {
	if owner == nil {
		return nil, fmt.Errorf("owner cannot be nil: %w", apperrors.ErrNilParam)
	}
	return r.FindAccountByPartyID(owner.ID())
}

// FindAccountByPartyID returns the account owned by the party with the given id.
func (r *AccountRegistry) FindAccountByPartyID(partyID string) (*domain.Account, error) {
	if partyID == "" {
		return nil, fmt.Errorf("party id cannot be empty: %w", apperrors.ErrNilParam)
	}
	account, ok := r.accounts[partyID]
	if !ok {
		return nil, fmt.Errorf("no account for party %s: %w", partyID, apperrors.ErrNotFound)
	}
	return account, nil
}

// ListAccounts returns all accounts in registration order.
func (r *AccountRegistry) ListAccounts() []*domain.Account {
	out := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.accounts[id])
	}
	return out
}
