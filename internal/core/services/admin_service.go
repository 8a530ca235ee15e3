package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/apamcare/apam_backend/internal/core/ports/registries"
	"github.com/apamcare/apam_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// AdminService orchestrates the organization's bookkeeping: it owns the
// party registry and the city-hall-to-children assignment, and routes
// transactions to accounts. One instance per logical organization; there is
// no global singleton.
type AdminService struct {
	accounts registries.AccountRegistry
	costSvc  *CostService

	parties          []domain.Party
	cityHallChildren map[string][]domain.Party
}

// NewAdminService creates an AdminService backed by the given account
// registry.
func NewAdminService(accounts registries.AccountRegistry) *AdminService {
	return &AdminService{
		accounts:         accounts,
		costSvc:          NewCostService(accounts),
		cityHallChildren: make(map[string][]domain.Party),
	}
}

// RegisterParty adds a party to the registry. Registering a party that is
// already present is a no-op.
func (s *AdminService) RegisterParty(ctx context.Context, party domain.Party) error {
	if party == nil {
		return fmt.Errorf("party cannot be nil: %w", apperrors.ErrNilParam)
	}
	if s.isRegistered(party) {
		middleware.GetLoggerFromCtx(ctx).Debug("Party already registered", slog.String("party_id", party.ID()))
		return nil
	}
	s.parties = append(s.parties, party)
	return nil
}

// Parties returns the registered parties in registration order.
func (s *AdminService) Parties() []domain.Party {
	out := make([]domain.Party, len(s.parties))
	copy(out, s.parties)
	return out
}

// FindParty returns the registered party with the given id.
func (s *AdminService) FindParty(id string) (domain.Party, error) {
	if id == "" {
		return nil, fmt.Errorf("party id cannot be empty: %w", apperrors.ErrNilParam)
	}
	for _, party := range s.parties {
		if party.ID() == id {
			return party, nil
		}
	}
	return nil, fmt.Errorf("party %s is not registered: %w", id, apperrors.ErrNotFound)
}

func (s *AdminService) isRegistered(party domain.Party) bool {
	for _, registered := range s.parties {
		if domain.SameParty(registered, party) {
			return true
		}
	}
	return false
}

// OpenAccount associates an account with its owning party. A party that
// already holds an account keeps its existing one.
func (s *AdminService) OpenAccount(ctx context.Context, owner domain.Party, account *domain.Account) error {
	if owner == nil {
		return fmt.Errorf("owner cannot be nil: %w", apperrors.ErrNilParam)
	}
	if account == nil {
		return fmt.Errorf("account cannot be nil: %w", apperrors.ErrNilParam)
	}
	return s.accounts.SaveAccount(owner, account)
}

// AssignChild places a child under a city hall's care. A child can be under
// at most one city hall at any time, and both parties must already be
// registered.
func (s *AdminService) AssignChild(ctx context.Context, cityHall, child domain.Party) error {
	if cityHall == nil {
		return fmt.Errorf("city hall cannot be nil: %w", apperrors.ErrNilParam)
	}
	if child == nil {
		return fmt.Errorf("child cannot be nil: %w", apperrors.ErrNilParam)
	}
	if cityHall.Type() != domain.CityHall {
		return fmt.Errorf("party %s is not a city hall: %w", cityHall.ID(), apperrors.ErrValidation)
	}
	if child.Type() != domain.Child {
		return fmt.Errorf("party %s is not a child: %w", child.ID(), apperrors.ErrValidation)
	}
	if !s.isRegistered(cityHall) || !s.isRegistered(child) {
		return fmt.Errorf("city hall and child must both be registered: %w", apperrors.ErrValidation)
	}
	for _, children := range s.cityHallChildren {
		for _, assigned := range children {
			if domain.SameParty(assigned, child) {
				return fmt.Errorf("child %s is already assigned to a city hall: %w", child.ID(), apperrors.ErrValidation)
			}
		}
	}

	s.cityHallChildren[cityHall.ID()] = append(s.cityHallChildren[cityHall.ID()], child)
	middleware.GetLoggerFromCtx(ctx).Info("Child assigned to city hall",
		slog.String("city_hall_id", cityHall.ID()),
		slog.String("child_id", child.ID()))
	return nil
}

// CityHallChildren returns the children assigned to the city hall in
// assignment order. The result is never nil.
func (s *AdminService) CityHallChildren(ctx context.Context, cityHall domain.Party) ([]domain.Party, error) {
	if cityHall == nil {
		return nil, fmt.Errorf("city hall cannot be nil: %w", apperrors.ErrNilParam)
	}
	if cityHall.Type() != domain.CityHall {
		return nil, fmt.Errorf("party %s is not a city hall: %w", cityHall.ID(), apperrors.ErrValidation)
	}
	if !s.isRegistered(cityHall) {
		return nil, fmt.Errorf("city hall %s is not registered: %w", cityHall.ID(), apperrors.ErrValidation)
	}
	children := s.cityHallChildren[cityHall.ID()]
	out := make([]domain.Party, len(children))
	copy(out, children)
	return out, nil
}

// CalculateCityHallPayment sums the monthly cost of every child under the
// city hall's care using exact decimal addition. A city hall with no
// children owes zero.
func (s *AdminService) CalculateCityHallPayment(ctx context.Context, cityHall domain.Party) (decimal.Decimal, error) {
	if cityHall == nil {
		return decimal.Zero, fmt.Errorf("city hall cannot be nil: %w", apperrors.ErrNilParam)
	}
	if cityHall.Type() != domain.CityHall {
		return decimal.Zero, fmt.Errorf("party %s is not a city hall: %w", cityHall.ID(), apperrors.ErrValidation)
	}

	children, err := s.CityHallChildren(ctx, cityHall)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, child := range children {
		cost, err := s.costSvc.CalculateMonthlyCost(child)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}
	return total, nil
}

// CalculateMonthlyCost exposes the per-child cost computation.
func (s *AdminService) CalculateMonthlyCost(child domain.Party) (decimal.Decimal, error) {
	return s.costSvc.CalculateMonthlyCost(child)
}

// PostTransaction posts a transaction to the source party's account. When
// the source holds no account the call is a silent no-op; accounts are never
// auto-created.
func (s *AdminService) PostTransaction(ctx context.Context, source domain.Party, txn *domain.Transaction) error {
	if source == nil {
		return fmt.Errorf("source cannot be nil: %w", apperrors.ErrNilParam)
	}
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil: %w", apperrors.ErrNilParam)
	}

	account, err := s.accounts.FindAccountByParty(source)
	if errors.Is(err, apperrors.ErrNotFound) {
		middleware.GetLoggerFromCtx(ctx).Debug("Source party has no account, transaction dropped",
			slog.String("party_id", source.ID()),
			slog.String("transaction_id", txn.ID()))
		return nil
	}
	if err != nil {
		return err
	}
	return account.AddTransaction(txn)
}
