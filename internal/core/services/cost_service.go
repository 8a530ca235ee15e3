package services

import (
	"errors"
	"fmt"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/apamcare/apam_backend/internal/core/ports/registries"
	"github.com/shopspring/decimal"
)

// Monthly cost-of-care pricing. Amounts are in the organization's single
// operating currency.
var (
	yearlyRate     = decimal.NewFromInt(150)
	youngChildRate = decimal.NewFromInt(100)
	deductionRate  = decimal.New(1, -1) // 0.10, built exactly
)

// youngChildAgeLimit is the oldest age that still receives the supplement.
const youngChildAgeLimit = 5

// CostService computes the monthly cost of care for a child.
type CostService struct {
	accounts registries.AccountRegistry
}

// NewCostService creates a CostService reading balances from the given
// account registry.
func NewCostService(accounts registries.AccountRegistry) *CostService {
	return &CostService{accounts: accounts}
}

// CalculateMonthlyCost returns the amount a city hall owes for one child's
// care in a month:
//  1. 150 per year of age.
//  2. Children aged 5 or below get an extra 100 per year of age on top.
//  3. If the child holds an account, 10% of its balance is deducted, capped
//     at the base cost so the result never goes negative.
//  4. The result is rounded to 2 decimal places toward negative infinity
//     (2.225 becomes 2.22).
//
// The function is pure: same inputs, same result, no state change.
func (s *CostService) CalculateMonthlyCost(party domain.Party) (decimal.Decimal, error) {
	if party == nil {
		return decimal.Zero, fmt.Errorf("party cannot be nil: %w", apperrors.ErrNilParam)
	}
	if party.Type() != domain.Child {
		return decimal.Zero, fmt.Errorf("monthly cost applies only to parties of type %s: %w", domain.Child, apperrors.ErrValidation)
	}

	age := decimal.NewFromInt(int64(party.Age()))
	base := yearlyRate.Mul(age)
	if party.Age() <= youngChildAgeLimit {
		base = base.Add(youngChildRate.Mul(age))
	}

	deduction := decimal.Zero
	account, err := s.accounts.FindAccountByParty(party)
	switch {
	case err == nil:
		deduction = decimal.Min(account.Balance().Mul(deductionRate), base)
	case errors.Is(err, apperrors.ErrNotFound):
		// no account, no deduction
	default:
		return decimal.Zero, err
	}

	return base.Sub(deduction).RoundFloor(2), nil
}
