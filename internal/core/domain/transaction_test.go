package domain_test

import (
	"testing"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partyOfType builds a valid party of the requested type.
func partyOfType(t *testing.T, partyType domain.PartyType) domain.Party {
	t.Helper()
	switch partyType {
	case domain.CityHall, domain.Company:
		inst, err := domain.NewInstitution("party-"+string(partyType), "Inst "+string(partyType), 50, partyType)
		require.NoError(t, err)
		return inst
	default:
		person, err := domain.NewPerson("party-"+string(partyType), "Person "+string(partyType), 25, partyType)
		require.NoError(t, err)
		return person
	}
}

var allPartyTypes = []domain.PartyType{
	domain.Child,
	domain.Employee,
	domain.Donor,
	domain.ServiceProvider,
	domain.CityHall,
	domain.Company,
}

func TestNewTransaction_SubjectPartyCompatibility(t *testing.T) {
	allowed := map[domain.TransactionSubject][]domain.PartyType{
		domain.SubjectDonation:     {domain.Donor, domain.Company},
		domain.SubjectPayment:      {domain.Employee, domain.ServiceProvider, domain.Company},
		domain.SubjectChildPayment: {domain.CityHall},
		domain.SubjectChildSalary:  {domain.Child},
	}

	for subject, allowedTypes := range allowed {
		for _, partyType := range allPartyTypes {
			wantOK := false
			for _, at := range allowedTypes {
				if at == partyType {
					wantOK = true
				}
			}

			t.Run(string(subject)+"/"+string(partyType), func(t *testing.T) {
				party := partyOfType(t, partyType)
				txn, err := domain.NewTransaction("txn-1", "compatibility check", decimal.NewFromInt(100), subject, party)
				if wantOK {
					require.NoError(t, err)
					assert.Equal(t, subject, txn.Subject())
					assert.Equal(t, party.ID(), txn.Party().ID())
				} else {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
					assert.Nil(t, txn)
				}
			})
		}
	}
}

func TestNewTransaction_ValuePositivity(t *testing.T) {
	donor := partyOfType(t, domain.Donor)

	tests := []struct {
		name    string
		value   decimal.Decimal
		wantErr bool
	}{
		{"positive value", decimal.NewFromInt(1), false},
		{"small positive value", decimal.RequireFromString("0.01"), false},
		{"zero value", decimal.Zero, true},
		{"negative value", decimal.NewFromInt(-10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTransaction("txn-1", "donation", tt.value, domain.SubjectDonation, donor)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTransaction_RequiredFields(t *testing.T) {
	donor := partyOfType(t, domain.Donor)
	value := decimal.NewFromInt(100)

	_, err := domain.NewTransaction("", "donation", value, domain.SubjectDonation, donor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewTransaction("txn-1", "", value, domain.SubjectDonation, donor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewTransaction("txn-1", "donation", value, domain.SubjectDonation, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewTransaction("txn-1", "donation", value, domain.TransactionSubject("LOAN"), donor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransaction_AmountMatchesValue(t *testing.T) {
	donor := partyOfType(t, domain.Donor)
	value := decimal.RequireFromString("123.45")

	txn, err := domain.NewTransaction("txn-1", "donation", value, domain.SubjectDonation, donor)
	require.NoError(t, err)
	assert.True(t, txn.Amount().Equal(value))
}

func TestTransactionSubject_Metadata(t *testing.T) {
	tests := []struct {
		subject     domain.TransactionSubject
		direction   domain.TransactionDirection
		anonymousOK bool
	}{
		{domain.SubjectDonation, domain.DirectionIn, true},
		{domain.SubjectPayment, domain.DirectionOut, false},
		{domain.SubjectChildPayment, domain.DirectionIn, false},
		{domain.SubjectChildSalary, domain.DirectionIn, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.subject), func(t *testing.T) {
			assert.Equal(t, tt.direction, tt.subject.Direction())
			assert.Equal(t, tt.anonymousOK, tt.subject.AnonymousAllowed())
		})
	}
}

func TestTransaction_Equal(t *testing.T) {
	donor := partyOfType(t, domain.Donor)
	value := decimal.NewFromInt(100)

	a, err := domain.NewTransaction("txn-1", "donation", value, domain.SubjectDonation, donor)
	require.NoError(t, err)
	b, err := domain.NewTransaction("txn-1", "donation", decimal.RequireFromString("100.00"), domain.SubjectDonation, donor)
	require.NoError(t, err)
	c, err := domain.NewTransaction("txn-1", "another donation", value, domain.SubjectDonation, donor)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same fields, different decimal exponent")
	assert.False(t, a.Equal(c), "different description")
	assert.False(t, a.Equal(nil))
}
