package domain_test

import (
	"testing"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/apamcare/apam_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_RequiredFields(t *testing.T) {
	_, err := domain.NewAccount("", "0001-2", domain.DonationAccount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewAccount("acc-1", "", domain.DonationAccount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewAccount("acc-1", "0001-2", domain.AccountType("SAVINGS"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewAccount_StartsEmpty(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "0001-2", domain.ChildAccount)
	require.NoError(t, err)

	assert.Empty(t, account.Transactions())
	assert.True(t, account.Balance().IsZero())
}

// subjectTransaction builds a valid transaction of the given subject using a
// compatible counterparty.
func subjectTransaction(t *testing.T, id string, subject domain.TransactionSubject, value decimal.Decimal) *domain.Transaction {
	t.Helper()
	counterpartyType := map[domain.TransactionSubject]domain.PartyType{
		domain.SubjectDonation:     domain.Donor,
		domain.SubjectPayment:      domain.Employee,
		domain.SubjectChildPayment: domain.CityHall,
		domain.SubjectChildSalary:  domain.Child,
	}[subject]

	txn, err := domain.NewTransaction(id, "test "+string(subject), value, subject, partyOfType(t, counterpartyType))
	require.NoError(t, err)
	return txn
}

func TestAccount_AddTransaction_SubjectCompatibility(t *testing.T) {
	allowed := map[domain.AccountType][]domain.TransactionSubject{
		domain.CityHallAccount: {domain.SubjectChildPayment, domain.SubjectPayment},
		domain.ChildAccount:    {domain.SubjectChildSalary, domain.SubjectPayment},
		domain.DonationAccount: {domain.SubjectDonation, domain.SubjectPayment},
	}
	allSubjects := []domain.TransactionSubject{
		domain.SubjectDonation,
		domain.SubjectPayment,
		domain.SubjectChildPayment,
		domain.SubjectChildSalary,
	}

	for accountType, allowedSubjects := range allowed {
		for _, subject := range allSubjects {
			wantOK := false
			for _, s := range allowedSubjects {
				if s == subject {
					wantOK = true
				}
			}

			t.Run(string(accountType)+"/"+string(subject), func(t *testing.T) {
				account, err := domain.NewAccount("acc-1", "0001-2", accountType)
				require.NoError(t, err)

				txn := subjectTransaction(t, "txn-1", subject, decimal.NewFromInt(50))
				err = account.AddTransaction(txn)
				if wantOK {
					require.NoError(t, err)
					assert.Len(t, account.Transactions(), 1)
				} else {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
					assert.Empty(t, account.Transactions())
				}
			})
		}
	}
}

func TestAccount_AddTransaction_Nil(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "0001-2", domain.DonationAccount)
	require.NoError(t, err)

	assert.ErrorIs(t, account.AddTransaction(nil), apperrors.ErrNilParam)
}

func TestAccount_AddTransaction_DuplicateIsNoOp(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "0001-2", domain.DonationAccount)
	require.NoError(t, err)

	txn := subjectTransaction(t, "txn-1", domain.SubjectDonation, decimal.NewFromInt(100))
	require.NoError(t, account.AddTransaction(txn))
	require.NoError(t, account.AddTransaction(txn), "posting the same transaction again succeeds")

	assert.Len(t, account.Transactions(), 1)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(100)))

	// A value-equal transaction built separately is also deduplicated.
	equalTxn := subjectTransaction(t, "txn-1", domain.SubjectDonation, decimal.NewFromInt(100))
	require.NoError(t, account.AddTransaction(equalTxn))
	assert.Len(t, account.Transactions(), 1)

	// A transaction differing in any field is appended.
	otherTxn := subjectTransaction(t, "txn-2", domain.SubjectDonation, decimal.NewFromInt(100))
	require.NoError(t, account.AddTransaction(otherTxn))
	assert.Len(t, account.Transactions(), 2)
}

func TestAccount_Balance_ExactDecimalSum(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "0001-2", domain.DonationAccount)
	require.NoError(t, err)

	// 0.1 + 0.2 must be exactly 0.3, no binary floating point drift.
	require.NoError(t, account.AddTransaction(subjectTransaction(t, "txn-1", domain.SubjectDonation, decimal.RequireFromString("0.1"))))
	require.NoError(t, account.AddTransaction(subjectTransaction(t, "txn-2", domain.SubjectDonation, decimal.RequireFromString("0.2"))))

	assert.True(t, account.Balance().Equal(decimal.RequireFromString("0.3")), "got %s", account.Balance())
}

func TestAccount_TransactionsPreserveOrder(t *testing.T) {
	account, err := domain.NewAccount("acc-1", "0001-2", domain.DonationAccount)
	require.NoError(t, err)

	for _, id := range []string{"txn-1", "txn-2", "txn-3"} {
		require.NoError(t, account.AddTransaction(subjectTransaction(t, id, domain.SubjectDonation, decimal.NewFromInt(10))))
	}

	txns := account.Transactions()
	require.Len(t, txns, 3)
	assert.Equal(t, "txn-1", txns[0].ID())
	assert.Equal(t, "txn-2", txns[1].ID())
	assert.Equal(t, "txn-3", txns[2].ID())
}
