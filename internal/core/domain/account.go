package domain

import (
	"fmt"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType is the ledger category an account belongs to. It constrains
// which transaction subjects the account may record.
type AccountType string

const (
	CityHallAccount AccountType = "CITY_HALL_ACCOUNT"
	ChildAccount    AccountType = "CHILD_ACCOUNT"
	DonationAccount AccountType = "DONATION_ACCOUNT"
)

// allowedSubjectsForAccount maps each account type to the subjects it
// accepts.
var allowedSubjectsForAccount = map[AccountType]map[TransactionSubject]struct{}{
	CityHallAccount: {SubjectChildPayment: {}, SubjectPayment: {}},
	ChildAccount:    {SubjectChildSalary: {}, SubjectPayment: {}},
	DonationAccount: {SubjectDonation: {}, SubjectPayment: {}},
}

// Valid reports whether the account type is a member of the closed set.
func (a AccountType) Valid() bool {
	_, ok := allowedSubjectsForAccount[a]
	return ok
}

// AllowsSubject reports whether transactions of the given subject may be
// posted to accounts of this type.
func (a AccountType) AllowsSubject(s TransactionSubject) bool {
	_, ok := allowedSubjectsForAccount[a][s]
	return ok
}

// Account is an append-only ledger of compatible transactions.
type Account struct {
	id           string
	number       string
	accountType  AccountType
	transactions []*Transaction
}

// NewAccount builds an empty Account.
func NewAccount(id, number string, accountType AccountType) (*Account, error) {
	if id == "" {
		return nil, fmt.Errorf("account id is required: %w", apperrors.ErrValidation)
	}
	if number == "" {
		return nil, fmt.Errorf("account number is required: %w", apperrors.ErrValidation)
	}
	if !accountType.Valid() {
		return nil, fmt.Errorf("unknown account type %q: %w", accountType, apperrors.ErrValidation)
	}
	return &Account{id: id, number: number, accountType: accountType}, nil
}

func (a *Account) ID() string        { return a.id }
func (a *Account) Number() string    { return a.number }
func (a *Account) Type() AccountType { return a.accountType }

// Transactions returns the posted transactions in posting order.
func (a *Account) Transactions() []*Transaction {
	out := make([]*Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// AddTransaction appends a transaction to the ledger. Posting a transaction
// that is value-equal to one already in the ledger is a silent no-op, so the
// call is idempotent. The subject must be allowed for this account's type.
func (a *Account) AddTransaction(txn *Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil: %w", apperrors.ErrNilParam)
	}
	for _, existing := range a.transactions {
		if existing.Equal(txn) {
			return nil
		}
	}
	if !a.accountType.AllowsSubject(txn.Subject()) {
		return fmt.Errorf("subject %s is not allowed for account type %s: %w", txn.Subject(), a.accountType, apperrors.ErrValidation)
	}
	a.transactions = append(a.transactions, txn)
	return nil
}

// Balance recomputes the exact decimal sum of all posted amounts. It is
// never cached, so it always agrees with the transaction sequence.
func (a *Account) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		balance = balance.Add(txn.Amount())
	}
	return balance
}
