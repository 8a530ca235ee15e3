package domain

import (
	"fmt"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether money arrives at or leaves the
// organization.
type TransactionDirection string

const (
	DirectionIn  TransactionDirection = "IN"
	DirectionOut TransactionDirection = "OUT"
)

// TransactionSubject is the declared purpose of a transaction.
type TransactionSubject string

const (
	SubjectDonation     TransactionSubject = "DONATION"
	SubjectPayment      TransactionSubject = "PAYMENT"
	SubjectChildPayment TransactionSubject = "CHILD_PAYMENT"
	SubjectChildSalary  TransactionSubject = "CHILD_SALARY"
)

// subjectMeta fixes the direction and anonymity rule of each subject.
type subjectMeta struct {
	direction        TransactionDirection
	anonymousAllowed bool
}

var subjectMetadata = map[TransactionSubject]subjectMeta{
	SubjectDonation:     {direction: DirectionIn, anonymousAllowed: true},
	SubjectPayment:      {direction: DirectionOut},
	SubjectChildPayment: {direction: DirectionIn},
	SubjectChildSalary:  {direction: DirectionIn},
}

// allowedPartiesForSubject is the authoritative counterparty table: it maps
// each subject to the party types that may appear on the other side.
var allowedPartiesForSubject = map[TransactionSubject]map[PartyType]struct{}{
	SubjectDonation:     {Donor: {}, Company: {}},
	SubjectPayment:      {Employee: {}, ServiceProvider: {}, Company: {}},
	SubjectChildPayment: {CityHall: {}},
	SubjectChildSalary:  {Child: {}},
}

// Valid reports whether the subject is a member of the closed set.
func (s TransactionSubject) Valid() bool {
	_, ok := subjectMetadata[s]
	return ok
}

// Direction returns the fixed money-flow direction of the subject.
func (s TransactionSubject) Direction() TransactionDirection {
	return subjectMetadata[s].direction
}

// AnonymousAllowed reports whether the counterparty may be the anonymous
// donor. Only donations qualify.
func (s TransactionSubject) AnonymousAllowed() bool {
	return subjectMetadata[s].anonymousAllowed
}

// AllowsParty reports whether a party of the given type may be the
// counterparty of this subject.
func (s TransactionSubject) AllowsParty(t PartyType) bool {
	_, ok := allowedPartiesForSubject[s][t]
	return ok
}

// Transaction is an immutable, validated record of value moving between the
// organization and a counterparty.
type Transaction struct {
	id          string
	description string
	value       decimal.Decimal
	subject     TransactionSubject
	party       Party
}

// NewTransaction validates and builds a Transaction. The value must be
// strictly positive and the counterparty type must be allowed for the
// subject.
func NewTransaction(id, description string, value decimal.Decimal, subject TransactionSubject, party Party) (*Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("transaction id is required: %w", apperrors.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("transaction description is required: %w", apperrors.ErrValidation)
	}
	if party == nil {
		return nil, fmt.Errorf("transaction party is required: %w", apperrors.ErrValidation)
	}
	if !subject.Valid() {
		return nil, fmt.Errorf("unknown transaction subject %q: %w", subject, apperrors.ErrValidation)
	}
	if value.Sign() <= 0 {
		return nil, fmt.Errorf("transaction value must be above 0: %w", apperrors.ErrValidation)
	}
	if !subject.AllowsParty(party.Type()) {
		return nil, fmt.Errorf("party type %s is not allowed for subject %s: %w", party.Type(), subject, apperrors.ErrValidation)
	}
	return &Transaction{
		id:          id,
		description: description,
		value:       value,
		subject:     subject,
		party:       party,
	}, nil
}

func (t *Transaction) ID() string                  { return t.id }
func (t *Transaction) Description() string         { return t.description }
func (t *Transaction) Subject() TransactionSubject { return t.subject }
func (t *Transaction) Party() Party                { return t.party }

// Amount returns the transaction value.
func (t *Transaction) Amount() decimal.Decimal { return t.value }

// Equal reports value equality over id, description, amount, subject and
// counterparty identity. Accounts use it to drop duplicate postings.
func (t *Transaction) Equal(other *Transaction) bool {
	if other == nil {
		return false
	}
	return t.id == other.id &&
		t.description == other.description &&
		t.value.Equal(other.value) &&
		t.subject == other.subject &&
		SameParty(t.party, other.party)
}
