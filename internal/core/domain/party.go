package domain

import (
	"fmt"
	"strings"

	"github.com/apamcare/apam_backend/internal/apperrors"
	"github.com/google/uuid"
)

// PartyType classifies everyone the organization transacts with.
type PartyType string

const (
	Child           PartyType = "CHILD"
	Employee        PartyType = "EMPLOYEE"
	Donor           PartyType = "DONOR"
	ServiceProvider PartyType = "SERVICE_PROVIDER"
	CityHall        PartyType = "CITY_HALL"
	Company         PartyType = "COMPANY"
)

// AnonymousName is the reserved name for donors that withhold their identity.
// The comparison is case-insensitive.
const AnonymousName = "Anonymous"

// Valid reports whether the party type is a member of the closed set.
func (t PartyType) Valid() bool {
	switch t {
	case Child, Employee, Donor, ServiceProvider, CityHall, Company:
		return true
	}
	return false
}

// Party is anyone that can be the counterparty of a transaction.
type Party interface {
	ID() string
	Name() string
	Age() int
	Type() PartyType
}

// personTypes and institutionTypes are the allowed type subsets per variant.
var personTypes = map[PartyType]struct{}{
	Child:           {},
	Employee:        {},
	Donor:           {},
	ServiceProvider: {},
}

var institutionTypes = map[PartyType]struct{}{
	CityHall: {},
	Company:  {},
}

// SameParty reports whether two parties carry the same identity and field
// values. It is the equality used by registries and transaction dedup.
func SameParty(a, b Party) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID() == b.ID() && a.Name() == b.Name() && a.Age() == b.Age() && a.Type() == b.Type()
}

// Person is the natural-person party variant.
type Person struct {
	id        string
	name      string
	age       int
	partyType PartyType
}

// NewPerson builds a Person. Only CHILD, EMPLOYEE, DONOR and SERVICE_PROVIDER
// types are allowed, and the reserved anonymous name is restricted to donors.
func NewPerson(id, name string, age int, partyType PartyType) (*Person, error) {
	if id == "" {
		return nil, fmt.Errorf("person id is required: %w", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("person name is required: %w", apperrors.ErrValidation)
	}
	if age < 0 {
		return nil, fmt.Errorf("person age must not be negative: %w", apperrors.ErrValidation)
	}
	if _, ok := personTypes[partyType]; !ok {
		return nil, fmt.Errorf("type %s is not allowed for a person: %w", partyType, apperrors.ErrValidation)
	}
	if strings.EqualFold(name, AnonymousName) && partyType != Donor {
		return nil, fmt.Errorf("the anonymous name is only allowed for donors: %w", apperrors.ErrValidation)
	}
	return &Person{id: id, name: name, age: age, partyType: partyType}, nil
}

// NewAnonymousDonor builds a donor with a generated id, the reserved
// anonymous name and age zero.
func NewAnonymousDonor() *Person {
	return &Person{
		id:        uuid.NewString(),
		name:      AnonymousName,
		age:       0,
		partyType: Donor,
	}
}

func (p *Person) ID() string      { return p.id }
func (p *Person) Name() string    { return p.name }
func (p *Person) Age() int        { return p.age }
func (p *Person) Type() PartyType { return p.partyType }

// Institution is the legal-entity party variant.
type Institution struct {
	id        string
	name      string
	age       int
	partyType PartyType
}

// NewInstitution builds an Institution. Only CITY_HALL and COMPANY types are
// allowed.
func NewInstitution(id, name string, age int, partyType PartyType) (*Institution, error) {
	if id == "" {
		return nil, fmt.Errorf("institution id is required: %w", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("institution name is required: %w", apperrors.ErrValidation)
	}
	if age < 0 {
		return nil, fmt.Errorf("institution age must not be negative: %w", apperrors.ErrValidation)
	}
	if _, ok := institutionTypes[partyType]; !ok {
		return nil, fmt.Errorf("type %s is not allowed for an institution: %w", partyType, apperrors.ErrValidation)
	}
	return &Institution{id: id, name: name, age: age, partyType: partyType}, nil
}

func (i *Institution) ID() string      { return i.id }
func (i *Institution) Name() string    { return i.name }
func (i *Institution) Age() int        { return i.age }
func (i *Institution) Type() PartyType { return i.partyType }
