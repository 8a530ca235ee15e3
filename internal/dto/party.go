package dto

import (
	"github.com/apamcare/apam_backend/internal/core/domain"
)

// Party variants accepted by the API.
const (
	VariantPerson      = "PERSON"
	VariantInstitution = "INSTITUTION"
)

// CreatePartyRequest defines the data needed to register a party.
type CreatePartyRequest struct {
	ID        string           `json:"id" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Age       int              `json:"age" binding:"gte=0"`
	Variant   string           `json:"variant" binding:"required,oneof=PERSON INSTITUTION"`
	PartyType domain.PartyType `json:"partyType" binding:"required,partytype"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`
	Age  int              `json:"age"`
	Type domain.PartyType `json:"type"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO.
func ToPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{
		ID:   p.ID(),
		Name: p.Name(),
		Age:  p.Age(),
		Type: p.Type(),
	}
}

// ToListPartyResponse converts a slice of parties to response DTOs.
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(p)
	}
	return res
}
