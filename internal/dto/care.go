package dto

import (
	"github.com/shopspring/decimal"
)

// AssignChildRequest defines the data needed to place a child under a city
// hall's care. The city hall id comes from the URL.
type AssignChildRequest struct {
	ChildID string `json:"childID" binding:"required"`
}

// CityHallChildrenResponse wraps the ordered list of children under a city
// hall's care.
type CityHallChildrenResponse struct {
	CityHallID string          `json:"cityHallID"`
	Children   []PartyResponse `json:"children"`
}

// CityHallPaymentResponse defines the data returned for a monthly payment
// computation.
type CityHallPaymentResponse struct {
	CityHallID string          `json:"cityHallID"`
	Total      decimal.Decimal `json:"total"`
}
