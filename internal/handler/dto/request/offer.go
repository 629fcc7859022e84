package request

import (
	"strings"

	"eiffel-bike-client/internal/domain/bike"
)

type ListForRentRequest struct {
	Description  string  `json:"description" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	DailyRateEur float64 `json:"dailyRateEur" binding:"required,gt=0"`
}

func (r *ListForRentRequest) BikeType() bike.Type {
	return bike.Type(strings.ToUpper(strings.TrimSpace(r.Type)))
}

type ListForSaleRequest struct {
	BikeID         int64   `json:"bikeId" binding:"required"`
	AskingPriceEur float64 `json:"askingPriceEur" binding:"required,gt=0"`
	Note           *string `json:"note,omitempty"`
}

func (r *ListForSaleRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type SelectCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}
