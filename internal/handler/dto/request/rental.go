package request

import (
	"strings"

	"eiffel-bike-client/internal/domain/payment"
	"eiffel-bike-client/internal/domain/rental"
)

type RentRequest struct {
	BikeID int64 `json:"bikeId" binding:"required"`
	Days   int   `json:"days" binding:"required"`
}

type PaymentRequest struct {
	CardNumber string `json:"cardNumber" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	Cvc        string `json:"cvc" binding:"required"`
}

func (r *PaymentRequest) ToDomain() (payment.Card, error) {
	return payment.NewCard(r.CardNumber, r.Expiry, r.Cvc)
}

type ReturnRequest struct {
	Condition string  `json:"condition" binding:"required"`
	Comment   *string `json:"comment,omitempty"`
}

func (r *ReturnRequest) ToCondition() (rental.Condition, error) {
	return rental.NewCondition(r.Condition)
}

func (r *ReturnRequest) GetComment() string {
	if r.Comment == nil {
		return ""
	}
	return strings.TrimSpace(*r.Comment)
}
