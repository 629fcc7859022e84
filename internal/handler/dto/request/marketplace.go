package request

import (
	"eiffel-bike-client/internal/domain/payment"
)

type BasketItemRequest struct {
	SaleOfferID int64 `json:"saleOfferId" binding:"required"`
}

type PayPurchaseRequest struct {
	PurchaseID int64  `json:"purchaseId" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	Cvc        string `json:"cvc" binding:"required"`
}

func (r *PayPurchaseRequest) ToCard() (payment.Card, error) {
	return payment.NewCard(r.CardNumber, r.Expiry, r.Cvc)
}
