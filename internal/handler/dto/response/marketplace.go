package response

import (
	"time"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/saleoffer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SaleOfferResponse struct {
	ID             int64     `json:"id"`
	BikeID         int64     `json:"bikeId"`
	SellerID       uuid.UUID `json:"sellerId"`
	AskingPriceEur float64   `json:"askingPriceEur"`
	Status         string    `json:"status"`
	ListedAt       time.Time `json:"listedAt"`
}

type BasketItemResponse struct {
	ID           int64   `json:"id"`
	SaleOfferID  int64   `json:"saleOfferId"`
	BikeID       int64   `json:"bikeId"`
	Description  string  `json:"description"`
	UnitPriceEur float64 `json:"unitPriceEur"`
}

type BasketResponse struct {
	Items    []BasketItemResponse `json:"items"`
	TotalEur float64              `json:"totalEur"`
	// Display-currency projection of the total. The stored amounts stay in
	// euros regardless of the selected currency.
	Currency     string  `json:"currency"`
	TotalDisplay float64 `json:"totalDisplay"`
}

type PurchaseResponse struct {
	ID           int64     `json:"id"`
	Status       string    `json:"status"`
	TotalEur     float64   `json:"totalEur"`
	CheckedOutAt time.Time `json:"checkedOutAt"`
}

func FromSaleOffer(o saleoffer.SaleOffer) SaleOfferResponse {
	return SaleOfferResponse{
		ID:             o.ID,
		BikeID:         o.BikeID,
		SellerID:       o.SellerID,
		AskingPriceEur: o.AskingPriceEur,
		Status:         string(o.Status),
		ListedAt:       o.ListedAt,
	}
}

func FromSaleOffers(offers []saleoffer.SaleOffer) []SaleOfferResponse {
	resp := make([]SaleOfferResponse, 0, len(offers))
	_ = copier.Copy(&resp, &offers)
	return resp
}

func FromBasket(b basket.Basket, currency string, convert func(float64) float64) *BasketResponse {
	items := make([]BasketItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, BasketItemResponse{
			ID:           item.ID,
			SaleOfferID:  item.SaleOfferID,
			BikeID:       item.BikeID,
			Description:  item.Description,
			UnitPriceEur: item.UnitPriceEurSnapshot,
		})
	}
	total := b.TotalEur()
	return &BasketResponse{
		Items:        items,
		TotalEur:     total,
		Currency:     currency,
		TotalDisplay: convert(total),
	}
}

func FromPurchase(p basket.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:           p.ID,
		Status:       string(p.Status),
		TotalEur:     p.TotalEur,
		CheckedOutAt: p.CheckedOutAt,
	}
}
