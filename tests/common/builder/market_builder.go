//go:build unit

package builder

import (
	"time"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/saleoffer"

	"github.com/google/uuid"
)

type SaleOfferBuilder struct {
	ID             int64
	BikeID         int64
	SellerID       uuid.UUID
	AskingPriceEur float64
	Status         saleoffer.Status
}

func NewSaleOfferBuilder() *SaleOfferBuilder {
	return &SaleOfferBuilder{
		ID:             10,
		BikeID:         1,
		SellerID:       uuid.New(),
		AskingPriceEur: 250,
		Status:         saleoffer.StatusListed,
	}
}

func (b *SaleOfferBuilder) WithID(id int64) *SaleOfferBuilder {
	b.ID = id
	return b
}

func (b *SaleOfferBuilder) WithSellerID(id uuid.UUID) *SaleOfferBuilder {
	b.SellerID = id
	return b
}

func (b *SaleOfferBuilder) BuildDomain() saleoffer.SaleOffer {
	return saleoffer.SaleOffer{
		ID:             b.ID,
		BikeID:         b.BikeID,
		SellerID:       b.SellerID,
		AskingPriceEur: b.AskingPriceEur,
		Status:         b.Status,
		ListedAt:       time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

type BasketBuilder struct {
	Items []basket.Item
}

func NewBasketBuilder() *BasketBuilder {
	return &BasketBuilder{}
}

func (b *BasketBuilder) WithItem(saleOfferID int64, priceEur float64) *BasketBuilder {
	b.Items = append(b.Items, basket.Item{
		ID:                   int64(len(b.Items) + 1),
		SaleOfferID:          saleOfferID,
		BikeID:               saleOfferID,
		Description:          "City bike",
		UnitPriceEurSnapshot: priceEur,
	})
	return b
}

func (b *BasketBuilder) BuildDomain() basket.Basket {
	return basket.Basket{Items: b.Items}
}
