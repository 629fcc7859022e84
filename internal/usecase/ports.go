package usecase

import (
	"context"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/domain/saleoffer"

	"github.com/google/uuid"
)

// Gateway ports consumed by the workflows. The backend is an external
// collaborator: these are narrow request/response surfaces, no workflow state
// lives behind them.

type AuthGateway interface {
	Register(ctx context.Context, registration identity.Registration) error
	Login(ctx context.Context, credentials identity.Credentials) (credential string, raw []byte, err error)
}

type RentalGateway interface {
	AllBikes(ctx context.Context) ([]bike.Bike, error)
	Rentals(ctx context.Context) ([]rental.Rental, error)
	ActiveRentals(ctx context.Context, customerID uuid.UUID) ([]rental.Rental, error)
	Waitlist(ctx context.Context, customerID uuid.UUID) ([]rental.WaitlistEntry, error)
	Notifications(ctx context.Context, customerID uuid.UUID) ([]rental.Notification, error)
	CreateRental(ctx context.Context, bikeID int64, customerID uuid.UUID, days int) (rental.RentOutcome, error)
	ReturnBike(ctx context.Context, rentalID int64, authorCustomerID uuid.UUID, condition rental.Condition, comment string) error
	PayRental(ctx context.Context, rentalID int64, amountEur float64, currency, methodID string) error
}

type MarketGateway interface {
	SaleOffers(ctx context.Context, query string) ([]saleoffer.SaleOffer, error)
	SaleOffer(ctx context.Context, offerID int64) (saleoffer.SaleOffer, error)
	FetchBasket(ctx context.Context) (basket.Basket, error)
	AddBasketItem(ctx context.Context, saleOfferID int64) (basket.Basket, error)
	RemoveBasketItem(ctx context.Context, saleOfferID int64) (basket.Basket, error)
	Checkout(ctx context.Context) (basket.Purchase, error)
	PayPurchase(ctx context.Context, purchaseID int64, amountEur float64, currency, methodID string) error
}

type OfferGateway interface {
	BikesOfferedBy(ctx context.Context, customerID uuid.UUID) ([]bike.Bike, error)
	ListBikeForRent(ctx context.Context, listing bike.Listing) (bike.Bike, error)
	ReturnNotes(ctx context.Context, bikeID int64) ([]rental.ReturnNote, error)
	SaleOffers(ctx context.Context, query string) ([]saleoffer.SaleOffer, error)
	CreateSaleOffer(ctx context.Context, bikeID int64, sellerID uuid.UUID, askingPriceEur float64) (saleoffer.SaleOffer, error)
	AttachSaleNote(ctx context.Context, saleOfferID int64, text string) error
}

type FxGateway interface {
	LatestRates(ctx context.Context) (map[string]float64, error)
}
