package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/domain/saleoffer"
	"eiffel-bike-client/internal/pkg/errs"

	"github.com/google/uuid"
)

func (c *Client) Register(ctx context.Context, registration identity.Registration) error {
	body := map[string]any{
		"name":     registration.FullName,
		"email":    registration.Email,
		"password": registration.Password,
		"type":     registration.Role.String(),
	}
	return c.post(ctx, "/users/register", body, nil)
}

// Login returns the signed credential plus the raw response body; the body is
// persisted as an offline-display snapshot only.
func (c *Client) Login(ctx context.Context, credentials identity.Credentials) (credential string, raw []byte, err error) {
	var resp loginResponse
	err = c.post(ctx, "/users/login", map[string]string{"email": credentials.Email, "password": credentials.Password}, &resp)
	if err != nil {
		if errors.Is(err, errs.ErrAuthenticationFailed) {
			return "", nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return "", nil, err
	}

	credential = resp.Token
	if credential == "" {
		credential = resp.AccessToken
	}
	if credential == "" {
		return "", nil, errs.Mark(errs.New("login response carried no token"), errs.ErrAuthenticationFailed)
	}

	raw, _ = json.Marshal(resp)
	return credential, raw, nil
}

// --- Bikes ---

func (c *Client) AllBikes(ctx context.Context) ([]bike.Bike, error) {
	var snapshots []bikeSnapshot
	if err := c.get(ctx, "/bikes/all", nil, &snapshots); err != nil {
		return nil, err
	}
	return toBikes(snapshots), nil
}

func (c *Client) BikesOfferedBy(ctx context.Context, customerID uuid.UUID) ([]bike.Bike, error) {
	query := url.Values{"offeredById": {customerID.String()}}
	var snapshots []bikeSnapshot
	if err := c.get(ctx, "/bikes", query, &snapshots); err != nil {
		return nil, err
	}
	return toBikes(snapshots), nil
}

func (c *Client) ListBikeForRent(ctx context.Context, listing bike.Listing) (bike.Bike, error) {
	body := map[string]any{
		"description":        listing.Description,
		"type":               string(listing.Type),
		"rentalDailyRateEur": listing.DailyRateEur,
		"offeredById":        listing.OfferedByID.String(),
		"offeredByType":      listing.OfferedByRole.String(),
	}
	var snapshot bikeSnapshot
	if err := c.post(ctx, "/bikes", body, &snapshot); err != nil {
		return bike.Bike{}, err
	}
	return toBike(snapshot), nil
}

func (c *Client) ReturnNotes(ctx context.Context, bikeID int64) ([]rental.ReturnNote, error) {
	var snapshots []returnNoteSnapshot
	if err := c.get(ctx, fmt.Sprintf("/bikes/%d/return-notes", bikeID), nil, &snapshots); err != nil {
		return nil, err
	}
	return toReturnNotes(snapshots), nil
}

// --- Rentals ---

func (c *Client) Rentals(ctx context.Context) ([]rental.Rental, error) {
	var snapshots []rentalSnapshot
	if err := c.get(ctx, "/rentals", nil, &snapshots); err != nil {
		return nil, err
	}
	return toRentals(snapshots), nil
}

func (c *Client) ActiveRentals(ctx context.Context, customerID uuid.UUID) ([]rental.Rental, error) {
	query := url.Values{"customerId": {customerID.String()}}
	var snapshots []rentalSnapshot
	if err := c.get(ctx, "/rentals/active", query, &snapshots); err != nil {
		return nil, err
	}
	return toRentals(snapshots), nil
}

func (c *Client) Waitlist(ctx context.Context, customerID uuid.UUID) ([]rental.WaitlistEntry, error) {
	query := url.Values{"customerId": {customerID.String()}}
	var snapshots []waitlistEntrySnapshot
	if err := c.get(ctx, "/rentals/waitlist", query, &snapshots); err != nil {
		return nil, err
	}
	return toWaitlistEntries(snapshots), nil
}

func (c *Client) Notifications(ctx context.Context, customerID uuid.UUID) ([]rental.Notification, error) {
	query := url.Values{"customerId": {customerID.String()}}
	var snapshots []notificationSnapshot
	if err := c.get(ctx, "/rentals/notifications", query, &snapshots); err != nil {
		return nil, err
	}
	return toNotifications(snapshots), nil
}

func (c *Client) CreateRental(ctx context.Context, bikeID int64, customerID uuid.UUID, days int) (rental.RentOutcome, error) {
	body := map[string]any{
		"bikeId":     bikeID,
		"customerId": customerID.String(),
		"days":       days,
	}
	var snapshot rentOutcomeSnapshot
	if err := c.post(ctx, "/rentals", body, &snapshot); err != nil {
		return rental.RentOutcome{}, err
	}
	return toRentOutcome(snapshot), nil
}

func (c *Client) ReturnBike(ctx context.Context, rentalID int64, authorCustomerID uuid.UUID, condition rental.Condition, comment string) error {
	body := map[string]any{
		"authorCustomerId": authorCustomerID.String(),
		"condition":        string(condition),
		"comment":          comment,
	}
	return c.post(ctx, fmt.Sprintf("/rentals/%d/return", rentalID), body, nil)
}

// --- Payments ---

func (c *Client) PayRental(ctx context.Context, rentalID int64, amountEur float64, currency, methodID string) error {
	body := map[string]any{
		"rentalId":        rentalID,
		"amount":          amountEur,
		"currency":        currency,
		"paymentMethodId": methodID,
	}
	return c.post(ctx, "/payments/rentals", body, nil)
}

func (c *Client) PayPurchase(ctx context.Context, purchaseID int64, amountEur float64, currency, methodID string) error {
	body := map[string]any{
		"purchaseId":      purchaseID,
		"amount":          amountEur,
		"currency":        currency,
		"paymentMethodId": methodID,
	}
	return c.post(ctx, "/payments/purchases", body, nil)
}

// --- Marketplace ---

func (c *Client) SaleOffers(ctx context.Context, query string) ([]saleoffer.SaleOffer, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var snapshots []saleOfferSnapshot
	if err := c.get(ctx, "/sales/offers", params, &snapshots); err != nil {
		return nil, err
	}
	return toSaleOffers(snapshots), nil
}

func (c *Client) SaleOffer(ctx context.Context, offerID int64) (saleoffer.SaleOffer, error) {
	var snapshot saleOfferSnapshot
	if err := c.get(ctx, fmt.Sprintf("/sales/offers/%d", offerID), nil, &snapshot); err != nil {
		return saleoffer.SaleOffer{}, err
	}
	return toSaleOffer(snapshot), nil
}

func (c *Client) CreateSaleOffer(ctx context.Context, bikeID int64, sellerID uuid.UUID, askingPriceEur float64) (saleoffer.SaleOffer, error) {
	body := map[string]any{
		"bikeId":         bikeID,
		"sellerCorpId":   sellerID.String(),
		"askingPriceEur": askingPriceEur,
	}
	var snapshot saleOfferSnapshot
	if err := c.post(ctx, "/sale-offers", body, &snapshot); err != nil {
		return saleoffer.SaleOffer{}, err
	}
	return toSaleOffer(snapshot), nil
}

func (c *Client) AttachSaleNote(ctx context.Context, saleOfferID int64, text string) error {
	body := map[string]any{
		"saleOfferId": saleOfferID,
		"text":        text,
	}
	return c.post(ctx, "/sale-offers/notes", body, nil)
}

// --- Basket & checkout ---

func (c *Client) FetchBasket(ctx context.Context) (basket.Basket, error) {
	var snapshot basketSnapshot
	if err := c.get(ctx, "/basket", nil, &snapshot); err != nil {
		return basket.Basket{}, err
	}
	return toBasket(snapshot), nil
}

func (c *Client) AddBasketItem(ctx context.Context, saleOfferID int64) (basket.Basket, error) {
	var snapshot basketSnapshot
	if err := c.post(ctx, "/basket/items", map[string]int64{"saleOfferId": saleOfferID}, &snapshot); err != nil {
		return basket.Basket{}, err
	}
	return toBasket(snapshot), nil
}

func (c *Client) RemoveBasketItem(ctx context.Context, saleOfferID int64) (basket.Basket, error) {
	var snapshot basketSnapshot
	if err := c.delete(ctx, fmt.Sprintf("/basket/items/%d", saleOfferID), &snapshot); err != nil {
		return basket.Basket{}, err
	}
	return toBasket(snapshot), nil
}

func (c *Client) Checkout(ctx context.Context) (basket.Purchase, error) {
	var snapshot purchaseSnapshot
	if err := c.post(ctx, "/purchases/checkout", map[string]any{}, &snapshot); err != nil {
		return basket.Purchase{}, err
	}
	return toPurchase(snapshot), nil
}
