package gateway

import (
	"log/slog"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/domain/saleoffer"

	"github.com/google/uuid"
)

// Backend resource owners arrive as opaque strings; an unparseable id is
// logged and zeroed rather than failing the whole fetch.
func parseCustomerID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		slog.Warn("backend returned a non-UUID customer id", "value", raw)
		return uuid.Nil
	}
	return id
}

func toBike(s bikeSnapshot) bike.Bike {
	return bike.Bike{
		ID:           s.ID,
		Description:  s.Description,
		Type:         bike.Type(s.Type),
		DailyRateEur: s.RentalDailyRateEur,
		OfferedBy: bike.Provider{
			ID:   parseCustomerID(s.OfferedBy.ID),
			Role: identity.NormalizeRole(s.OfferedBy.Role),
		},
		Status: bike.Status(s.Status),
	}
}

func toBikes(snapshots []bikeSnapshot) []bike.Bike {
	bikes := make([]bike.Bike, 0, len(snapshots))
	for _, s := range snapshots {
		bikes = append(bikes, toBike(s))
	}
	return bikes
}

func toRental(s rentalSnapshot) rental.Rental {
	return rental.Rental{
		ID:             s.ID,
		BikeID:         s.BikeID,
		CustomerID:     parseCustomerID(s.CustomerID),
		Status:         rental.Status(s.Status),
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		TotalAmountEur: s.TotalAmountEur,
	}
}

func toRentals(snapshots []rentalSnapshot) []rental.Rental {
	rentals := make([]rental.Rental, 0, len(snapshots))
	for _, s := range snapshots {
		rentals = append(rentals, toRental(s))
	}
	return rentals
}

func toRentOutcome(s rentOutcomeSnapshot) rental.RentOutcome {
	outcome := rental.RentOutcome{
		Result:  rental.RentResult(s.Result),
		Message: s.Message,
	}
	if s.RentalID != nil {
		outcome.RentalID = *s.RentalID
	}
	if s.WaitingListEntryID != nil {
		outcome.WaitlistEntryID = *s.WaitingListEntryID
	}
	return outcome
}

func toWaitlistEntries(snapshots []waitlistEntrySnapshot) []rental.WaitlistEntry {
	entries := make([]rental.WaitlistEntry, 0, len(snapshots))
	for _, s := range snapshots {
		entries = append(entries, rental.WaitlistEntry{
			ID:         s.ID,
			CustomerID: parseCustomerID(s.CustomerID),
			BikeID:     s.BikeID,
			CreatedAt:  s.CreatedAt,
			ServedAt:   s.ServedAt,
		})
	}
	return entries
}

func toNotifications(snapshots []notificationSnapshot) []rental.Notification {
	notifications := make([]rental.Notification, 0, len(snapshots))
	for _, s := range snapshots {
		notifications = append(notifications, rental.Notification{
			ID:         s.ID,
			CustomerID: parseCustomerID(s.CustomerID),
			BikeID:     s.BikeID,
			Message:    s.Message,
			SentAt:     s.SentAt,
		})
	}
	return notifications
}

func toReturnNotes(snapshots []returnNoteSnapshot) []rental.ReturnNote {
	notes := make([]rental.ReturnNote, 0, len(snapshots))
	for _, s := range snapshots {
		notes = append(notes, rental.ReturnNote{
			ID:        s.ID,
			BikeID:    s.BikeID,
			Condition: rental.Condition(s.Condition),
			Comment:   s.Comment,
			CreatedAt: s.CreatedAt,
		})
	}
	return notes
}

func toSaleOffer(s saleOfferSnapshot) saleoffer.SaleOffer {
	return saleoffer.SaleOffer{
		ID:             s.ID,
		BikeID:         s.BikeID,
		SellerID:       parseCustomerID(s.SellerCorpID),
		AskingPriceEur: s.AskingPriceEur,
		Status:         saleoffer.Status(s.Status),
		ListedAt:       s.ListedAt,
	}
}

func toSaleOffers(snapshots []saleOfferSnapshot) []saleoffer.SaleOffer {
	offers := make([]saleoffer.SaleOffer, 0, len(snapshots))
	for _, s := range snapshots {
		offers = append(offers, toSaleOffer(s))
	}
	return offers
}

func toBasket(s basketSnapshot) basket.Basket {
	items := make([]basket.Item, 0, len(s.Items))
	for _, i := range s.Items {
		price := i.UnitPriceEurSnapshot
		if price == 0 {
			price = i.SaleOffer.AskingPriceEur
		}
		items = append(items, basket.Item{
			ID:                   i.ID,
			SaleOfferID:          i.SaleOffer.ID,
			BikeID:               i.SaleOffer.BikeID,
			Description:          i.SaleOffer.Description,
			UnitPriceEurSnapshot: price,
		})
	}
	return basket.Basket{Items: items}
}

func toPurchase(s purchaseSnapshot) basket.Purchase {
	return basket.Purchase{
		ID:           s.ID,
		Status:       basket.PurchaseStatus(s.Status),
		TotalEur:     s.TotalEur,
		CheckedOutAt: s.CheckedOutAt,
	}
}
