package usecase

import (
	"context"
	"log/slog"
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/domain/saleoffer"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
)

type OfferWorkflow interface {
	MyBikes(ctx context.Context) ([]bike.Bike, error)
	ListForRent(ctx context.Context, description string, bikeType bike.Type, dailyRateEur float64) (bike.Bike, error)
	ListForSale(ctx context.Context, bikeID int64, askingPriceEur float64, note string) (saleoffer.SaleOffer, error)
	ReturnNotes(ctx context.Context, bikeID int64) ([]rental.ReturnNote, error)
}

type offerWorkflowImpl struct {
	gateway      OfferGateway
	sessions     *session.Store
	notifier     *Notifier
	readyTimeout time.Duration
}

func NewOfferWorkflow(gateway OfferGateway, sessions *session.Store, notifier *Notifier, readyTimeout time.Duration) OfferWorkflow {
	return &offerWorkflowImpl{
		gateway:      gateway,
		sessions:     sessions,
		notifier:     notifier,
		readyTimeout: readyTimeout,
	}
}

func (w *offerWorkflowImpl) identity(ctx context.Context) (identity.Claim, error) {
	waitCtx, cancel := context.WithTimeout(ctx, w.readyTimeout)
	defer cancel()
	return w.sessions.AwaitIdentity(waitCtx)
}

// MyBikes waits for identity with a bounded deadline instead of polling; a
// missing session is a terminal failure, not a retry loop.
func (w *offerWorkflowImpl) MyBikes(ctx context.Context) ([]bike.Bike, error) {
	claim, err := w.identity(ctx)
	if err != nil {
		return nil, err
	}
	bikes, err := w.gateway.BikesOfferedBy(ctx, claim.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load offered bikes")
	}
	return bikes, nil
}

func (w *offerWorkflowImpl) ListForRent(ctx context.Context, description string, bikeType bike.Type, dailyRateEur float64) (bike.Bike, error) {
	claim, err := w.identity(ctx)
	if err != nil {
		return bike.Bike{}, err
	}

	listing, err := bike.NewListing(description, bikeType, dailyRateEur, claim.ID(), claim.Role())
	if err != nil {
		return bike.Bike{}, errs.Mark(err, errs.ErrValidation)
	}

	listed, err := w.gateway.ListBikeForRent(ctx, listing)
	if err != nil {
		return bike.Bike{}, errs.Wrap(err, "failed to list bike")
	}
	w.notifier.Show("Bike listed successfully!", SeveritySuccess)
	return listed, nil
}

// ListForSale creates the marketplace offer and then attaches the note as a
// separate call. Offer and note are independent resources: a failed note
// attach degrades to a warning and never rolls back the offer.
func (w *offerWorkflowImpl) ListForSale(ctx context.Context, bikeID int64, askingPriceEur float64, note string) (saleoffer.SaleOffer, error) {
	claim, err := w.identity(ctx)
	if err != nil {
		return saleoffer.SaleOffer{}, err
	}

	if err := saleoffer.ValidateAskingPrice(askingPriceEur); err != nil {
		return saleoffer.SaleOffer{}, errs.Mark(err, errs.ErrValidation)
	}

	if err := w.checkNoActiveOffer(ctx, bikeID); err != nil {
		return saleoffer.SaleOffer{}, err
	}

	offer, err := w.gateway.CreateSaleOffer(ctx, bikeID, claim.ID(), askingPriceEur)
	if err != nil {
		return saleoffer.SaleOffer{}, errs.Wrap(err, "failed to create sale offer")
	}

	if note != "" {
		if noteErr := w.gateway.AttachSaleNote(ctx, offer.ID, note); noteErr != nil {
			slog.Warn("sale offer created but note attach failed", "sale_offer_id", offer.ID, "error", noteErr.Error())
			w.notifier.Show("Offer listed, but the note could not be attached.", SeverityInfo)
			return offer, nil
		}
	}

	w.notifier.Show("Offer listed on the marketplace!", SeveritySuccess)
	return offer, nil
}

func (w *offerWorkflowImpl) ReturnNotes(ctx context.Context, bikeID int64) ([]rental.ReturnNote, error) {
	notes, err := w.gateway.ReturnNotes(ctx, bikeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load return notes")
	}
	return notes, nil
}

// A bike carries at most one active sale offer.
func (w *offerWorkflowImpl) checkNoActiveOffer(ctx context.Context, bikeID int64) error {
	offers, err := w.gateway.SaleOffers(ctx, "")
	if err != nil {
		return errs.Wrap(err, "failed to check existing offers")
	}
	for _, offer := range offers {
		if offer.BikeID == bikeID && offer.IsActive() {
			return errs.Mark(errs.New("bike already listed"), errs.ErrDuplicateSaleOffer)
		}
	}
	return nil
}
