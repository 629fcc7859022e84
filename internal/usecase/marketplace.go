package usecase

import (
	"context"
	"sync"
	"time"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/internal/domain/payment"
	"eiffel-bike-client/internal/domain/saleoffer"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
)

var (
	ErrSelfPurchaseDenied = errs.New("cannot buy your own bike")
	ErrWrongPurchase      = errs.New("purchase id does not match the pending purchase")
)

type MarketplaceWorkflow interface {
	Offers(ctx context.Context, query string) ([]saleoffer.SaleOffer, error)
	Basket(ctx context.Context) (basket.Basket, error)
	AddToBasket(ctx context.Context, saleOfferID int64) (basket.Basket, error)
	RemoveFromBasket(ctx context.Context, saleOfferID int64) (basket.Basket, error)
	Checkout(ctx context.Context) (basket.Purchase, error)
	PayPurchase(ctx context.Context, purchaseID int64, card payment.Card) error
	PendingPurchase() *basket.Purchase
}

type marketplaceWorkflowImpl struct {
	gateway      MarketGateway
	sessions     *session.Store
	notifier     *Notifier
	readyTimeout time.Duration

	mu      sync.Mutex
	basket  basket.Basket
	pending *basket.Purchase
}

func NewMarketplaceWorkflow(gateway MarketGateway, sessions *session.Store, notifier *Notifier, readyTimeout time.Duration) MarketplaceWorkflow {
	return &marketplaceWorkflowImpl{
		gateway:      gateway,
		sessions:     sessions,
		notifier:     notifier,
		readyTimeout: readyTimeout,
	}
}

func (w *marketplaceWorkflowImpl) Offers(ctx context.Context, query string) ([]saleoffer.SaleOffer, error) {
	offers, err := w.gateway.SaleOffers(ctx, query)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load sale offers")
	}
	return offers, nil
}

func (w *marketplaceWorkflowImpl) Basket(ctx context.Context) (basket.Basket, error) {
	fetched, err := w.gateway.FetchBasket(ctx)
	if err != nil {
		return basket.Basket{}, errs.Wrap(err, "failed to load basket")
	}
	w.replaceBasket(fetched)
	return fetched, nil
}

// AddToBasket rejects buying one's own bike before any basket mutation. On
// success the basket is replaced with the server's authoritative item list:
// the server owns the price snapshot and item ids, the client never appends
// locally.
func (w *marketplaceWorkflowImpl) AddToBasket(ctx context.Context, saleOfferID int64) (basket.Basket, error) {
	waitCtx, cancel := context.WithTimeout(ctx, w.readyTimeout)
	claim, err := w.sessions.AwaitIdentity(waitCtx)
	cancel()
	if err != nil {
		return basket.Basket{}, err
	}

	offer, err := w.gateway.SaleOffer(ctx, saleOfferID)
	if err != nil {
		return basket.Basket{}, errs.Wrap(err, "failed to load sale offer")
	}
	if offer.IsSoldBy(claim.ID()) {
		return basket.Basket{}, errs.Mark(ErrSelfPurchaseDenied, errs.ErrSelfActionDenied)
	}

	updated, err := w.gateway.AddBasketItem(ctx, saleOfferID)
	if err != nil {
		return basket.Basket{}, errs.Wrap(err, "failed to add basket item")
	}
	w.replaceBasket(updated)
	return updated, nil
}

func (w *marketplaceWorkflowImpl) RemoveFromBasket(ctx context.Context, saleOfferID int64) (basket.Basket, error) {
	updated, err := w.gateway.RemoveBasketItem(ctx, saleOfferID)
	if err != nil {
		return basket.Basket{}, errs.Wrap(err, "failed to remove basket item")
	}
	w.replaceBasket(updated)
	return updated, nil
}

// Checkout turns the basket into a pending purchase. The basket is
// deliberately left intact: it clears only on payment confirmation, so a
// failed payment leaves the order outstanding instead of dropping it.
func (w *marketplaceWorkflowImpl) Checkout(ctx context.Context) (basket.Purchase, error) {
	purchase, err := w.gateway.Checkout(ctx)
	if err != nil {
		return basket.Purchase{}, errs.Wrap(err, "checkout failed")
	}

	w.mu.Lock()
	if purchase.TotalEur == 0 {
		// Older backend revisions omit the total; the EUR fold over the
		// basket at checkout time is the same number.
		purchase.TotalEur = w.basket.TotalEur()
	}
	w.pending = &purchase
	w.mu.Unlock()
	return purchase, nil
}

// PayPurchase pays the EUR total fixed at checkout time, independent of the
// selected display currency.
func (w *marketplaceWorkflowImpl) PayPurchase(ctx context.Context, purchaseID int64, card payment.Card) error {
	_ = card // validated at construction; the provider does the real vetting

	w.mu.Lock()
	pending := w.pending
	w.mu.Unlock()
	if pending == nil {
		return errs.ErrNoPendingPurchase
	}
	if pending.ID != purchaseID {
		return errs.Mark(ErrWrongPurchase, errs.ErrValidation)
	}

	err := w.gateway.PayPurchase(ctx, purchaseID, pending.TotalEur, baseCurrency, payment.DefaultMethod)
	if err != nil {
		// The purchase stays pending and the basket intact; the user can
		// retry the same payment.
		w.notifier.Show("Payment failed. Please try again.", SeverityError)
		return errs.Wrap(err, "purchase payment failed")
	}

	w.mu.Lock()
	w.pending = nil
	w.basket = basket.Basket{}
	w.mu.Unlock()

	if refreshed, fetchErr := w.gateway.FetchBasket(ctx); fetchErr == nil {
		w.replaceBasket(refreshed)
	}
	w.notifier.Show("Purchase successful!", SeveritySuccess)
	return nil
}

func (w *marketplaceWorkflowImpl) PendingPurchase() *basket.Purchase {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return nil
	}
	pending := *w.pending
	return &pending
}

func (w *marketplaceWorkflowImpl) replaceBasket(b basket.Basket) {
	w.mu.Lock()
	w.basket = b
	w.mu.Unlock()
}
