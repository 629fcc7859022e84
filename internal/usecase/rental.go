package usecase

import (
	"context"
	"sync"
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/payment"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
)

var (
	ErrSelfRentalDenied = errs.New("cannot rent your own bike")
	ErrBikeUnknown      = errs.New("bike not in the current catalog")
	ErrInvalidDays      = errs.New("rental days must be between 1 and 30")
	ErrNotYourRental    = errs.New("rental is not active for the current user")
)

const (
	minRentalDays = 1
	maxRentalDays = 30
)

// RentStage is where a rent attempt settled.
type RentStage string

const (
	// StagePaymentRequired: the bike is held for the user; payment completes
	// the rental.
	StagePaymentRequired RentStage = "PAYMENT_REQUIRED"
	// StageWaitlisted: the bike is taken; the user joined its waitlist.
	StageWaitlisted RentStage = "WAITLISTED"
	// StageActive: the rental is live (payment confirmed, or the backend
	// granted it immediately).
	StageActive RentStage = "ACTIVE"
	// StageNoop: the user already rents this bike; nothing to do.
	StageNoop RentStage = "NOOP"
)

// RentStep reports the outcome of a rent or payment action.
type RentStep struct {
	Stage     RentStage
	Bike      *bike.View
	RentalID  int64
	AmountEur float64
	Days      int
	Message   string
}

// DashboardView is the merged catalog + rentals + notifications state the
// dashboard renders from. It is replaced wholesale on every refresh.
type DashboardView struct {
	Bikes         []bike.View
	ActiveRentals []rental.Rental
	Notifications []rental.Notification
}

type RentalWorkflow interface {
	Dashboard(ctx context.Context) (*DashboardView, error)
	RequestRent(ctx context.Context, bikeID int64, days int) (*RentStep, error)
	ConfirmPayment(ctx context.Context, card payment.Card) (*RentStep, error)
	CancelPayment()
	ReturnBike(ctx context.Context, rentalID int64, condition rental.Condition, comment string) error
	Waitlist(ctx context.Context) ([]rental.WaitlistEntry, error)
}

type rentalWorkflowImpl struct {
	gateway      RentalGateway
	sessions     *session.Store
	notifier     *Notifier
	readyTimeout time.Duration

	mu      sync.Mutex
	view    *DashboardView
	pending *RentStep
}

func NewRentalWorkflow(gateway RentalGateway, sessions *session.Store, notifier *Notifier, readyTimeout time.Duration) RentalWorkflow {
	return &rentalWorkflowImpl{
		gateway:      gateway,
		sessions:     sessions,
		notifier:     notifier,
		readyTimeout: readyTimeout,
	}
}

func (w *rentalWorkflowImpl) identity(ctx context.Context) (identity.Claim, error) {
	waitCtx, cancel := context.WithTimeout(ctx, w.readyTimeout)
	defer cancel()
	return w.sessions.AwaitIdentity(waitCtx)
}

// Dashboard fetches the user's rentals, then the catalog, then the
// notifications, and merges them in one step. The derived bike flags and the
// rental lists are two views of the same backend state, so they are always
// recomputed together.
func (w *rentalWorkflowImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	claim, err := w.identity(ctx)
	if err != nil {
		return nil, err
	}

	rentals, err := w.gateway.Rentals(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rentals")
	}

	bikes, err := w.gateway.AllBikes(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bike catalog")
	}

	notifications, err := w.gateway.Notifications(ctx, claim.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load notifications")
	}

	mine := make([]rental.Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.CustomerID == claim.ID() {
			mine = append(mine, r)
		}
	}

	view := &DashboardView{
		Bikes:         bike.BuildViews(bikes, rentals, claim.ID()),
		ActiveRentals: rental.ActiveOnly(mine),
		Notifications: notifications,
	}

	w.mu.Lock()
	w.view = view
	w.mu.Unlock()
	return view, nil
}

// RequestRent drives the per-bike state machine. Order matters: the self
// rental and rented-by-me checks must short-circuit before any backend call.
func (w *rentalWorkflowImpl) RequestRent(ctx context.Context, bikeID int64, days int) (*RentStep, error) {
	if days < minRentalDays || days > maxRentalDays {
		return nil, errs.Mark(ErrInvalidDays, errs.ErrValidation)
	}

	claim, err := w.identity(ctx)
	if err != nil {
		return nil, err
	}

	view, err := w.currentView(ctx)
	if err != nil {
		return nil, err
	}

	target := findBike(view.Bikes, bikeID)
	if target == nil {
		return nil, errs.Mark(ErrBikeUnknown, errs.ErrNotFound)
	}

	if target.IsOfferedBy(claim.ID()) {
		return nil, errs.Mark(ErrSelfRentalDenied, errs.ErrSelfActionDenied)
	}

	if target.IsRentedByMe {
		return &RentStep{Stage: StageNoop, Bike: target, Message: "You already rent this bike."}, nil
	}

	// A served waitlist entry left a reservation behind: reuse it, never
	// create a duplicate rental.
	if target.IsReservedForMe {
		step := &RentStep{
			Stage:     StagePaymentRequired,
			Bike:      target,
			RentalID:  target.ReservedRentalID,
			AmountEur: target.DailyRateEur * float64(days),
			Days:      days,
		}
		w.setPending(step)
		return step, nil
	}

	if target.Status == bike.StatusAvailable {
		step := &RentStep{
			Stage:     StagePaymentRequired,
			Bike:      target,
			AmountEur: target.DailyRateEur * float64(days),
			Days:      days,
		}
		w.setPending(step)
		return step, nil
	}

	// Taken by someone else: join the waitlist, no payment yet.
	outcome, err := w.gateway.CreateRental(ctx, bikeID, claim.ID(), days)
	if err != nil {
		return nil, errs.Wrap(err, "failed to join waitlist")
	}
	w.refresh(ctx)

	if outcome.Rented() {
		// Backend edge case: the bike freed up between fetch and rent.
		return &RentStep{Stage: StageActive, Bike: target, RentalID: outcome.RentalID, Message: outcome.Message}, nil
	}
	message := outcome.Message
	if message == "" {
		message = "Bike is taken; you joined the waitlist."
	}
	return &RentStep{Stage: StageWaitlisted, Bike: target, Message: message}, nil
}

// ConfirmPayment completes a rent attempt that stopped at the payment step.
// The rental record exists server-side once created, so a payment failure
// leaves the step pending and retryable; it never cancels the rental.
func (w *rentalWorkflowImpl) ConfirmPayment(ctx context.Context, card payment.Card) (*RentStep, error) {
	_ = card // validated at construction; the provider does the real vetting

	claim, err := w.identity(ctx)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	pending := w.pending
	w.mu.Unlock()
	if pending == nil {
		return nil, errs.ErrNoPendingPayment
	}

	rentalID := pending.RentalID
	if rentalID == 0 {
		outcome, err := w.gateway.CreateRental(ctx, pending.Bike.ID, claim.ID(), pending.Days)
		if err != nil {
			return nil, errs.Wrap(err, "failed to create rental")
		}
		if outcome.Waitlisted() {
			// The bike was grabbed while the form was open.
			w.clearPending()
			w.refresh(ctx)
			w.notifier.Show("Bike was just taken; you joined the waitlist.", SeverityInfo)
			return &RentStep{Stage: StageWaitlisted, Bike: pending.Bike, Message: outcome.Message}, nil
		}
		rentalID = outcome.RentalID
		w.mu.Lock()
		if w.pending == pending {
			w.pending.RentalID = rentalID
		}
		w.mu.Unlock()
	}

	err = w.gateway.PayRental(ctx, rentalID, pending.AmountEur, baseCurrency, payment.DefaultMethod)
	if err != nil {
		w.notifier.Show("Payment failed. Please try again.", SeverityError)
		return nil, errs.Wrap(err, "rental payment failed")
	}

	w.clearPending()
	w.refresh(ctx)
	w.notifier.Show("Payment successful! Your rental is now active.", SeveritySuccess)
	return &RentStep{Stage: StageActive, Bike: pending.Bike, RentalID: rentalID, AmountEur: pending.AmountEur}, nil
}

func (w *rentalWorkflowImpl) CancelPayment() {
	w.clearPending()
}

func (w *rentalWorkflowImpl) ReturnBike(ctx context.Context, rentalID int64, condition rental.Condition, comment string) error {
	if rentalID == 0 {
		return errs.Mark(errs.New("rental id is required"), errs.ErrValidation)
	}
	if _, err := rental.NewCondition(condition.String()); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	claim, err := w.identity(ctx)
	if err != nil {
		return err
	}

	active, err := w.gateway.ActiveRentals(ctx, claim.ID())
	if err != nil {
		return errs.Wrap(err, "failed to check active rentals")
	}
	if !ownsRental(active, rentalID) {
		return errs.Mark(ErrNotYourRental, errs.ErrValidation)
	}

	if err := w.gateway.ReturnBike(ctx, rentalID, claim.ID(), condition, comment); err != nil {
		return errs.Wrap(err, "failed to return bike")
	}

	// A return can serve someone's waitlist entry, so the rental and
	// waitlist views must move together.
	w.refresh(ctx)
	w.notifier.Show("Bike returned. Thank you!", SeveritySuccess)
	return nil
}

func (w *rentalWorkflowImpl) Waitlist(ctx context.Context) ([]rental.WaitlistEntry, error) {
	claim, err := w.identity(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := w.gateway.Waitlist(ctx, claim.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load waitlist")
	}
	return rental.PendingOnly(entries), nil
}

func (w *rentalWorkflowImpl) currentView(ctx context.Context) (*DashboardView, error) {
	w.mu.Lock()
	view := w.view
	w.mu.Unlock()
	if view != nil {
		return view, nil
	}
	return w.Dashboard(ctx)
}

// refresh reloads the merged view after a mutating action; a failed refresh
// only means the next Dashboard call fetches fresh data.
func (w *rentalWorkflowImpl) refresh(ctx context.Context) {
	if _, err := w.Dashboard(ctx); err != nil {
		w.mu.Lock()
		w.view = nil
		w.mu.Unlock()
	}
}

func (w *rentalWorkflowImpl) setPending(step *RentStep) {
	w.mu.Lock()
	w.pending = step
	w.mu.Unlock()
}

func (w *rentalWorkflowImpl) clearPending() {
	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()
}

func findBike(views []bike.View, bikeID int64) *bike.View {
	for i := range views {
		if views[i].ID == bikeID {
			return &views[i]
		}
	}
	return nil
}

func ownsRental(active []rental.Rental, rentalID int64) bool {
	for _, r := range active {
		if r.ID == rentalID && r.IsActive() {
			return true
		}
	}
	return false
}
