//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/payment"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/pkg/clock"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
	"eiffel-bike-client/internal/usecase"
	"eiffel-bike-client/tests/common/builder"
	gatewaymock "eiffel-bike-client/tests/mock/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testReadyTimeout = 100 * time.Millisecond

type RentalWorkflowTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *gatewaymock.MockRentalGateway
	sessions *session.Store
	notifier *usecase.Notifier
	workflow usecase.RentalWorkflow
	viewer   uuid.UUID
}

func (s *RentalWorkflowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockRentalGateway(s.mockCtrl)
	s.sessions = session.NewStore(session.NewMemoryCredentialStore())
	s.notifier = usecase.NewNotifier(time.Minute, clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
	s.workflow = usecase.NewRentalWorkflow(s.gateway, s.sessions, s.notifier, testReadyTimeout)

	b := builder.NewClaimBuilder().WithRole(identity.RoleStudent)
	s.viewer = b.ID
	_, err := s.sessions.Establish(b.BuildCredential(s.T()))
	s.Require().NoError(err)
}

func (s *RentalWorkflowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalWorkflowSuite(t *testing.T) {
	suite.Run(t, new(RentalWorkflowTestSuite))
}

func (s *RentalWorkflowTestSuite) expectDashboard(bikes []bike.Bike, rentals []rental.Rental) {
	s.gateway.EXPECT().Rentals(gomock.Any()).Return(rentals, nil)
	s.gateway.EXPECT().AllBikes(gomock.Any()).Return(bikes, nil)
	s.gateway.EXPECT().Notifications(gomock.Any(), s.viewer).Return(nil, nil)
}

func (s *RentalWorkflowTestSuite) TestDashboard() {
	s.Run("merges catalog, own rentals, and notifications", func() {
		s.SetupTest()
		myBike := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusRented).BuildDomain()
		otherBike := builder.NewBikeBuilder().WithID(2).BuildDomain()
		myRental := builder.NewRentalBuilder().WithBikeID(1).WithCustomerID(s.viewer).WithStatus(rental.StatusActive).BuildDomain()
		strangerRental := builder.NewRentalBuilder().WithBikeID(2).WithCustomerID(uuid.New()).WithStatus(rental.StatusActive).BuildDomain()

		s.expectDashboard([]bike.Bike{myBike, otherBike}, []rental.Rental{myRental, strangerRental})

		view, err := s.workflow.Dashboard(context.Background())
		s.Require().NoError(err)

		s.Require().Len(view.Bikes, 2)
		s.True(view.Bikes[0].IsRentedByMe)
		s.False(view.Bikes[1].IsRentedByMe)

		s.Require().Len(view.ActiveRentals, 1, "only the viewer's rentals belong on the dashboard")
		s.Equal(myRental.ID, view.ActiveRentals[0].ID)
	})

	s.Run("fails without a session", func() {
		s.SetupTest()
		s.sessions.Clear()

		_, err := s.workflow.Dashboard(context.Background())
		s.ErrorIs(err, errs.ErrNoSession)
	})
}

func (s *RentalWorkflowTestSuite) TestRequestRent() {
	s.Run("renting your own bike is denied before any backend call", func() {
		s.SetupTest()
		own := builder.NewBikeBuilder().WithID(1).WithOfferedBy(s.viewer).BuildDomain()
		s.expectDashboard([]bike.Bike{own}, nil)
		// No CreateRental expectation: the denial must not reach the backend.

		_, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.ErrorIs(err, usecase.ErrSelfRentalDenied)
		s.ErrorIs(err, errs.ErrSelfActionDenied)
	})

	s.Run("already renting the bike is a no-op", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusRented).BuildDomain()
		mine := builder.NewRentalBuilder().WithBikeID(1).WithCustomerID(s.viewer).WithStatus(rental.StatusActive).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, []rental.Rental{mine})

		step, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)
		s.Equal(usecase.StageNoop, step.Stage)
	})

	s.Run("a bike reserved for me reuses the reservation for payment", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusReserved).BuildDomain()
		reserved := builder.NewRentalBuilder().WithBikeID(1).WithCustomerID(s.viewer).WithStatus(rental.StatusReserved).BuildDomain()
		reserved.ID = 777
		s.expectDashboard([]bike.Bike{b}, []rental.Rental{reserved})

		step, err := s.workflow.RequestRent(context.Background(), 1, 2)
		s.Require().NoError(err)
		s.Equal(usecase.StagePaymentRequired, step.Stage)
		s.Equal(int64(777), step.RentalID, "must reuse the reservation, never create a duplicate")
		s.InDelta(b.DailyRateEur*2, step.AmountEur, 0.001)
	})

	s.Run("an available bike stops at the payment step", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusAvailable).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)

		step, err := s.workflow.RequestRent(context.Background(), 1, 5)
		s.Require().NoError(err)
		s.Equal(usecase.StagePaymentRequired, step.Stage)
		s.Zero(step.RentalID, "no rental exists until payment is confirmed")
		s.InDelta(b.DailyRateEur*5, step.AmountEur, 0.001)
	})

	s.Run("a taken bike joins the waitlist without payment", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusRented).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		s.gateway.EXPECT().CreateRental(gomock.Any(), int64(1), s.viewer, 3).
			Return(rental.RentOutcome{Result: rental.RentResultWaitlisted, WaitlistEntryID: 42}, nil)
		s.expectDashboard([]bike.Bike{b}, nil) // post-action refresh

		step, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)
		s.Equal(usecase.StageWaitlisted, step.Stage)
	})

	s.Run("the backend may grant a taken bike immediately", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusRented).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		s.gateway.EXPECT().CreateRental(gomock.Any(), int64(1), s.viewer, 3).
			Return(rental.RentOutcome{Result: rental.RentResultRented, RentalID: 55}, nil)
		s.expectDashboard([]bike.Bike{b}, nil)

		step, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)
		s.Equal(usecase.StageActive, step.Stage)
		s.Equal(int64(55), step.RentalID)
	})

	s.Run("rejects out-of-range day counts without touching the backend", func() {
		s.SetupTest()
		for _, days := range []int{0, -1, 31} {
			_, err := s.workflow.RequestRent(context.Background(), 1, days)
			s.ErrorIs(err, usecase.ErrInvalidDays)
			s.ErrorIs(err, errs.ErrValidation)
		}
	})

	s.Run("unknown bike id is not found", func() {
		s.SetupTest()
		s.expectDashboard(nil, nil)

		_, err := s.workflow.RequestRent(context.Background(), 99, 3)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *RentalWorkflowTestSuite) TestConfirmPayment() {
	card := s.card()

	s.Run("creates the rental then pays it", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusAvailable).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		step, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)

		s.gateway.EXPECT().CreateRental(gomock.Any(), int64(1), s.viewer, 3).
			Return(rental.RentOutcome{Result: rental.RentResultRented, RentalID: 42}, nil)
		s.gateway.EXPECT().PayRental(gomock.Any(), int64(42), step.AmountEur, "EUR", payment.DefaultMethod).Return(nil)
		s.expectDashboard([]bike.Bike{b}, nil)

		result, err := s.workflow.ConfirmPayment(context.Background(), card)
		s.Require().NoError(err)
		s.Equal(usecase.StageActive, result.Stage)
		s.Equal(int64(42), result.RentalID)

		alert := s.notifier.Current()
		s.Require().NotNil(alert)
		s.Equal(usecase.SeveritySuccess, alert.Severity)
	})

	s.Run("a reused reservation pays without creating a rental", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusReserved).BuildDomain()
		reserved := builder.NewRentalBuilder().WithBikeID(1).WithCustomerID(s.viewer).WithStatus(rental.StatusReserved).BuildDomain()
		reserved.ID = 777
		s.expectDashboard([]bike.Bike{b}, []rental.Rental{reserved})
		step, err := s.workflow.RequestRent(context.Background(), 1, 2)
		s.Require().NoError(err)

		// No CreateRental expectation: the reservation already exists.
		s.gateway.EXPECT().PayRental(gomock.Any(), int64(777), step.AmountEur, "EUR", payment.DefaultMethod).Return(nil)
		s.expectDashboard([]bike.Bike{b}, nil)

		result, err := s.workflow.ConfirmPayment(context.Background(), card)
		s.Require().NoError(err)
		s.Equal(usecase.StageActive, result.Stage)
	})

	s.Run("a failed payment keeps the step pending for retry", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusAvailable).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		step, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)

		s.gateway.EXPECT().CreateRental(gomock.Any(), int64(1), s.viewer, 3).
			Return(rental.RentOutcome{Result: rental.RentResultRented, RentalID: 42}, nil)
		s.gateway.EXPECT().PayRental(gomock.Any(), int64(42), step.AmountEur, "EUR", payment.DefaultMethod).
			Return(errors.New("card declined"))

		_, err = s.workflow.ConfirmPayment(context.Background(), card)
		s.Require().Error(err)

		// Retry pays the same rental; no second CreateRental.
		s.gateway.EXPECT().PayRental(gomock.Any(), int64(42), step.AmountEur, "EUR", payment.DefaultMethod).Return(nil)
		s.expectDashboard([]bike.Bike{b}, nil)

		result, err := s.workflow.ConfirmPayment(context.Background(), card)
		s.Require().NoError(err)
		s.Equal(usecase.StageActive, result.Stage)
	})

	s.Run("the bike can be grabbed while the payment form is open", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusAvailable).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		_, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)

		s.gateway.EXPECT().CreateRental(gomock.Any(), int64(1), s.viewer, 3).
			Return(rental.RentOutcome{Result: rental.RentResultWaitlisted, WaitlistEntryID: 9}, nil)
		s.expectDashboard([]bike.Bike{b}, nil)

		step, err := s.workflow.ConfirmPayment(context.Background(), card)
		s.Require().NoError(err)
		s.Equal(usecase.StageWaitlisted, step.Stage)

		// The pending step is gone; another confirm has nothing to pay.
		_, err = s.workflow.ConfirmPayment(context.Background(), card)
		s.ErrorIs(err, errs.ErrNoPendingPayment)
	})

	s.Run("confirming with nothing pending fails", func() {
		s.SetupTest()
		_, err := s.workflow.ConfirmPayment(context.Background(), card)
		s.ErrorIs(err, errs.ErrNoPendingPayment)
	})

	s.Run("cancel clears the pending step", func() {
		s.SetupTest()
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusAvailable).BuildDomain()
		s.expectDashboard([]bike.Bike{b}, nil)
		_, err := s.workflow.RequestRent(context.Background(), 1, 3)
		s.Require().NoError(err)

		s.workflow.CancelPayment()

		_, err = s.workflow.ConfirmPayment(context.Background(), card)
		s.ErrorIs(err, errs.ErrNoPendingPayment)
	})
}

func (s *RentalWorkflowTestSuite) TestReturnBike() {
	s.Run("returns an owned active rental and refreshes", func() {
		s.SetupTest()
		mine := builder.NewRentalBuilder().WithCustomerID(s.viewer).WithStatus(rental.StatusActive).BuildDomain()
		s.gateway.EXPECT().ActiveRentals(gomock.Any(), s.viewer).Return([]rental.Rental{mine}, nil)
		s.gateway.EXPECT().ReturnBike(gomock.Any(), mine.ID, s.viewer, rental.ConditionGood, "all fine").Return(nil)
		s.expectDashboard(nil, nil)

		err := s.workflow.ReturnBike(context.Background(), mine.ID, rental.ConditionGood, "all fine")
		s.Require().NoError(err)
	})

	s.Run("cannot return someone else's rental", func() {
		s.SetupTest()
		s.gateway.EXPECT().ActiveRentals(gomock.Any(), s.viewer).Return(nil, nil)

		err := s.workflow.ReturnBike(context.Background(), 123, rental.ConditionGood, "")
		s.ErrorIs(err, usecase.ErrNotYourRental)
	})
}

func (s *RentalWorkflowTestSuite) TestWaitlist() {
	served := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []rental.WaitlistEntry{
		{ID: 1, CustomerID: s.viewer, BikeID: 1},
		{ID: 2, CustomerID: s.viewer, BikeID: 2, ServedAt: &served},
	}
	s.gateway.EXPECT().Waitlist(gomock.Any(), s.viewer).Return(entries, nil)

	pending, err := s.workflow.Waitlist(context.Background())
	s.Require().NoError(err)
	s.Require().Len(pending, 1, "served entries are not actionable")
	s.Equal(int64(1), pending[0].ID)
}

func (s *RentalWorkflowTestSuite) card() payment.Card {
	card, err := payment.NewCard("4444444444444444", "12/30", "123")
	s.Require().NoError(err)
	return card
}
