//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/pkg/clock"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
	"eiffel-bike-client/internal/usecase"
	"eiffel-bike-client/tests/common/builder"
	gatewaymock "eiffel-bike-client/tests/mock/gateway"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthWorkflowTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *gatewaymock.MockAuthGateway
	sessions *session.Store
	workflow usecase.AuthWorkflow
}

func (s *AuthWorkflowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockAuthGateway(s.mockCtrl)
	s.sessions = session.NewStore(session.NewMemoryCredentialStore())
	notifier := usecase.NewNotifier(time.Minute, clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
	s.workflow = usecase.NewAuthWorkflow(s.gateway, s.sessions, notifier)
}

func (s *AuthWorkflowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthWorkflowSuite(t *testing.T) {
	suite.Run(t, new(AuthWorkflowTestSuite))
}

func (s *AuthWorkflowTestSuite) credentials() identity.Credentials {
	creds, err := identity.NewCredentials("test@example.com", "password123")
	s.Require().NoError(err)
	return creds
}

func (s *AuthWorkflowTestSuite) TestLogin() {
	s.Run("installs the session and returns the claim synchronously", func() {
		s.SetupTest()
		b := builder.NewClaimBuilder().WithRole(identity.RoleOrdinary)
		credential := b.BuildCredential(s.T())
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(credential, []byte(`{"name":"Test Customer","email":"test@example.com"}`), nil)

		claim, err := s.workflow.Login(context.Background(), s.credentials())
		s.Require().NoError(err)
		s.Equal(b.ID, claim.ID())
		s.Equal(identity.RoleOrdinary, claim.Role())

		current := s.sessions.Current()
		s.Require().NotNil(current)
		s.Equal(b.ID, current.ID())
	})

	s.Run("a backend rejection leaves no session behind", func() {
		s.SetupTest()
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, errs.ErrInvalidCredentials)

		_, err := s.workflow.Login(context.Background(), s.credentials())
		s.ErrorIs(err, errs.ErrInvalidCredentials)
		s.Nil(s.sessions.Current())
	})

	s.Run("an undecodable credential fails authentication", func() {
		s.SetupTest()
		s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("not-a-token", nil, nil)

		_, err := s.workflow.Login(context.Background(), s.credentials())
		s.ErrorIs(err, errs.ErrAuthenticationFailed)
		s.Nil(s.sessions.Current())
	})
}

func (s *AuthWorkflowTestSuite) TestRegister() {
	s.Run("succeeds", func() {
		s.SetupTest()
		registration, err := identity.NewRegistration("Test Customer", "test@example.com", "password123", string(identity.RoleStudent))
		s.Require().NoError(err)
		s.gateway.EXPECT().Register(gomock.Any(), registration).Return(nil)

		s.Require().NoError(s.workflow.Register(context.Background(), registration))
	})

	s.Run("propagates backend failures", func() {
		s.SetupTest()
		registration, err := identity.NewRegistration("Test Customer", "test@example.com", "password123", string(identity.RoleStudent))
		s.Require().NoError(err)
		s.gateway.EXPECT().Register(gomock.Any(), registration).Return(errors.New("email taken"))

		s.Error(s.workflow.Register(context.Background(), registration))
	})
}

func (s *AuthWorkflowTestSuite) TestCurrentUser() {
	s.Run("builds the view from the claim", func() {
		s.SetupTest()
		b := builder.NewClaimBuilder().WithRole(identity.RoleOrdinary)
		_, err := s.sessions.Establish(b.BuildCredential(s.T()))
		s.Require().NoError(err)

		view, err := s.workflow.CurrentUser()
		s.Require().NoError(err)
		s.Equal(b.ID.String(), view.ID)
		s.Equal("Test Customer", view.FullName)
		s.Equal(session.SalesPath, view.Landing, "ordinary customers land on the marketplace")
	})

	s.Run("fills missing display fields from the login snapshot", func() {
		s.SetupTest()
		b := builder.NewClaimBuilder()
		b.FullName = ""
		b.Email = ""
		_, err := s.sessions.Establish(b.BuildCredential(s.T()))
		s.Require().NoError(err)
		s.sessions.SaveLoginSnapshot([]byte(`{"name":"Snapshot Name","email":"snap@example.com"}`))

		view, err := s.workflow.CurrentUser()
		s.Require().NoError(err)
		s.Equal("Snapshot Name", view.FullName)
		s.Equal("snap@example.com", view.Email)
	})

	s.Run("fails when logged out", func() {
		s.SetupTest()

		_, err := s.workflow.CurrentUser()
		s.ErrorIs(err, errs.ErrNoSession)
	})
}

func (s *AuthWorkflowTestSuite) TestLogout() {
	b := builder.NewClaimBuilder()
	_, err := s.sessions.Establish(b.BuildCredential(s.T()))
	s.Require().NoError(err)

	s.workflow.Logout()
	s.Nil(s.sessions.Current())
}
