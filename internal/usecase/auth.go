package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
)

// CurrentUserView is what the UI shows about the logged-in user. Display
// fields fall back to the persisted login snapshot when the credential does
// not carry them.
type CurrentUserView struct {
	ID       string
	FullName string
	Email    string
	Role     identity.Role
	Landing  string
}

type AuthWorkflow interface {
	Register(ctx context.Context, registration identity.Registration) error
	Login(ctx context.Context, credentials identity.Credentials) (identity.Claim, error)
	Logout()
	CurrentUser() (*CurrentUserView, error)
}

type authWorkflowImpl struct {
	gateway  AuthGateway
	sessions *session.Store
	notifier *Notifier
}

func NewAuthWorkflow(gateway AuthGateway, sessions *session.Store, notifier *Notifier) AuthWorkflow {
	return &authWorkflowImpl{
		gateway:  gateway,
		sessions: sessions,
		notifier: notifier,
	}
}

func (a *authWorkflowImpl) Register(ctx context.Context, registration identity.Registration) error {
	if err := a.gateway.Register(ctx, registration); err != nil {
		return errs.Wrap(err, "registration failed")
	}
	a.notifier.Show("Account created. You can now log in.", SeveritySuccess)
	return nil
}

// Login authenticates against the backend, installs the session, and returns
// the decoded claim synchronously. Callers use the returned claim for the
// post-login redirect; re-deriving it from storage would race the persist.
func (a *authWorkflowImpl) Login(ctx context.Context, credentials identity.Credentials) (identity.Claim, error) {
	credential, raw, err := a.gateway.Login(ctx, credentials)
	if err != nil {
		return identity.Claim{}, err
	}

	claim, err := a.sessions.Establish(credential)
	if err != nil {
		slog.Warn("login succeeded but credential does not decode", "error", err.Error())
		return identity.Claim{}, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	if len(raw) > 0 {
		a.sessions.SaveLoginSnapshot(raw)
	}
	return claim, nil
}

func (a *authWorkflowImpl) Logout() {
	a.sessions.Clear()
}

func (a *authWorkflowImpl) CurrentUser() (*CurrentUserView, error) {
	claim := a.sessions.Current()
	if claim == nil {
		return nil, errs.ErrNoSession
	}

	view := &CurrentUserView{
		ID:       claim.ID().String(),
		FullName: claim.FullName(),
		Email:    claim.Email(),
		Role:     claim.Role(),
		Landing:  session.LandingPath(claim.Role()),
	}

	if view.FullName == "" || view.Email == "" {
		if snapshot := a.sessions.LoginSnapshot(); len(snapshot) > 0 {
			var fallback struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			}
			if err := json.Unmarshal(snapshot, &fallback); err == nil {
				if view.FullName == "" {
					view.FullName = fallback.Name
				}
				if view.Email == "" {
					view.Email = fallback.Email
				}
			}
		}
	}
	return view, nil
}
