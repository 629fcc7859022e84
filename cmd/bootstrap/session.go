package bootstrap

import (
	"context"
	"log/slog"

	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewCredentialStore,
		session.NewStore,
	),
	fx.Invoke(restoreSession),
)

func NewCredentialStore(cfg config.Config) (session.CredentialStore, error) {
	if cfg.Session.StateDir == "" {
		return session.NewMemoryCredentialStore(), nil
	}
	return session.NewFileCredentialStore(cfg.Session.StateDir)
}

// restoreSession replays the persisted credential on startup so a restart
// does not log the user out. A corrupt credential purges itself; that is a
// fresh start, not a fatal error.
func restoreSession(lc fx.Lifecycle, sessions *session.Store) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := sessions.Initialize(); err != nil {
				slog.Warn("stored credential rejected, starting logged out", "error", err)
			}
			return nil
		},
	})
}
