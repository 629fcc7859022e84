package session

import (
	"context"
	"log/slog"
	"sync"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/pkg/token"
)

// Snapshot is what subscribers receive on every session change. A nil Claim
// means logged out.
type Snapshot struct {
	Claim *identity.Claim
}

// Store owns the current identity. It is the only mutable state shared across
// workflows: many readers, single writer (Initialize/Establish/Clear).
type Store struct {
	mu      sync.RWMutex
	current *identity.Claim
	creds   CredentialStore

	subMu  sync.Mutex
	subs   map[int]chan Snapshot
	nextID int

	readyMu sync.Mutex
	ready   chan struct{}
}

func NewStore(creds CredentialStore) *Store {
	return &Store{
		creds: creds,
		subs:  make(map[int]chan Snapshot),
		ready: make(chan struct{}),
	}
}

// Initialize restores identity from a persisted credential on process start.
// A credential that no longer decodes is treated as logged out and purged
// (fail closed).
func (s *Store) Initialize() error {
	credential, err := s.creds.Load()
	if err != nil {
		return errs.Wrap(err, "failed to load persisted credential")
	}
	if credential == "" {
		return nil
	}

	claim, err := token.Decode(credential)
	if err != nil {
		slog.Warn("persisted credential no longer decodes, purging", "error", err.Error())
		if purgeErr := s.creds.Purge(); purgeErr != nil {
			slog.Warn("failed to purge stale credential", "error", purgeErr.Error())
		}
		return nil
	}

	s.set(&claim)
	return nil
}

// Establish decodes and installs a freshly obtained credential, persisting it
// best-effort. The decoded claim is returned synchronously so callers never
// re-derive the role from storage (avoids a persist/decode race). A failed
// persist is logged and the session still holds for the process lifetime;
// that inconsistency is accepted rather than failing the login.
func (s *Store) Establish(credential string) (identity.Claim, error) {
	claim, err := token.Decode(credential)
	if err != nil {
		return identity.Claim{}, err
	}

	if err := s.creds.Save(credential); err != nil {
		slog.Warn("failed to persist credential; session will not survive restart", "error", err.Error())
	}

	s.set(&claim)
	return claim, nil
}

// SaveLoginSnapshot stores the raw login response for offline display only.
func (s *Store) SaveLoginSnapshot(data []byte) {
	if err := s.creds.SaveSnapshot(data); err != nil {
		slog.Warn("failed to persist login snapshot", "error", err.Error())
	}
}

func (s *Store) LoginSnapshot() []byte {
	data, err := s.creds.LoadSnapshot()
	if err != nil {
		slog.Warn("failed to load login snapshot", "error", err.Error())
		return nil
	}
	return data
}

// Clear logs out: purge the persisted credential, drop the claim, notify.
func (s *Store) Clear() {
	if err := s.creds.Purge(); err != nil {
		slog.Warn("failed to purge credential on logout", "error", err.Error())
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.readyMu.Lock()
	s.ready = make(chan struct{})
	s.readyMu.Unlock()

	s.notify(Snapshot{Claim: nil})
}

// Current returns the claim, or nil when logged out.
func (s *Store) Current() *identity.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) HasRole(allowed []identity.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return false
	}
	return s.current.HasRole(allowed)
}

// Credential re-reads the persisted credential for outbound request signing.
func (s *Store) Credential() string {
	credential, err := s.creds.Load()
	if err != nil {
		slog.Warn("failed to load credential for request signing", "error", err.Error())
		return ""
	}
	return credential
}

// Ready is closed once a claim is present. It replaces the fixed-interval
// retry polling the UI used while waiting for identity after login.
func (s *Store) Ready() <-chan struct{} {
	s.readyMu.Lock()
	defer s.readyMu.Unlock()
	return s.ready
}

// AwaitIdentity blocks until identity is available or ctx expires. Callers
// bound ctx with the configured ready timeout; there is no open-ended retry.
func (s *Store) AwaitIdentity(ctx context.Context) (identity.Claim, error) {
	if claim := s.Current(); claim != nil {
		return *claim, nil
	}
	select {
	case <-s.Ready():
		if claim := s.Current(); claim != nil {
			return *claim, nil
		}
		return identity.Claim{}, errs.ErrNoSession
	case <-ctx.Done():
		return identity.Claim{}, errs.Mark(ctx.Err(), errs.ErrNoSession)
	}
}

// Subscribe returns a channel carrying session snapshots and a cancel func.
// Slow subscribers only ever see the latest state (last write wins).
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Store) set(claim *identity.Claim) {
	s.mu.Lock()
	s.current = claim
	s.mu.Unlock()

	s.readyMu.Lock()
	select {
	case <-s.ready:
	default:
		close(s.ready)
	}
	s.readyMu.Unlock()

	s.notify(Snapshot{Claim: claim})
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and replace it with the latest.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
