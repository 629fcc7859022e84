//go:build unit

package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/pkg/errs"
	"eiffel-bike-client/internal/session"
	"eiffel-bike-client/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreEstablish(t *testing.T) {
	t.Run("returns the decoded claim synchronously", func(t *testing.T) {
		creds := session.NewMemoryCredentialStore()
		store := session.NewStore(creds)

		b := builder.NewClaimBuilder().WithRole(identity.RoleEiffelBikeCorp)
		claim, err := store.Establish(b.BuildCredential(t))
		require.NoError(t, err)

		assert.Equal(t, b.ID, claim.ID())
		assert.Equal(t, identity.RoleEiffelBikeCorp, claim.Role())

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, b.ID, current.ID())
	})

	t.Run("persists the credential for restarts", func(t *testing.T) {
		creds := session.NewMemoryCredentialStore()
		store := session.NewStore(creds)

		credential := builder.NewClaimBuilder().BuildCredential(t)
		_, err := store.Establish(credential)
		require.NoError(t, err)

		stored, err := creds.Load()
		require.NoError(t, err)
		assert.Equal(t, credential, stored)
	})

	t.Run("a failed persist still establishes the session", func(t *testing.T) {
		creds := session.NewMemoryCredentialStore()
		creds.FailSaves(errors.New("disk full"))
		store := session.NewStore(creds)

		claim, err := store.Establish(builder.NewClaimBuilder().BuildCredential(t))
		require.NoError(t, err)
		require.NotNil(t, store.Current())
		assert.Equal(t, claim.ID(), store.Current().ID())
	})

	t.Run("rejects a credential that does not decode", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())

		_, err := store.Establish("not-a-token")
		require.Error(t, err)
		assert.Nil(t, store.Current())
	})
}

func TestStoreInitialize(t *testing.T) {
	t.Run("restores identity from a persisted credential", func(t *testing.T) {
		creds := session.NewMemoryCredentialStore()
		b := builder.NewClaimBuilder()
		require.NoError(t, creds.Save(b.BuildCredential(t)))

		store := session.NewStore(creds)
		require.NoError(t, store.Initialize())

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, b.ID, current.ID())
	})

	t.Run("a corrupt credential fails closed and purges", func(t *testing.T) {
		creds := session.NewMemoryCredentialStore()
		require.NoError(t, creds.Save("corrupt"))

		store := session.NewStore(creds)
		require.NoError(t, store.Initialize())

		assert.Nil(t, store.Current())
		stored, err := creds.Load()
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("no persisted credential means logged out", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		require.NoError(t, store.Initialize())
		assert.Nil(t, store.Current())
	})
}

func TestStoreClear(t *testing.T) {
	creds := session.NewMemoryCredentialStore()
	store := session.NewStore(creds)
	_, err := store.Establish(builder.NewClaimBuilder().BuildCredential(t))
	require.NoError(t, err)

	store.Clear()

	assert.Nil(t, store.Current())
	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestStoreAwaitIdentity(t *testing.T) {
	t.Run("returns immediately when identity is present", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		b := builder.NewClaimBuilder()
		_, err := store.Establish(b.BuildCredential(t))
		require.NoError(t, err)

		claim, err := store.AwaitIdentity(context.Background())
		require.NoError(t, err)
		assert.Equal(t, b.ID, claim.ID())
	})

	t.Run("unblocks when identity arrives later", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		b := builder.NewClaimBuilder()
		credential := b.BuildCredential(t)

		go func() {
			time.Sleep(10 * time.Millisecond)
			_, _ = store.Establish(credential)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		claim, err := store.AwaitIdentity(ctx)
		require.NoError(t, err)
		assert.Equal(t, b.ID, claim.ID())
	})

	t.Run("gives up when the wait budget expires", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := store.AwaitIdentity(ctx)
		assert.ErrorIs(t, err, errs.ErrNoSession)
	})

	t.Run("waits again after logout", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		_, err := store.Establish(builder.NewClaimBuilder().BuildCredential(t))
		require.NoError(t, err)
		store.Clear()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = store.AwaitIdentity(ctx)
		assert.ErrorIs(t, err, errs.ErrNoSession)
	})
}

func TestStoreSubscribe(t *testing.T) {
	t.Run("subscribers see session changes", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		ch, cancel := store.Subscribe()
		defer cancel()

		b := builder.NewClaimBuilder()
		_, err := store.Establish(b.BuildCredential(t))
		require.NoError(t, err)

		select {
		case snap := <-ch:
			require.NotNil(t, snap.Claim)
			assert.Equal(t, b.ID, snap.Claim.ID())
		case <-time.After(time.Second):
			t.Fatal("no snapshot delivered")
		}
	})

	t.Run("a slow subscriber only sees the latest state", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		ch, cancel := store.Subscribe()
		defer cancel()

		_, err := store.Establish(builder.NewClaimBuilder().BuildCredential(t))
		require.NoError(t, err)
		store.Clear()

		select {
		case snap := <-ch:
			assert.Nil(t, snap.Claim, "stale snapshot should have been replaced")
		case <-time.After(time.Second):
			t.Fatal("no snapshot delivered")
		}
	})

	t.Run("cancel stops delivery", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryCredentialStore())
		ch, cancel := store.Subscribe()
		cancel()

		_, ok := <-ch
		assert.False(t, ok, "channel should be closed after cancel")
	})
}
