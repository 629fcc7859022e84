//go:build unit

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFxClient(t *testing.T, handler http.Handler) *FxClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFxClient(config.FXConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
}

func TestFxClientLatestRates(t *testing.T) {
	t.Parallel()

	t.Run("fetches the EUR-based table", func(t *testing.T) {
		client := newTestFxClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest/EUR", r.URL.Path)
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{"USD":1.08,"GBP":0.85}}`))
		}))

		rates, err := client.LatestRates(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, 1.08, rates["USD"], 0.001)
		assert.InDelta(t, 0.85, rates["GBP"], 0.001)
	})

	t.Run("a provider failure is a network error", func(t *testing.T) {
		client := newTestFxClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := client.LatestRates(context.Background())
		assert.ErrorIs(t, err, errs.ErrNetwork)
	})

	t.Run("a body without rates is rejected", func(t *testing.T) {
		client := newTestFxClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"base":"EUR"}`))
		}))

		_, err := client.LatestRates(context.Background())
		assert.ErrorIs(t, err, errs.ErrNetwork)
	})
}
