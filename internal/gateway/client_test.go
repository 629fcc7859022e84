//go:build unit

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/internal/pkg/config"
	"eiffel-bike-client/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCredential string

func (c staticCredential) Credential() string { return string(c) }

func newTestClient(t *testing.T, handler http.Handler, credential string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := config.BackendConfig{BaseURL: server.URL, Timeout: 2 * time.Second}
	return NewClient(cfg, staticCredential(credential))
}

func TestClientAttachesBearerCredential(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[]`))
	}), "signed-token")

	_, err := client.AllBikes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer signed-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClientOmitsAuthorizationWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}), "")

	_, err := client.AllBikes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns the token and the raw snapshot", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "test@example.com", body["email"])

			_, _ = w.Write([]byte(`{"token":"signed","name":"Test Customer","email":"test@example.com"}`))
		}), "")

		creds, err := identity.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)

		credential, raw, err := client.Login(context.Background(), creds)
		require.NoError(t, err)
		assert.Equal(t, "signed", credential)
		assert.Contains(t, string(raw), "Test Customer")
	})

	t.Run("falls back to the accessToken field", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"accessToken":"alt-signed"}`))
		}), "")

		creds, err := identity.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)

		credential, _, err := client.Login(context.Background(), creds)
		require.NoError(t, err)
		assert.Equal(t, "alt-signed", credential)
	})

	t.Run("maps a 401 to invalid credentials", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"bad password"}`))
		}), "")

		creds, err := identity.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)

		_, _, err = client.Login(context.Background(), creds)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("a token-less success body fails authentication", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name":"Test Customer"}`))
		}), "")

		creds, err := identity.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)

		_, _, err = client.Login(context.Background(), creds)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	})
}

func TestClientErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "401 is an authentication failure", status: http.StatusUnauthorized, want: errs.ErrAuthenticationFailed},
		{name: "403 is an authentication failure", status: http.StatusForbidden, want: errs.ErrAuthenticationFailed},
		{name: "404 is not found", status: http.StatusNotFound, want: errs.ErrNotFound},
		{name: "400 is a validation error", status: http.StatusBadRequest, want: errs.ErrValidation},
		{name: "422 is a validation error", status: http.StatusUnprocessableEntity, want: errs.ErrValidation},
		{name: "500 is a network error", status: http.StatusInternalServerError, want: errs.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"backend says no"}`))
			}), "")

			_, err := client.AllBikes(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "backend says no", "the backend detail must survive the mapping")
		})
	}
}

func TestClientUnreachableBackend(t *testing.T) {
	t.Parallel()

	cfg := config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}
	client := NewClient(cfg, staticCredential(""))

	_, err := client.AllBikes(context.Background())
	assert.ErrorIs(t, err, errs.ErrNetwork)
}

func TestClientAllBikes(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bikes/all", r.URL.Path)
		payload := `[{"id":1,"description":"City bike","type":"CITY","status":"AVAILABLE",` +
			`"offeredBy":{"id":"` + ownerID.String() + `","role":"EIFFEL_BIKE_CORP"},"rentalDailyRateEur":12.5}]`
		_, _ = w.Write([]byte(payload))
	}), "tok")

	bikes, err := client.AllBikes(context.Background())
	require.NoError(t, err)
	require.Len(t, bikes, 1)
	assert.Equal(t, int64(1), bikes[0].ID)
	assert.Equal(t, bike.TypeCity, bikes[0].Type)
	assert.Equal(t, bike.StatusAvailable, bikes[0].Status)
	assert.Equal(t, ownerID, bikes[0].OfferedBy.ID)
	assert.Equal(t, identity.RoleEiffelBikeCorp, bikes[0].OfferedBy.Role)
	assert.InDelta(t, 12.5, bikes[0].DailyRateEur, 0.001)
}

func TestClientCreateRental(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()

	t.Run("a granted rental carries its id", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rentals", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, customerID.String(), body["customerId"])
			assert.InDelta(t, 3, body["days"], 0.001)

			_, _ = w.Write([]byte(`{"result":"RENTED","rentalId":55}`))
		}), "tok")

		outcome, err := client.CreateRental(context.Background(), 1, customerID, 3)
		require.NoError(t, err)
		assert.True(t, outcome.Rented())
		assert.Equal(t, int64(55), outcome.RentalID)
	})

	t.Run("a waitlisted outcome has no rental id", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"result":"WAITLISTED","waitingListEntryId":9,"message":"position 2"}`))
		}), "tok")

		outcome, err := client.CreateRental(context.Background(), 1, customerID, 3)
		require.NoError(t, err)
		assert.True(t, outcome.Waitlisted())
		assert.Zero(t, outcome.RentalID)
		assert.Equal(t, int64(9), outcome.WaitlistEntryID)
		assert.Equal(t, "position 2", outcome.Message)
	})
}

func TestClientFetchBasket(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/basket", r.URL.Path)
		payload := `{"items":[{"id":1,"saleOffer":{"id":10,"bikeId":4,"description":"Road bike","askingPriceEur":300},` +
			`"unitPriceEurSnapshot":250}]}`
		_, _ = w.Write([]byte(payload))
	}), "tok")

	b, err := client.FetchBasket(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())
	assert.Equal(t, int64(10), b.Items[0].SaleOfferID)
	assert.InDelta(t, 250.0, b.Items[0].UnitPriceEurSnapshot,
		0.001, "the snapshot price wins over the live asking price")
}

func TestClientReturnBike(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rentals/42/return", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GOOD", body["condition"])
		assert.Equal(t, "all fine", body["comment"])

		w.WriteHeader(http.StatusNoContent)
	}), "tok")

	err := client.ReturnBike(context.Background(), 42, customerID, rental.ConditionGood, "all fine")
	require.NoError(t, err)
}

func TestClientNonUUIDCustomerIDIsZeroed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"bikeId":2,"customerId":"legacy-007","status":"ACTIVE","startAt":"2025-06-01T09:00:00Z"}]`))
	}), "tok")

	rentals, err := client.Rentals(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, uuid.Nil, rentals[0].CustomerID)
}
