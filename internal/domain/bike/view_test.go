//go:build unit

package bike_test

import (
	"testing"

	"eiffel-bike-client/internal/domain/bike"
	"eiffel-bike-client/internal/domain/rental"
	"eiffel-bike-client/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViews(t *testing.T) {
	viewer := uuid.New()
	other := uuid.New()

	t.Run("flags a bike actively rented by the viewer", func(t *testing.T) {
		b := builder.NewBikeBuilder().WithID(1).WithStatus(bike.StatusRented).BuildDomain()
		r := builder.NewRentalBuilder().WithBikeID(1).WithCustomerID(viewer).WithStatus(rental.StatusActive).BuildDomain()

		views := bike.BuildViews([]bike.Bike{b}, []rental.Rental{r}, viewer)
		require.Len(t, views, 1)
		assert.True(t, views[0].IsRentedByMe)
		assert.False(t, views[0].IsReservedForMe)
	})

	t.Run("flags a bike reserved for the viewer and carries the rental id", func(t *testing.T) {
		b := builder.NewBikeBuilder().WithID(2).BuildDomain()
		r := builder.NewRentalBuilder().WithBikeID(2).WithCustomerID(viewer).WithStatus(rental.StatusReserved).BuildDomain()
		r.ID = 555

		views := bike.BuildViews([]bike.Bike{b}, []rental.Rental{r}, viewer)
		require.Len(t, views, 1)
		assert.True(t, views[0].IsReservedForMe)
		assert.Equal(t, int64(555), views[0].ReservedRentalID)
		assert.False(t, views[0].IsRentedByMe)
	})

	t.Run("another customer's rentals never set viewer flags", func(t *testing.T) {
		b := builder.NewBikeBuilder().WithID(3).WithStatus(bike.StatusRented).BuildDomain()
		r := builder.NewRentalBuilder().WithBikeID(3).WithCustomerID(other).WithStatus(rental.StatusActive).BuildDomain()

		views := bike.BuildViews([]bike.Bike{b}, []rental.Rental{r}, viewer)
		require.Len(t, views, 1)
		assert.False(t, views[0].IsRentedByMe)
		assert.False(t, views[0].IsReservedForMe)
		assert.Zero(t, views[0].ReservedRentalID)
	})

	t.Run("returned rentals leave no flags behind", func(t *testing.T) {
		b := builder.NewBikeBuilder().WithID(4).BuildDomain()
		r := builder.NewRentalBuilder().WithBikeID(4).WithCustomerID(viewer).WithStatus(rental.StatusReturned).BuildDomain()

		views := bike.BuildViews([]bike.Bike{b}, []rental.Rental{r}, viewer)
		require.Len(t, views, 1)
		assert.False(t, views[0].IsRentedByMe)
		assert.False(t, views[0].IsReservedForMe)
	})

	t.Run("recomputing from the same inputs is deterministic", func(t *testing.T) {
		bikes := []bike.Bike{
			builder.NewBikeBuilder().WithID(1).BuildDomain(),
			builder.NewBikeBuilder().WithID(2).WithStatus(bike.StatusRented).BuildDomain(),
		}
		rentals := []rental.Rental{
			builder.NewRentalBuilder().WithBikeID(2).WithCustomerID(viewer).WithStatus(rental.StatusActive).BuildDomain(),
		}

		first := bike.BuildViews(bikes, rentals, viewer)
		second := bike.BuildViews(bikes, rentals, viewer)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("views differ between recomputes (-first +second):\n%s", diff)
		}
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		bikes := []bike.Bike{
			builder.NewBikeBuilder().WithID(9).BuildDomain(),
			builder.NewBikeBuilder().WithID(3).BuildDomain(),
			builder.NewBikeBuilder().WithID(7).BuildDomain(),
		}
		views := bike.BuildViews(bikes, nil, viewer)
		require.Len(t, views, 3)
		assert.Equal(t, int64(9), views[0].ID)
		assert.Equal(t, int64(3), views[1].ID)
		assert.Equal(t, int64(7), views[2].ID)
	})
}
