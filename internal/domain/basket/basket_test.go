//go:build unit

package basket_test

import (
	"testing"

	"eiffel-bike-client/internal/domain/basket"
	"eiffel-bike-client/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestBasketTotalEur(t *testing.T) {
	t.Run("empty basket totals zero", func(t *testing.T) {
		assert.Zero(t, basket.Basket{}.TotalEur())
	})

	t.Run("sums the price snapshots", func(t *testing.T) {
		b := builder.NewBasketBuilder().
			WithItem(1, 100).
			WithItem(2, 250.50).
			BuildDomain()
		assert.InDelta(t, 350.50, b.TotalEur(), 0.001)
	})

	t.Run("total follows the snapshot, not the live offer price", func(t *testing.T) {
		b := builder.NewBasketBuilder().WithItem(1, 100).BuildDomain()

		// The seller edits the offer to 999 after the add; only a server
		// refetch may change the snapshot.
		assert.InDelta(t, 100, b.TotalEur(), 0.001)
	})
}

func TestBasketContains(t *testing.T) {
	b := builder.NewBasketBuilder().WithItem(7, 100).BuildDomain()

	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(8))
	assert.Equal(t, 1, b.Size())
}

func TestPurchaseIsPending(t *testing.T) {
	assert.True(t, basket.Purchase{Status: basket.PurchaseStatusPending}.IsPending())
	assert.False(t, basket.Purchase{Status: basket.PurchaseStatusPaid}.IsPending())
}
