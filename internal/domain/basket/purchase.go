package basket

import "time"

type PurchaseStatus string

const (
	PurchaseStatusPending PurchaseStatus = "PENDING"
	PurchaseStatusPaid    PurchaseStatus = "PAID"
)

// Purchase is a checked-out, not-yet-paid aggregation of basket items.
// Checkout and payment are deliberately two steps: a failed payment leaves
// the purchase outstanding instead of silently dropping the order.
type Purchase struct {
	ID           int64
	Status       PurchaseStatus
	TotalEur     float64
	CheckedOutAt time.Time
}

func (p Purchase) IsPending() bool {
	return p.Status == PurchaseStatusPending
}
