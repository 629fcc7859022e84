package basket

// Item is one sale offer held in the basket. The unit price is snapshotted
// server-side at add time and must not change if the offer is edited later.
type Item struct {
	ID                   int64
	SaleOfferID          int64
	BikeID               int64
	Description          string
	UnitPriceEurSnapshot float64
}

// Basket is the customer's pending set of sale-offer purchases prior to
// checkout. The server owns it; the client always replaces the whole item
// list from a server response, never appends locally.
type Basket struct {
	Items []Item
}

// TotalEur is a pure fold over current items in the authoritative currency.
// Display-currency conversion is a presentation step and is never stored.
func (b Basket) TotalEur() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.UnitPriceEurSnapshot
	}
	return total
}

func (b Basket) Contains(saleOfferID int64) bool {
	for _, item := range b.Items {
		if item.SaleOfferID == saleOfferID {
			return true
		}
	}
	return false
}

func (b Basket) Size() int {
	return len(b.Items)
}
