package inventory

import "errors"

// ErrZeroQuantity is returned when a restock would leave the item with
// zero quantity, which makes cost_per_unit undefined.
var ErrZeroQuantity = errors.New("inventory: quantity must not be zero")

// Item is one ingredient's ledger row. Quantity and costs are kept in the
// unit the item was first stocked in; recipes convert on their side.
type Item struct {
	Name        string
	Quantity    float64
	Unit        string
	TotalCost   float64
	CostPerUnit float64
}

// Restock folds a purchase into the item and recomputes the
// weighted-average cost per unit (total_cost / quantity).
//
// Consumption only ever reduces Quantity, never TotalCost, so the average
// drifts upward as stock is used without a restock. That is the agreed
// approximation, not something to correct here.
func (it *Item) Restock(qty, cost float64) error {
	newQty := it.Quantity + qty
	if newQty == 0 {
		return ErrZeroQuantity
	}
	it.Quantity = newQty
	it.TotalCost += cost
	it.CostPerUnit = it.TotalCost / it.Quantity
	return nil
}
