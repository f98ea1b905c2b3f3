package recipes

import "github.com/Spok95/krevos/internal/domain/units"

// Entry links one ingredient to a dish. Amount is always in the base
// unit (gm/ml/pieces); conversion happens on insert. ID is the handle
// used for deletion.
//
// The same ingredient may appear in several rows for one dish; costing
// sums them, so the aggregate stays correct.
type Entry struct {
	ID         int64
	Dish       string
	Ingredient string
	Amount     float64
	Unit       units.Base
}
