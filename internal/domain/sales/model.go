package sales

// Sale is one generated bill. Total is price × qty; the packaging
// surcharge is a costing-side figure and is never folded in here.
type Sale struct {
	Date  string  `json:"date"`
	Dish  string  `json:"dish"`
	Qty   int     `json:"qty"`
	Total float64 `json:"total"`
}

// Deduction is the inventory movement a sale causes for one recipe row,
// already multiplied by the sold quantity. Amount is in the recipe's
// base unit; the store converts it into the item's stored unit when
// subtracting.
type Deduction struct {
	Ingredient string
	Amount     float64
}
