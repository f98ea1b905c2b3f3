package menu

import "errors"

// ErrNotFound signals a dish that is not on the menu. Sale processing
// must surface this instead of pricing the dish at zero.
var ErrNotFound = errors.New("menu: dish not found")

type Item struct {
	Dish  string
	Price float64
}
