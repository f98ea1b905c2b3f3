package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/domain/recipes"
)

// PriceSource looks up the selling price of a dish.
type PriceSource interface {
	Price(ctx context.Context, dish string) (float64, bool, error)
}

// RecipeSource yields the recipe rows for a dish.
type RecipeSource interface {
	ListByDish(ctx context.Context, dish string) ([]recipes.Entry, error)
}

// Store persists a sale together with its inventory deductions as one
// atomic unit.
type Store interface {
	ApplySale(ctx context.Context, s Sale, deds []Deduction) error
}

// Processor turns an operator's "generate bill" action into inventory
// deductions plus an appended sale record.
type Processor struct {
	menu    PriceSource
	recipes RecipeSource
	store   Store
	loc     *time.Location
	now     func() time.Time
}

// NewProcessor takes the restaurant's timezone so sale dates line up
// with the expense and report dates written elsewhere.
func NewProcessor(menu PriceSource, recipes RecipeSource, store Store, loc *time.Location) *Processor {
	if loc == nil {
		loc = time.Local
	}
	return &Processor{menu: menu, recipes: recipes, store: store, loc: loc, now: time.Now}
}

// Sell deducts recipe amounts × qty from inventory and appends the sale
// for today. Deductions are unconditional: quantities may go negative,
// that is how availability wins over strict stock-keeping here. A dish
// missing from the menu fails with menu.ErrNotFound before anything is
// written.
func (p *Processor) Sell(ctx context.Context, dish string, qty int) (*Sale, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("sales: qty must be > 0, got %d", qty)
	}

	price, ok, err := p.menu.Price(ctx, dish)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, menu.ErrNotFound
	}

	entries, err := p.recipes.ListByDish(ctx, dish)
	if err != nil {
		return nil, err
	}
	deds := make([]Deduction, 0, len(entries))
	for _, e := range entries {
		deds = append(deds, Deduction{
			Ingredient: e.Ingredient,
			Amount:     e.Amount * float64(qty),
		})
	}

	s := Sale{
		Date:  p.now().In(p.loc).Format("2006-01-02"),
		Dish:  dish,
		Qty:   qty,
		Total: price * float64(qty),
	}
	if err := p.store.ApplySale(ctx, s, deds); err != nil {
		return nil, err
	}
	return &s, nil
}
