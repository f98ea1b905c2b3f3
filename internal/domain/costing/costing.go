package costing

import (
	"context"
	"math"

	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/domain/recipes"
)

// RecipeSource yields the recipe rows for a dish.
type RecipeSource interface {
	ListByDish(ctx context.Context, dish string) ([]recipes.Entry, error)
}

// StockSource yields the weighted-average cost per base unit of an
// ingredient; ok=false when the ingredient was never stocked.
type StockSource interface {
	CostPerUnit(ctx context.Context, name string) (float64, bool, error)
}

// MenuSource lists the menu for whole-menu analysis.
type MenuSource interface {
	List(ctx context.Context) ([]menu.Item, error)
}

// LineItem is one ingredient's contribution to a dish's making cost.
type LineItem struct {
	Ingredient string  `json:"ingredient"`
	Amount     float64 `json:"amount"`
	Cost       float64 `json:"cost"`
}

// DishAnalysis is the per-dish row of the menu cost analysis view.
type DishAnalysis struct {
	Dish       string     `json:"dish"`
	MakingCost float64    `json:"making_cost"`
	Price      float64    `json:"price"`
	Profit     float64    `json:"profit"`
	Lines      []LineItem `json:"lines"`
}

// Engine recomputes dish costs from scratch on every call; inventory
// costs move between calls, so there is nothing worth caching.
type Engine struct {
	recipes   RecipeSource
	stock     StockSource
	menu      MenuSource
	packaging float64
}

func New(recipes RecipeSource, stock StockSource, menu MenuSource, packaging float64) *Engine {
	return &Engine{recipes: recipes, stock: stock, menu: menu, packaging: packaging}
}

// DishCost sums cost_per_unit × amount over the dish's recipe and adds
// the packaging surcharge. Ingredients with no inventory record are left
// out entirely: no line item, no contribution. An empty recipe therefore
// costs exactly the packaging surcharge.
func (e *Engine) DishCost(ctx context.Context, dish string) (float64, []LineItem, error) {
	entries, err := e.recipes.ListByDish(ctx, dish)
	if err != nil {
		return 0, nil, err
	}

	var total float64
	var lines []LineItem
	for _, entry := range entries {
		cpu, ok, err := e.stock.CostPerUnit(ctx, entry.Ingredient)
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			continue
		}
		cost := cpu * entry.Amount
		total += cost
		lines = append(lines, LineItem{
			Ingredient: entry.Ingredient,
			Amount:     entry.Amount,
			Cost:       round2(cost),
		})
	}

	return total + e.packaging, lines, nil
}

// Analyze runs DishCost for every dish on the menu and pairs the making
// cost with the selling price.
func (e *Engine) Analyze(ctx context.Context) ([]DishAnalysis, error) {
	items, err := e.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []DishAnalysis
	for _, it := range items {
		cost, lines, err := e.DishCost(ctx, it.Dish)
		if err != nil {
			return nil, err
		}
		out = append(out, DishAnalysis{
			Dish:       it.Dish,
			MakingCost: round2(cost),
			Price:      it.Price,
			Profit:     round2(it.Price - cost),
			Lines:      lines,
		})
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
