package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Spok95/krevos/internal/domain/costing"
	"github.com/Spok95/krevos/internal/domain/expenses"
	"github.com/Spok95/krevos/internal/domain/inventory"
	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/domain/recipes"
	"github.com/Spok95/krevos/internal/domain/reports"
	"github.com/Spok95/krevos/internal/domain/sales"
)

type InventoryStore interface {
	AddStock(ctx context.Context, name string, qty float64, unit string, cost float64, date string) (*inventory.Item, error)
	Get(ctx context.Context, name string) (*inventory.Item, error)
	List(ctx context.Context) ([]inventory.Item, error)
	Delete(ctx context.Context, name string) error
}

type MenuStore interface {
	Save(ctx context.Context, dish string, price float64) (*menu.Item, error)
	List(ctx context.Context) ([]menu.Item, error)
	Delete(ctx context.Context, dish string) error
}

type RecipeStore interface {
	Add(ctx context.Context, dish, ingredient string, amount float64, unit string) (*recipes.Entry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]recipes.Entry, error)
	ListByDish(ctx context.Context, dish string) ([]recipes.Entry, error)
}

type SaleProcessor interface {
	Sell(ctx context.Context, dish string, qty int) (*sales.Sale, error)
}

type CostAnalyzer interface {
	Analyze(ctx context.Context) ([]costing.DishAnalysis, error)
}

type ExpenseStore interface {
	Add(ctx context.Context, e expenses.Expense) error
	ApplyFixedDaily(ctx context.Context, date string, costs []expenses.FixedCost) (int, error)
}

type ReportSource interface {
	Daily(ctx context.Context, date string) (*reports.Daily, error)
	Monthly(ctx context.Context, yearMonth string) (*reports.Monthly, error)
}

// Settings are the billing knobs the handlers need from config.
type Settings struct {
	AdminSecret    string
	RestaurantName string
	PackagingCost  float64
	StaffFood      float64
	ManagerSalary  float64
}

// Handler exposes every operator action as a JSON route. It is the
// boundary the external UI talks to; all business rules live below it.
type Handler struct {
	inventory InventoryStore
	menu      MenuStore
	recipes   RecipeStore
	processor SaleProcessor
	costing   CostAnalyzer
	expenses  ExpenseStore
	reports   ReportSource

	settings Settings
	loc      *time.Location
	log      *slog.Logger
	now      func() time.Time
}

type Deps struct {
	Inventory InventoryStore
	Menu      MenuStore
	Recipes   RecipeStore
	Processor SaleProcessor
	Costing   CostAnalyzer
	Expenses  ExpenseStore
	Reports   ReportSource
}

func New(d Deps, settings Settings, loc *time.Location, log *slog.Logger) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		inventory: d.Inventory,
		menu:      d.Menu,
		recipes:   d.Recipes,
		processor: d.Processor,
		costing:   d.Costing,
		expenses:  d.Expenses,
		reports:   d.Reports,
		settings:  settings,
		loc:       loc,
		log:       log,
		now:       time.Now,
	}
}

// Routes returns the /api mux. Destructive menu and inventory actions
// sit behind the admin gate.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/inventory", h.addStock)
	mux.HandleFunc("GET /api/inventory", h.listInventory)
	mux.HandleFunc("GET /api/inventory/{item}", h.getInventory)
	mux.HandleFunc("DELETE /api/inventory/{item}", h.admin(h.deleteInventory))

	mux.HandleFunc("GET /api/menu", h.listMenu)
	mux.HandleFunc("POST /api/menu", h.admin(h.saveMenu))
	mux.HandleFunc("DELETE /api/menu/{dish}", h.admin(h.deleteMenu))
	mux.HandleFunc("GET /api/menu/analysis", h.menuAnalysis)

	mux.HandleFunc("POST /api/recipes", h.addRecipe)
	mux.HandleFunc("GET /api/recipes", h.listRecipes)
	mux.HandleFunc("DELETE /api/recipes/{id}", h.deleteRecipe)

	mux.HandleFunc("POST /api/sales", h.sell)

	mux.HandleFunc("POST /api/expenses", h.addExpense)
	mux.HandleFunc("POST /api/expenses/fixed", h.applyFixedCosts)

	mux.HandleFunc("GET /api/reports/daily", h.dailyReport)
	mux.HandleFunc("GET /api/reports/monthly", h.monthlyReport)

	return mux
}

// admin guards an endpoint with the shared static secret. A single
// secret, no sessions, no identities: deliberately the same gate the
// back office always had.
func (h *Handler) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Secret") != h.settings.AdminSecret {
			jsonError(w, http.StatusUnauthorized, "admin access required")
			return
		}
		next(w, r)
	}
}

func (h *Handler) today() string {
	return h.now().In(h.loc).Format("2006-01-02")
}

func (h *Handler) thisMonth() string {
	return h.now().In(h.loc).Format("2006-01")
}
