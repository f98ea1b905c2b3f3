package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Spok95/krevos/internal/domain/costing"
	"github.com/Spok95/krevos/internal/domain/expenses"
	"github.com/Spok95/krevos/internal/domain/inventory"
	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/domain/recipes"
	"github.com/Spok95/krevos/internal/domain/reports"
	"github.com/Spok95/krevos/internal/domain/sales"
)

const testSecret = "87654321"

type stubInventory struct {
	items  map[string]*inventory.Item
	bazars []string // dates Bazar expenses were written for
}

func (s *stubInventory) AddStock(_ context.Context, name string, qty float64, unit string, cost float64, date string) (*inventory.Item, error) {
	it, ok := s.items[name]
	if !ok {
		it = &inventory.Item{Name: name, Unit: unit}
		s.items[name] = it
	}
	if err := it.Restock(qty, cost); err != nil {
		return nil, err
	}
	s.bazars = append(s.bazars, date)
	return it, nil
}

func (s *stubInventory) Get(_ context.Context, name string) (*inventory.Item, error) {
	return s.items[name], nil
}

func (s *stubInventory) List(context.Context) ([]inventory.Item, error) {
	var out []inventory.Item
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out, nil
}

func (s *stubInventory) Delete(_ context.Context, name string) error {
	delete(s.items, name)
	return nil
}

type stubMenu map[string]float64

func (s stubMenu) Save(_ context.Context, dish string, price float64) (*menu.Item, error) {
	s[dish] = price
	return &menu.Item{Dish: dish, Price: price}, nil
}

func (s stubMenu) List(context.Context) ([]menu.Item, error) {
	var out []menu.Item
	for d, p := range s {
		out = append(out, menu.Item{Dish: d, Price: p})
	}
	return out, nil
}

func (s stubMenu) Delete(_ context.Context, dish string) error {
	delete(s, dish)
	return nil
}

type stubRecipes struct{ entries []recipes.Entry }

func (s *stubRecipes) Add(_ context.Context, dish, ingredient string, amount float64, unit string) (*recipes.Entry, error) {
	e := recipes.Entry{ID: int64(len(s.entries) + 1), Dish: dish, Ingredient: ingredient, Amount: amount}
	s.entries = append(s.entries, e)
	return &e, nil
}

func (s *stubRecipes) Delete(_ context.Context, id int64) error {
	out := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.entries = out
	return nil
}

func (s *stubRecipes) List(context.Context) ([]recipes.Entry, error) { return s.entries, nil }

func (s *stubRecipes) ListByDish(_ context.Context, dish string) ([]recipes.Entry, error) {
	var out []recipes.Entry
	for _, e := range s.entries {
		if e.Dish == dish {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubProcessor struct{ prices map[string]float64 }

func (s *stubProcessor) Sell(_ context.Context, dish string, qty int) (*sales.Sale, error) {
	p, ok := s.prices[dish]
	if !ok {
		return nil, menu.ErrNotFound
	}
	return &sales.Sale{Date: "2025-09-01", Dish: dish, Qty: qty, Total: p * float64(qty)}, nil
}

type stubCosting struct{}

func (stubCosting) Analyze(context.Context) ([]costing.DishAnalysis, error) { return nil, nil }

type stubExpenses struct {
	rows  []expenses.Expense
	fixed map[string]bool // date+category pairs already applied
}

func (s *stubExpenses) Add(_ context.Context, e expenses.Expense) error {
	s.rows = append(s.rows, e)
	return nil
}

func (s *stubExpenses) ApplyFixedDaily(_ context.Context, date string, costs []expenses.FixedCost) (int, error) {
	inserted := 0
	for _, fc := range costs {
		key := date + "/" + fc.Category
		if s.fixed[key] {
			continue
		}
		s.fixed[key] = true
		s.rows = append(s.rows, expenses.Expense{Date: date, Category: fc.Category, Amount: fc.Amount, Note: "Daily fixed"})
		inserted++
	}
	return inserted, nil
}

type stubReports struct{}

func (stubReports) Daily(_ context.Context, date string) (*reports.Daily, error) {
	return &reports.Daily{Date: date}, nil
}

func (stubReports) Monthly(_ context.Context, ym string) (*reports.Monthly, error) {
	return &reports.Monthly{Month: ym}, nil
}

func newTestHandler() (*Handler, *stubExpenses, *stubInventory) {
	exp := &stubExpenses{fixed: map[string]bool{}}
	inv := &stubInventory{items: map[string]*inventory.Item{}}
	h := New(Deps{
		Inventory: inv,
		Menu:      stubMenu{},
		Recipes:   &stubRecipes{},
		Processor: &stubProcessor{prices: map[string]float64{"Burger": 150}},
		Costing:   stubCosting{},
		Expenses:  exp,
		Reports:   stubReports{},
	}, Settings{
		AdminSecret:   testSecret,
		PackagingCost: 10,
		StaffFood:     100,
		ManagerSalary: 450,
	}, time.UTC, slog.New(slog.DiscardHandler))
	h.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	return h, exp, inv
}

func do(h *Handler, method, target string, body any, secret string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if secret != "" {
		req.Header.Set("X-Admin-Secret", secret)
	}
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestAdminGate(t *testing.T) {
	h, _, _ := newTestHandler()
	body := map[string]any{"dish": "Burger", "price": 150}

	if rec := do(h, http.MethodPost, "/api/menu", body, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no secret: status = %d, want 401", rec.Code)
	}
	if rec := do(h, http.MethodPost, "/api/menu", body, "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", rec.Code)
	}
	if rec := do(h, http.MethodPost, "/api/menu", body, testSecret); rec.Code != http.StatusOK {
		t.Errorf("right secret: status = %d, want 200", rec.Code)
	}
}

func TestSellUnknownDishIs404(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := do(h, http.MethodPost, "/api/sales", map[string]any{"dish": "Ghost", "qty": 1}, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSellReturnsSale(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := do(h, http.MethodPost, "/api/sales", map[string]any{"dish": "Burger", "qty": 2}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var s sales.Sale
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Total != 300 {
		t.Errorf("total = %v, want 300", s.Total)
	}
}

func TestSellInvoiceDownload(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := do(h, http.MethodPost, "/api/sales?format=xlsx", map[string]any{"dish": "Burger", "qty": 1}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition")
	}
}

func TestAddStockZeroQuantity(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := do(h, http.MethodPost, "/api/inventory", map[string]any{"item": "Oil", "qty": 0, "unit": "kg", "cost": 400}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAddStockRecordsPurchaseDate(t *testing.T) {
	h, _, inv := newTestHandler()
	rec := do(h, http.MethodPost, "/api/inventory", map[string]any{"item": "Oil", "qty": 2, "unit": "kg", "cost": 400}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(inv.bazars) != 1 || inv.bazars[0] != "2025-09-01" {
		t.Errorf("bazar expense dates = %v", inv.bazars)
	}
	var it inventory.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &it); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if it.CostPerUnit != 200 {
		t.Errorf("cost per unit = %v, want 200", it.CostPerUnit)
	}
}

func TestGetInventoryItem(t *testing.T) {
	h, _, inv := newTestHandler()
	inv.items["Oil"] = &inventory.Item{Name: "Oil", Quantity: 2, Unit: "kg", TotalCost: 400, CostPerUnit: 200}

	rec := do(h, http.MethodGet, "/api/inventory/Oil", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var it inventory.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &it); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if it.Name != "Oil" || it.CostPerUnit != 200 {
		t.Errorf("item = %+v", it)
	}

	if rec := do(h, http.MethodGet, "/api/inventory/Ghost", nil, ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown item: status = %d, want 404", rec.Code)
	}
}

// Ad-hoc expenses only accept the expense manager's fixed categories;
// Bazar and the fixed daily costs are written by their own flows.
func TestAddExpenseValidatesCategory(t *testing.T) {
	h, exp, _ := newTestHandler()

	rec := do(h, http.MethodPost, "/api/expenses", map[string]any{"category": "Rent", "amount": 5000}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Rent: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(exp.rows) != 1 || exp.rows[0].Category != expenses.CategoryRent {
		t.Errorf("rows = %+v", exp.rows)
	}

	for _, bad := range []string{"", "Snacks", expenses.CategoryStaffFood, expenses.CategoryBazar} {
		rec := do(h, http.MethodPost, "/api/expenses", map[string]any{"category": bad, "amount": 10}, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("category %q: status = %d, want 400", bad, rec.Code)
		}
	}
	if len(exp.rows) != 1 {
		t.Errorf("rejected categories were recorded: %+v", exp.rows)
	}
}

// Applying fixed costs twice inserts each category at most once.
func TestApplyFixedCostsIdempotent(t *testing.T) {
	h, exp, _ := newTestHandler()
	body := map[string]any{"staff_food": true, "manager_salary": true}

	rec := do(h, http.MethodPost, "/api/expenses/fixed", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var first map[string]int
	_ = json.Unmarshal(rec.Body.Bytes(), &first)
	if first["inserted"] != 2 {
		t.Errorf("first apply inserted = %d, want 2", first["inserted"])
	}

	rec = do(h, http.MethodPost, "/api/expenses/fixed", body, "")
	var second map[string]int
	_ = json.Unmarshal(rec.Body.Bytes(), &second)
	if second["inserted"] != 0 {
		t.Errorf("second apply inserted = %d, want 0", second["inserted"])
	}
	if len(exp.rows) != 2 {
		t.Errorf("expense rows = %d, want 2", len(exp.rows))
	}
}

func TestDeleteInventoryRequiresAdmin(t *testing.T) {
	h, _, inv := newTestHandler()
	inv.items["Oil"] = &inventory.Item{Name: "Oil"}

	if rec := do(h, http.MethodDelete, "/api/inventory/Oil", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if rec := do(h, http.MethodDelete, "/api/inventory/Oil", nil, testSecret); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if _, ok := inv.items["Oil"]; ok {
		t.Error("item not deleted")
	}
}
