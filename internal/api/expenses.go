package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Spok95/krevos/internal/domain/expenses"
	"github.com/Spok95/krevos/internal/infra/metrics"
)

type addExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !expenses.IsAdHocCategory(req.Category) {
		jsonError(w, http.StatusBadRequest,
			fmt.Sprintf("category %q is not one of %v", req.Category, expenses.AdHocCategories))
		return
	}

	e := expenses.Expense{
		Date:     h.today(),
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if err := h.expenses.Add(r.Context(), e); err != nil {
		h.log.Error("add expense failed", "category", req.Category, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not add expense")
		return
	}
	metrics.ExpensesRecorded.Inc()
	jsonResponse(w, http.StatusOK, e)
}

type fixedCostsRequest struct {
	StaffFood     bool `json:"staff_food"`
	ManagerSalary bool `json:"manager_salary"`
}

// applyFixedCosts inserts today's fixed daily costs; calling it again on
// the same day changes nothing.
func (h *Handler) applyFixedCosts(w http.ResponseWriter, r *http.Request) {
	var req fixedCostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	costs := expenses.FixedDaily(req.StaffFood, req.ManagerSalary,
		h.settings.StaffFood, h.settings.ManagerSalary)

	inserted, err := h.expenses.ApplyFixedDaily(r.Context(), h.today(), costs)
	if err != nil {
		h.log.Error("apply fixed costs failed", "err", err)
		jsonError(w, http.StatusInternalServerError, "could not apply fixed costs")
		return
	}
	for i := 0; i < inserted; i++ {
		metrics.ExpensesRecorded.Inc()
	}
	jsonResponse(w, http.StatusOK, map[string]int{"inserted": inserted})
}
