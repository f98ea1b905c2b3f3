package api

import (
	"encoding/json"
	"net/http"
)

type saveMenuRequest struct {
	Dish  string  `json:"dish"`
	Price float64 `json:"price"`
}

// saveMenu creates the dish or updates its price.
func (h *Handler) saveMenu(w http.ResponseWriter, r *http.Request) {
	var req saveMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Dish == "" {
		jsonError(w, http.StatusBadRequest, "dish is required")
		return
	}

	it, err := h.menu.Save(r.Context(), req.Dish, req.Price)
	if err != nil {
		h.log.Error("save menu failed", "dish", req.Dish, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not save menu item")
		return
	}
	jsonResponse(w, http.StatusOK, it)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		h.log.Error("list menu failed", "err", err)
		jsonError(w, http.StatusInternalServerError, "could not load menu")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	dish := r.PathValue("dish")
	if err := h.menu.Delete(r.Context(), dish); err != nil {
		h.log.Error("delete menu failed", "dish", dish, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not delete dish")
		return
	}
	jsonResponse(w, http.StatusOK, nil)
}

// menuAnalysis is the cost breakdown for every dish on the menu.
func (h *Handler) menuAnalysis(w http.ResponseWriter, r *http.Request) {
	out, err := h.costing.Analyze(r.Context())
	if err != nil {
		h.log.Error("menu analysis failed", "err", err)
		jsonError(w, http.StatusInternalServerError, "could not run cost analysis")
		return
	}
	jsonResponse(w, http.StatusOK, out)
}
