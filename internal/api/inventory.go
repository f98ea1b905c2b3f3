package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Spok95/krevos/internal/domain/inventory"
	"github.com/Spok95/krevos/internal/infra/metrics"
)

type addStockRequest struct {
	Item string  `json:"item"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
	Cost float64 `json:"cost"`
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Item == "" {
		jsonError(w, http.StatusBadRequest, "item is required")
		return
	}

	it, err := h.inventory.AddStock(r.Context(), req.Item, req.Qty, req.Unit, req.Cost, h.today())
	if err != nil {
		if errors.Is(err, inventory.ErrZeroQuantity) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("add stock failed", "item", req.Item, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not add stock")
		return
	}

	metrics.StockArrivals.Inc()
	jsonResponse(w, http.StatusOK, it)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	item := r.PathValue("item")
	it, err := h.inventory.Get(r.Context(), item)
	if err != nil {
		h.log.Error("get inventory failed", "item", item, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not load item")
		return
	}
	if it == nil {
		jsonError(w, http.StatusNotFound, fmt.Sprintf("item %q was never stocked", item))
		return
	}
	jsonResponse(w, http.StatusOK, it)
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.List(r.Context())
	if err != nil {
		h.log.Error("list inventory failed", "err", err)
		jsonError(w, http.StatusInternalServerError, "could not load inventory")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	item := r.PathValue("item")
	if err := h.inventory.Delete(r.Context(), item); err != nil {
		h.log.Error("delete inventory failed", "item", item, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not delete item")
		return
	}
	jsonResponse(w, http.StatusOK, nil)
}
