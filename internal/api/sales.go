package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/infra/metrics"
	"github.com/Spok95/krevos/internal/invoice"
)

type sellRequest struct {
	Dish string `json:"dish"`
	Qty  int    `json:"qty"`
}

// sell generates a bill: ingredients are deducted, the sale is appended,
// and with ?format=xlsx the invoice workbook is streamed back instead of
// the JSON record.
func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s, err := h.processor.Sell(r.Context(), req.Dish, req.Qty)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			jsonError(w, http.StatusNotFound, fmt.Sprintf("dish %q is not on the menu", req.Dish))
			return
		}
		h.log.Error("sale failed", "dish", req.Dish, "qty", req.Qty, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not process sale")
		return
	}
	metrics.SalesRecorded.Inc()
	h.log.Info("sale completed", "dish", s.Dish, "qty", s.Qty, "total", s.Total)

	if r.URL.Query().Get("format") != "xlsx" {
		jsonResponse(w, http.StatusOK, s)
		return
	}

	issued := h.now().In(h.loc)
	data, err := invoice.Render(invoice.Bill{
		Title:     h.settings.RestaurantName,
		Dish:      s.Dish,
		Qty:       s.Qty,
		UnitPrice: s.Total / float64(s.Qty),
		Total:     s.Total,
		Packaging: h.settings.PackagingCost,
		IssuedAt:  issued,
	})
	if err != nil {
		// The sale is already committed; the operator can re-request the
		// document without selling again.
		h.log.Error("invoice render failed", "dish", s.Dish, "err", err)
		jsonError(w, http.StatusInternalServerError, "sale recorded, invoice rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.Filename(issued)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
