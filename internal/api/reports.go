package api

import (
	"fmt"
	"net/http"

	"github.com/Spok95/krevos/internal/domain/reports"
)

func (h *Handler) dailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.today()
	}

	d, err := h.reports.Daily(r.Context(), date)
	if err != nil {
		h.log.Error("daily report failed", "date", date, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not build daily report")
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		data, err := reports.DailyWorkbook(d)
		if err != nil {
			h.log.Error("daily workbook failed", "date", date, "err", err)
			jsonError(w, http.StatusInternalServerError, "could not render report")
			return
		}
		writeWorkbook(w, fmt.Sprintf("daily_%s.xlsx", date), data)
		return
	}
	jsonResponse(w, http.StatusOK, d)
}

func (h *Handler) monthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = h.thisMonth()
	}

	m, err := h.reports.Monthly(r.Context(), month)
	if err != nil {
		h.log.Error("monthly report failed", "month", month, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not build monthly report")
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		data, err := reports.MonthlyWorkbook(m)
		if err != nil {
			h.log.Error("monthly workbook failed", "month", month, "err", err)
			jsonError(w, http.StatusInternalServerError, "could not render report")
			return
		}
		writeWorkbook(w, fmt.Sprintf("monthly_%s.xlsx", month), data)
		return
	}
	jsonResponse(w, http.StatusOK, m)
}

func writeWorkbook(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
