package http

import (
	"net/http"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	dr, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	summary, err := s.store.Summary(r.Context(), dr)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleMonthlyData(w http.ResponseWriter, r *http.Request) {
	dr, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	points, err := s.store.MonthlySeries(r.Context(), dr)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	// Parallel arrays, one entry per month present in the filtered set.
	labels := make([]string, len(points))
	income := make([]float64, len(points))
	expenses := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label()
		income[i] = p.Income
		expenses[i] = p.Expense
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"labels":   labels,
		"income":   income,
		"expenses": expenses,
	})
}

func (s *Server) handleCategoryData(w http.ResponseWriter, r *http.Request) {
	dr, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	totals, err := s.store.CategoryBreakdown(r.Context(), dr)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	labels := make([]string, len(totals))
	data := make([]float64, len(totals))
	for i, ct := range totals {
		labels[i] = ct.Category
		data[i] = ct.Total
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"labels": labels,
		"data":   data,
	})
}
