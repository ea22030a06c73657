package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Anand123098sitare/Fin--Track/internal/exchange"
)

// maxImportSize bounds the multipart upload held in memory.
const maxImportSize = 10 << 20 // 10MB

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	dr, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	transactions, err := s.store.ListTransactions(r.Context(), dr)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	filename := exchange.ExportFilename(dr, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := exchange.Export(w, transactions); err != nil {
		// Headers are already sent; log and bail.
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "CSV exported", "rows", len(transactions), "filename", filename)
}

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if err := exchange.ValidateFilename(header.Filename); err != nil {
		if errors.Is(err, exchange.ErrNotCSV) {
			writeError(w, http.StatusBadRequest, "File must be a CSV")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := exchange.Import(file)
	if err != nil {
		// File-level failure: nothing from this request is imported.
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Error processing file: %v", err))
		return
	}

	imported := 0
	for _, t := range result.Transactions {
		if _, err := s.store.CreateTransaction(r.Context(), t); err != nil {
			writeStoreError(r.Context(), w, err)
			return
		}
		imported++
	}

	slog.InfoContext(r.Context(), "CSV imported",
		"imported", imported,
		"skipped", result.Skipped,
		"filename", header.Filename)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  fmt.Sprintf("Imported %d transaction(s), skipped %d row(s)", imported, result.Skipped),
		"imported": imported,
		"skipped":  result.Skipped,
	})
}
