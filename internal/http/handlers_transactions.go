package http

import (
	"encoding/json"
	"net/http"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// parseTransactionBody validates the loosely-typed JSON payload at the
// boundary and returns a persistable transaction. Amount may arrive as a
// number or a numeric string. The category is not checked against the
// categories table; the reference is by name only.
func parseTransactionBody(r *http.Request) (core.Transaction, string) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return core.Transaction{}, "Invalid JSON body"
	}

	rawAmount, ok := body["amount"]
	if !ok {
		return core.Transaction{}, "Missing required field: amount"
	}
	amount, err := coerceAmount(rawAmount)
	if err != nil {
		return core.Transaction{}, "Amount must be a number"
	}

	category := stringField(body["category"])
	if category == "" {
		return core.Transaction{}, "Missing required field: category"
	}

	txType, err := core.ParseTransactionType(stringField(body["type"]))
	if err != nil {
		return core.Transaction{}, "Type must be 'income' or 'expense'"
	}

	date, err := core.ParseDate(stringField(body["date"]))
	if err != nil {
		return core.Transaction{}, "Date must be in YYYY-MM-DD format"
	}

	return core.Transaction{
		Amount:   amount,
		Category: category,
		Type:     txType,
		Date:     date,
		Notes:    stringField(body["notes"]),
	}, ""
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	t, errMsg := parseTransactionBody(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	if _, err := s.store.CreateTransaction(r.Context(), t); err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Transaction added successfully",
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	t, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	t, errMsg := parseTransactionBody(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	t.ID = id

	if err := s.store.UpdateTransaction(r.Context(), t); err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Transaction updated successfully",
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}
