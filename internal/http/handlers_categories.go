package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	var typeFilter core.TransactionType
	if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
		parsed, err := core.ParseTransactionType(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Type must be 'income' or 'expense'")
			return
		}
		typeFilter = parsed
	}

	categories, err := s.store.ListCategories(r.Context(), typeFilter)
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}
	txType, err := core.ParseTransactionType(body.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Type must be 'income' or 'expense'")
		return
	}

	id, err := s.store.CreateCategory(r.Context(), core.Category{Name: name, Type: txType})
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Category added successfully",
		"id":      id,
	})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}

	if err := s.store.DeleteCategory(r.Context(), id); err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Category deleted successfully",
	})
}
