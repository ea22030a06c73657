package http

import (
	"log/slog"
	"net/http"
)

type pageData struct {
	AppName    string
	AppVersion string
	Page       string
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := pageData{
		AppName:    s.appName,
		AppVersion: s.appVersion,
		Page:       name,
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index.html")
}

func (s *Server) handleAddPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "add.html")
}

func (s *Server) handleCategoriesPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "categories.html")
}
