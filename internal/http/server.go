package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
	appweb "github.com/Anand123098sitare/Fin--Track/web"
)

// Store is the persistence surface the HTTP layer depends on. *storage.Store
// implements it.
type Store interface {
	Ping(ctx context.Context) error

	CreateTransaction(ctx context.Context, t core.Transaction) (int64, error)
	ListTransactions(ctx context.Context, r core.DateRange) ([]core.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	UpdateTransaction(ctx context.Context, t core.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	ListCategories(ctx context.Context, typeFilter core.TransactionType) ([]core.Category, error)
	CreateCategory(ctx context.Context, c core.Category) (int64, error)
	DeleteCategory(ctx context.Context, id int64) error

	Summary(ctx context.Context, r core.DateRange) (core.Summary, error)
	MonthlySeries(ctx context.Context, r core.DateRange) ([]core.MonthlyPoint, error)
	CategoryBreakdown(ctx context.Context, r core.DateRange) ([]core.CategoryTotal, error)
}

type Server struct {
	http.Server
	store        Store
	templates    *template.Template
	rateLimiter  *rateLimiter
	appName      string
	appVersion   string
	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, store Store, appName, appVersion string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:       store,
		rateLimiter: newRateLimiter(),
		appName:     appName,
		appVersion:  appVersion,
	}
	s.Server.Handler = s.withMiddleware(mux)

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	// Pages
	mux.HandleFunc("GET /{$}", s.handleDashboardPage)
	mux.HandleFunc("GET /add", s.handleAddPage)
	mux.HandleFunc("GET /categories", s.handleCategoriesPage)

	// Operational
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	// Transactions
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", s.handleGetTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	// Aggregation
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/monthly-data", s.handleMonthlyData)
	mux.HandleFunc("GET /api/category-data", s.handleCategoryData)

	// Categories
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	// CSV exchange
	mux.HandleFunc("GET /api/export/csv", s.handleExportCSV)
	mux.HandleFunc("POST /api/import/csv", s.handleImportCSV)

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("database unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
