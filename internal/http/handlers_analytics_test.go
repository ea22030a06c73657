package http

import (
	"math"
	"net/http"
	"testing"
)

type summaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

type monthlyResponse struct {
	Labels   []string  `json:"labels"`
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
}

type categoryResponse struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

func seedAnalytics(t *testing.T, srv *Server) {
	t.Helper()
	rows := []map[string]any{
		{"amount": 1000, "category": "Salary", "type": "income", "date": "2024-01-05"},
		{"amount": 500, "category": "Freelance", "type": "income", "date": "2024-03-10"},
		{"amount": 150.50, "category": "Groceries", "type": "expense", "date": "2024-01-12"},
		{"amount": 50.00, "category": "Food & Dining", "type": "expense", "date": "2024-03-15"},
	}
	for _, row := range rows {
		createTransaction(t, srv, row)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummaryEmpty(t *testing.T) {
	srv := newTestServer(t)

	var sum summaryResponse
	rr := doRequest(t, srv, http.MethodGet, "/api/summary", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	decodeBody(t, rr, &sum)
	if sum.TotalIncome != 0 || sum.TotalExpense != 0 || sum.Balance != 0 {
		t.Fatalf("empty summary not zero: %+v", sum)
	}
}

func TestSummaryBalanceInvariant(t *testing.T) {
	srv := newTestServer(t)
	seedAnalytics(t, srv)

	for _, query := range []string{"", "?start_date=2024-01-01&end_date=2024-01-31", "?start_date=2025-01-01&end_date=2025-12-31"} {
		var sum summaryResponse
		rr := doRequest(t, srv, http.MethodGet, "/api/summary"+query, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("summary%s status=%d", query, rr.Code)
		}
		decodeBody(t, rr, &sum)
		if !almostEqual(sum.Balance, sum.TotalIncome-sum.TotalExpense) {
			t.Errorf("balance invariant broken for %q: %+v", query, sum)
		}
	}
}

func TestMonthlyDataMatchesSummary(t *testing.T) {
	srv := newTestServer(t)
	seedAnalytics(t, srv)

	var monthly monthlyResponse
	rr := doRequest(t, srv, http.MethodGet, "/api/monthly-data", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("monthly-data status=%d", rr.Code)
	}
	decodeBody(t, rr, &monthly)

	// only months with transactions appear, sorted ascending with labels
	if len(monthly.Labels) != 2 {
		t.Fatalf("expected 2 months, got %v", monthly.Labels)
	}
	if monthly.Labels[0] != "Jan 2024" || monthly.Labels[1] != "Mar 2024" {
		t.Fatalf("unexpected labels: %v", monthly.Labels)
	}

	var sum summaryResponse
	rr = doRequest(t, srv, http.MethodGet, "/api/summary", nil)
	decodeBody(t, rr, &sum)

	var income, expense float64
	for i := range monthly.Labels {
		income += monthly.Income[i]
		expense += monthly.Expenses[i]
	}
	if !almostEqual(income, sum.TotalIncome) || !almostEqual(expense, sum.TotalExpense) {
		t.Errorf("monthly totals (%v, %v) do not match summary %+v", income, expense, sum)
	}
}

func TestCategoryDataMatchesSummary(t *testing.T) {
	srv := newTestServer(t)
	seedAnalytics(t, srv)

	var breakdown categoryResponse
	rr := doRequest(t, srv, http.MethodGet, "/api/category-data", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("category-data status=%d", rr.Code)
	}
	decodeBody(t, rr, &breakdown)

	byLabel := map[string]float64{}
	var total float64
	for i, label := range breakdown.Labels {
		byLabel[label] = breakdown.Data[i]
		total += breakdown.Data[i]
	}

	// only expenses appear
	if _, ok := byLabel["Salary"]; ok {
		t.Error("income category leaked into breakdown")
	}
	if !almostEqual(byLabel["Food & Dining"], 50.00) {
		t.Errorf("Food & Dining total = %v, want 50", byLabel["Food & Dining"])
	}

	var sum summaryResponse
	rr = doRequest(t, srv, http.MethodGet, "/api/summary", nil)
	decodeBody(t, rr, &sum)
	if !almostEqual(total, sum.TotalExpense) {
		t.Errorf("breakdown total %v does not match summary expense %v", total, sum.TotalExpense)
	}
}
