package core

import "time"

// Summary holds the totals for the current filter.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// MonthlyPoint is the income/expense pair for one calendar month.
// Month is the "YYYY-MM" grouping key.
type MonthlyPoint struct {
	Month   string
	Income  float64
	Expense float64
}

// Label renders the month key as a human-readable "Mon YYYY" label.
func (p MonthlyPoint) Label() string {
	t, err := time.Parse("2006-01", p.Month)
	if err != nil {
		return p.Month
	}
	return t.Format("Jan 2006")
}

// CategoryTotal is an expense total aggregated by category name.
type CategoryTotal struct {
	Category string
	Total    float64
}
