package storage

import (
	"context"
	"fmt"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// Summary computes income/expense totals and the resulting balance for the
// given filter. An empty result set yields zeros.
func (s *Store) Summary(ctx context.Context, r core.DateRange) (core.Summary, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
	FROM transactions`
	var args []any
	if r.IsSet() {
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, r.Start, r.End)
	}

	var sum core.Summary
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum.TotalIncome, &sum.TotalExpense); err != nil {
		return core.Summary{}, fmt.Errorf("query summary: %w", err)
	}
	sum.Balance = sum.TotalIncome - sum.TotalExpense
	return sum, nil
}

// MonthlySeries groups the filtered transactions by calendar month and sums
// income and expense separately. Months are returned in chronological order;
// months without transactions are not zero-filled.
func (s *Store) MonthlySeries(ctx context.Context, r core.DateRange) ([]core.MonthlyPoint, error) {
	query := `SELECT
		strftime('%Y-%m', date) AS month,
		COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
	FROM transactions`
	var args []any
	if r.IsSet() {
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, r.Start, r.End)
	}
	query += ` GROUP BY month ORDER BY month ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query monthly series: %w", err)
	}
	defer rows.Close()

	points := []core.MonthlyPoint{}
	for rows.Next() {
		var p core.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Income, &p.Expense); err != nil {
			return nil, fmt.Errorf("scan monthly point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly series: %w", err)
	}

	return points, nil
}

// CategoryBreakdown sums expense amounts per category for the given filter.
// No ordering is guaranteed beyond what the grouping produces.
func (s *Store) CategoryBreakdown(ctx context.Context, r core.DateRange) ([]core.CategoryTotal, error) {
	query := `SELECT category, SUM(amount) FROM transactions WHERE type = 'expense'`
	var args []any
	if r.IsSet() {
		query += ` AND date BETWEEN ? AND ?`
		args = append(args, r.Start, r.End)
	}
	query += ` GROUP BY category`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query category breakdown: %w", err)
	}
	defer rows.Close()

	totals := []core.CategoryTotal{}
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category breakdown: %w", err)
	}

	return totals, nil
}
