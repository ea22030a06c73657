package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// CreateTransaction persists a new transaction and returns its id.
func (s *Store) CreateTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (amount, category, type, date, notes) VALUES (?, ?, ?, ?, ?)`,
		t.Amount, t.Category, string(t.Type), t.Date, t.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"type", t.Type,
		"category", t.Category,
		"amount", t.Amount,
		"date", t.Date)

	return id, nil
}

// ListTransactions returns transactions ordered by date descending, optionally
// restricted to an inclusive date range.
func (s *Store) ListTransactions(ctx context.Context, r core.DateRange) ([]core.Transaction, error) {
	query := `SELECT id, amount, category, type, date, COALESCE(notes, ''), created_at FROM transactions`
	var args []any
	if r.IsSet() {
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, r.Start, r.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []core.Transaction{}
	for rows.Next() {
		var t core.Transaction
		var created sql.NullTime
		if err := rows.Scan(&t.ID, &t.Amount, &t.Category, &t.Type, &t.Date, &t.Notes, &created); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.CreatedAt = created.Time
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction returns the transaction with the given id, or
// core.ErrNotFound when it does not exist.
func (s *Store) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	var t core.Transaction
	var created sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT id, amount, category, type, date, COALESCE(notes, ''), created_at FROM transactions WHERE id = ?`, id).
		Scan(&t.ID, &t.Amount, &t.Category, &t.Type, &t.Date, &t.Notes, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	t.CreatedAt = created.Time
	return t, nil
}

// UpdateTransaction replaces all mutable fields of the transaction with the
// given id. Returns core.ErrNotFound when no row was affected.
func (s *Store) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET amount = ?, category = ?, type = ?, date = ?, notes = ? WHERE id = ?`,
		t.Amount, t.Category, string(t.Type), t.Date, t.Notes, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction updated", "id", t.ID)
	return nil
}

// DeleteTransaction removes the transaction with the given id. Returns
// core.ErrNotFound when no row was affected.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}
