package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

// ListCategories returns all categories ordered by name, optionally filtered
// by type. An empty filter returns both types.
func (s *Store) ListCategories(ctx context.Context, typeFilter core.TransactionType) ([]core.Category, error) {
	query := `SELECT id, name, type, is_custom, created_at FROM categories`
	var args []any
	if typeFilter != "" {
		query += ` WHERE type = ?`
		args = append(args, string(typeFilter))
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []core.Category{}
	for rows.Next() {
		var c core.Category
		var created sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.IsCustom, &created); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.CreatedAt = created.Time
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a custom category. Returns core.ErrDuplicateName when
// a category with the same name already exists, regardless of type.
func (s *Store) CreateCategory(ctx context.Context, c core.Category) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, type, is_custom) VALUES (?, ?, 1)`,
		c.Name, string(c.Type))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, core.ErrDuplicateName
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", id, "name", c.Name, "type", c.Type)
	return id, nil
}

// DeleteCategory removes a custom category by id. It fails with
// core.ErrNotFound when the id is absent, core.ErrCategoryNotCustom for
// seeded categories, and *core.CategoryInUseError when any transaction still
// references the category by name.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	var name string
	var isCustom bool
	err := s.db.QueryRowContext(ctx,
		`SELECT name, is_custom FROM categories WHERE id = ?`, id).Scan(&name, &isCustom)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if !isCustom {
		return core.ErrCategoryNotCustom
	}

	// Referential check is by name equality; there is no foreign key.
	count, err := s.CountTransactionsByCategory(ctx, name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &core.CategoryInUseError{Name: name, Count: count}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	slog.InfoContext(ctx, "Category deleted", "id", id, "name", name)
	return nil
}

// CountTransactionsByCategory reports how many transactions reference the
// given category name.
func (s *Store) CountTransactionsByCategory(ctx context.Context, name string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category = ?`, name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by category: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
