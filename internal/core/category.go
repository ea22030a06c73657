package core

import (
	"fmt"
	"strings"
	"time"
)

// Category is a named classification tag for transactions, either seeded at
// startup or user-created (custom). Names are unique across both types.
type Category struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	IsCustom  bool            `json:"is_custom"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate checks the fields required to persist a category.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategory
	}
	if !c.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

// CategoryInUseError reports a delete attempt on a category still referenced
// by transactions. The count is part of the client-facing message.
type CategoryInUseError struct {
	Name  string
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is in use by %d transaction(s)", e.Name, e.Count)
}
