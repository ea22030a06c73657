package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// Transaction is one recorded money movement. Category references a
	// Category by name only; there is no relational integrity between the
	// two tables.
	Transaction struct {
		ID        int64           `json:"id"`
		Amount    float64         `json:"amount"`
		Category  string          `json:"category"`
		Type      TransactionType `json:"type"`
		Date      string          `json:"date"`
		Notes     string          `json:"notes"`
		CreatedAt time.Time       `json:"created_at"`
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrEmptyCategory     = errors.New("empty category")
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("category already exists")
	ErrCategoryNotCustom = errors.New("category is not custom")
)

// ParseTransactionType normalizes and validates a type string.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrInvalidType
	}
}

// IsValid reports whether the type is one of the two allowed values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// ParseAmount converts a decimal string to a float64 amount.
// Negative and zero amounts are accepted; there is no range check.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseDate validates a calendar date in YYYY-MM-DD form and returns it
// normalized.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// Validate checks the fields required to persist a transaction.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// DateRange is an optional inclusive [Start, End] filter over transaction
// dates. The zero value means no filtering; the filter only takes effect when
// both bounds are present.
type DateRange struct {
	Start string
	End   string
}

// IsSet reports whether both bounds are present.
func (r DateRange) IsSet() bool {
	return r.Start != "" && r.End != ""
}

// Validate checks that any present bound parses as a calendar date.
func (r DateRange) Validate() error {
	if r.Start != "" {
		if _, err := time.Parse(DateLayout, r.Start); err != nil {
			return ErrInvalidDate
		}
	}
	if r.End != "" {
		if _, err := time.Parse(DateLayout, r.End); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}
