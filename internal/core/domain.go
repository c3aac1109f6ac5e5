package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Credit TxType = "credit"
	Debit  TxType = "debit"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

type (
	// TxType is the polarity of a transaction: money in or money out.
	TxType string

	// Date is a calendar day. The time-of-day part is always midnight UTC.
	Date struct {
		time.Time
	}

	// Transaction is a single dated money movement. The store owns the
	// collection; analytics and export receive read-only snapshots.
	Transaction struct {
		ID          string    `json:"id"`
		Date        Date      `json:"date"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		Type        TxType    `json:"type"`
		Timestamp   time.Time `json:"timestamp"`
	}

	// TransactionInput carries the client-supplied fields for create and
	// update operations. Pointer fields distinguish absent from zero.
	TransactionInput struct {
		Date        string   `json:"date"`
		Description string   `json:"description"`
		Amount      *float64 `json:"amount"`
		Category    string   `json:"category"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
)

// ValidationError reports the first violated input rule and the field it
// concerns. It maps to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown transaction id. It maps to HTTP 404.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.ID)
}

// StorageError wraps a persistence failure. Save failures map to HTTP 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (t TxType) Valid() bool {
	return t == Credit || t == Debit
}

func (t TxType) String() string { return string(t) }

// Label returns the display form used by the export formatters.
func (t TxType) Label() string {
	if t == Credit {
		return "Credit"
	}
	return "Debit"
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a wire-format date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON writes the date in wire format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a wire-format date string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// ValidateInput checks a candidate record against the rules for the given
// type. Checks run in fixed order and the first violation wins: missing
// field, amount sign, category membership, date format.
func ValidateInput(in TransactionInput, txType TxType) error {
	if !txType.Valid() {
		return &ValidationError{Field: "type", Message: "must be credit or debit"}
	}
	if strings.TrimSpace(in.Date) == "" {
		return &ValidationError{Field: "date", Message: "is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if in.Amount == nil {
		return &ValidationError{Field: "amount", Message: "is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	if *in.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be a positive number"}
	}
	if len(in.Description) > 200 {
		return &ValidationError{Field: "description", Message: "too long (max 200 characters)"}
	}
	if !CategoryValid(txType, in.Category) {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a %s category", in.Category, txType)}
	}
	if _, err := ParseDate(in.Date); err != nil {
		return &ValidationError{Field: "date", Message: "must be formatted " + DateLayout}
	}
	return nil
}
