package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

var (
	ErrNegativeAmount  = errors.New("transaction amount must not be negative")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// Transaction is a spending event mined from a single message body. It is
// assembled once and never mutated; the engine recomputes the full list from
// the message snapshot instead of persisting it.
type Transaction struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Merchant      string          `json:"merchant,omitempty"` // empty when no merchant was found
	Category      string          `json:"category"`
	Date          int64           `json:"date"` // epoch milliseconds, copied from the source message
	SourceMessage string          `json:"source_message"`
}

// Time converts the epoch-millisecond timestamp to a time.Time.
func (t *Transaction) Time() time.Time {
	return time.UnixMilli(t.Date)
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !IsValidCurrency(t.Currency) {
		return ErrInvalidCurrency
	}
	if t.Category != "" && !IsValidCategory(t.Category) {
		return errors.New("unknown category: " + t.Category)
	}
	return nil
}

// IsValidCurrency checks if the currency code is one the extractor can emit
func IsValidCurrency(currency string) bool {
	switch currency {
	case CurrencyUSD, CurrencyINR:
		return true
	default:
		return false
	}
}

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(currency string) string {
	if currency == CurrencyINR {
		return "Rs."
	}
	return "$"
}
