package services

import (
	"fmt"
	"strings"

	"smsledger/internal/models"

	"github.com/shopspring/decimal"
)

const (
	previewMaxLen       = 88
	transactionRowLimit = 10
	topMerchantLimit    = 8
	otpRowLimit         = 10
	searchRowLimit      = 12
)

const dateLayout = "02 Jan 2006"

// previewBody truncates a raw message body for row rendering. Newlines are
// flattened so every row stays on one line.
func previewBody(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	if len(flat) <= previewMaxLen {
		return flat
	}
	return flat[:previewMaxLen] + "..."
}

// formatAmount renders an amount with its currency symbol and two decimals.
func formatAmount(amount decimal.Decimal, currency string) string {
	return models.CurrencySymbol(currency) + amount.StringFixed(2)
}

// transactionRow renders one list line: amount, date, merchant, category and
// a bounded body preview.
func transactionRow(t models.Transaction) string {
	merchant := t.Merchant
	if merchant == "" {
		merchant = "(unknown)"
	}
	return fmt.Sprintf("- %s on %s at %s [%s] | %s",
		formatAmount(t.Amount, t.Currency),
		t.Time().Format(dateLayout),
		merchant,
		t.Category,
		previewBody(t.SourceMessage),
	)
}

// sumAmounts totals a transaction list. Currencies are not converted; the
// engine reports plain figures and leaves conversion out of scope.
func sumAmounts(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}

// truncatedPercent returns amount/total as an integer percentage, truncated
// rather than rounded.
func truncatedPercent(amount, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return amount.Mul(decimal.NewFromInt(100)).Div(total).IntPart()
}
