package services

import (
	"regexp"
	"strings"

	"smsledger/internal/models"

	"github.com/shopspring/decimal"
)

// amountPatterns are tried in declaration order and the first family that
// matches wins, so a body carrying both a rupee and a dollar figure reports
// the rupee value. Digit groups may use comma thousands separators.
var amountPatterns = []*regexp.Regexp{
	// Rupee-style prefix: "Rs. 1,499.00", "₹250", "INR 99"
	regexp.MustCompile(`(?i)(?:rs\.?|₹|inr)\s*:?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	// Dollar-style prefix: "$45.99", "USD 12"
	regexp.MustCompile(`(?i)(?:usd|\$)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	// Generic label: "Amount: 830.50"
	regexp.MustCompile(`(?i)amount\s*:?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
}

var rupeeMarkerRe = regexp.MustCompile(`(?i)₹|rs|inr`)

// AmountExtractor pulls the first money figure out of a message body.
type AmountExtractor struct{}

// NewAmountExtractor creates a new AmountExtractor
func NewAmountExtractor() *AmountExtractor {
	return &AmountExtractor{}
}

// Extract returns the first amount matched by the ordered pattern families,
// or ok=false when no pattern matches or the match does not parse as a
// non-negative decimal.
func (e *AmountExtractor) Extract(body string) (decimal.Decimal, bool) {
	for _, re := range amountPatterns {
		match := re.FindStringSubmatch(body)
		if match == nil {
			continue
		}

		raw := strings.ReplaceAll(match[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			return decimal.Decimal{}, false
		}
		return amount, true
	}

	return decimal.Decimal{}, false
}

// Currency infers the transaction currency from the whole body, independently
// of which amount pattern matched. Any rupee marker anywhere wins; everything
// else defaults to USD. This is a deliberately blunt heuristic, not locale
// detection.
func (e *AmountExtractor) Currency(body string) string {
	if rupeeMarkerRe.MatchString(body) {
		return models.CurrencyINR
	}
	return models.CurrencyUSD
}
