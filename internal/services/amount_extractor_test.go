package services

import (
	"testing"

	"smsledger/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestAmountExtractor(t *testing.T) {
	suite.Run(t, new(AmountExtractorSuite))
}

type AmountExtractorSuite struct {
	suite.Suite
	extractor *AmountExtractor
}

func (s *AmountExtractorSuite) SetupTest() {
	s.extractor = NewAmountExtractor()
}

func (s *AmountExtractorSuite) TestExtract_PatternFamilies() {
	testCases := []struct {
		body        string
		expected    string
		description string
	}{
		{"Rs. 1,499.00 debited from your account", "1499", "rupee with dot and commas"},
		{"Rs 250 spent at store", "250", "rupee without dot"},
		{"rs.99.50 charged", "99.5", "lowercase rupee marker"},
		{"₹250 paid via UPI", "250", "rupee symbol"},
		{"INR 830.75 debited", "830.75", "INR prefix"},
		{"Your card was charged $45.99 at AMAZON", "45.99", "dollar symbol"},
		{"USD 12 deducted", "12", "USD prefix"},
		{"Payment confirmation. Amount: 830.50", "830.5", "generic amount label"},
		{"amount 42", "42", "label without colon"},
		{"Rs 12,34,567 transferred", "1234567", "indian-style comma grouping"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			amount, ok := s.extractor.Extract(tc.body)
			s.True(ok)
			s.Equal(tc.expected, amount.String())
		})
	}
}

func (s *AmountExtractorSuite) TestExtract_RupeeWinsOverDollar() {
	// Both families match; the rupee family is declared first and wins.
	amount, ok := s.extractor.Extract("Converted $20.00 to Rs 1,660.00 at checkout")
	s.True(ok)
	s.Equal("1660", amount.String())
}

func (s *AmountExtractorSuite) TestExtract_NoMatch() {
	testCases := []struct {
		body        string
		description string
	}{
		{"Your OTP is 482913", "bare digits without a money marker"},
		{"Hello, are we still on for lunch?", "plain conversation"},
		{"", "empty body"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			_, ok := s.extractor.Extract(tc.body)
			s.False(ok)
		})
	}
}

func (s *AmountExtractorSuite) TestCurrency_Heuristic() {
	testCases := []struct {
		body        string
		expected    string
		description string
	}{
		{"Rs 250 spent", models.CurrencyINR, "rs marker"},
		{"₹99 paid", models.CurrencyINR, "rupee symbol"},
		{"INR 830 debited", models.CurrencyINR, "inr marker"},
		{"$45.99 charged", models.CurrencyUSD, "dollar symbol"},
		{"Amount: 830.50 deducted", models.CurrencyUSD, "no marker defaults to USD"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			s.Equal(tc.expected, s.extractor.Currency(tc.body))
		})
	}
}
