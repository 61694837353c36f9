package services

import (
	"strings"
	"testing"
	"time"

	"smsledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestFormatter(t *testing.T) {
	suite.Run(t, new(FormatterSuite))
}

type FormatterSuite struct {
	suite.Suite
}

func (s *FormatterSuite) TestPreviewBody() {
	s.Run("short body passes through", func() {
		s.Equal("Rs 350 spent at SWIGGY", previewBody("Rs 350 spent at SWIGGY"))
	})

	s.Run("newlines flatten to spaces", func() {
		s.Equal("line one line two", previewBody("line one\nline two"))
	})

	s.Run("long body is truncated with ellipsis", func() {
		long := strings.Repeat("x", previewMaxLen+20)
		preview := previewBody(long)
		s.Len(preview, previewMaxLen+3)
		s.True(strings.HasSuffix(preview, "..."))
	})
}

func (s *FormatterSuite) TestFormatAmount() {
	s.Equal("$45.99", formatAmount(decimal.NewFromFloat(45.99), models.CurrencyUSD))
	s.Equal("Rs.350.00", formatAmount(decimal.NewFromInt(350), models.CurrencyINR))
}

func (s *FormatterSuite) TestTransactionRow() {
	at := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	t := models.Transaction{
		Amount:        decimal.NewFromFloat(45.99),
		Currency:      models.CurrencyUSD,
		Merchant:      "AMAZON",
		Category:      models.CategoryShopping,
		Date:          at.UnixMilli(),
		SourceMessage: "Your card was charged at AMAZON for $45.99",
	}

	row := transactionRow(t)
	s.Contains(row, "$45.99")
	s.Contains(row, "AMAZON")
	s.Contains(row, "[SHOPPING]")
	s.Contains(row, "15 Mar 2025")
}

func (s *FormatterSuite) TestTransactionRow_UnknownMerchant() {
	t := models.Transaction{
		Amount:   decimal.NewFromInt(10),
		Currency: models.CurrencyUSD,
		Category: models.CategoryOther,
		Date:     time.Now().UnixMilli(),
	}
	s.Contains(transactionRow(t), "(unknown)")
}

func (s *FormatterSuite) TestSumAmounts() {
	txns := []models.Transaction{
		{Amount: decimal.NewFromFloat(10.50)},
		{Amount: decimal.NewFromFloat(4.50)},
	}
	s.Equal("15", sumAmounts(txns).String())
	s.Equal("0", sumAmounts(nil).String())
}

func (s *FormatterSuite) TestTruncatedPercent() {
	s.Equal(int64(66), truncatedPercent(decimal.NewFromInt(2), decimal.NewFromInt(3)))
	s.Equal(int64(33), truncatedPercent(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	s.Equal(int64(100), truncatedPercent(decimal.NewFromInt(3), decimal.NewFromInt(3)))
	s.Equal(int64(0), truncatedPercent(decimal.NewFromInt(1), decimal.Zero))
}
