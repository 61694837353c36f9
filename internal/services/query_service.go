package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"smsledger/internal/models"

	"github.com/shopspring/decimal"
)

// handlerID tags a query route with the handler the interpreter runs. Routes
// are data, not closures, so each handler is testable on its own.
type handlerID int

const (
	handlerMerchantSpend handlerID = iota
	handlerMerchantList
	handlerTopMerchants
	handlerCategoryBreakdown
	handlerAggregateSpend
	handlerOTPList
	handlerTextSearch
)

// queryRoute is one (pattern, handler) pair. The route list is ordered and
// the first matching pattern wins; later routes are never evaluated.
type queryRoute struct {
	name    string
	pattern *regexp.Regexp
	handler handlerID
}

// QueryResult is the dispatcher's answer: the route that served it (or
// "help" when nothing matched) plus the rendered text.
type QueryResult struct {
	Handler string
	Answer  string
}

// QueryService answers free-text questions over one Analysis.
type QueryService struct {
	routes  []queryRoute
	now     func() time.Time
	logger  *AnalysisLogger
	metrics MetricsRecorderInterface
}

// NewQueryService creates a new QueryService. The clock is injectable for
// window tests; nil means time.Now.
func NewQueryService(logger *AnalysisLogger, metrics MetricsRecorderInterface, now func() time.Time) QueryServiceInterface {
	if logger == nil {
		logger = NewAnalysisLogger(nil)
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if now == nil {
		now = time.Now
	}
	return &QueryService{
		routes:  defaultQueryRoutes(),
		now:     now,
		logger:  logger,
		metrics: metrics,
	}
}

// defaultQueryRoutes declares the dispatch table. Order is part of the
// contract: merchant-scoped routes sit above the aggregate ones they would
// otherwise shadow.
func defaultQueryRoutes() []queryRoute {
	return []queryRoute{
		{
			name:    "merchant_spend",
			pattern: regexp.MustCompile(`(?:how much|total|spen[dt]).* (?:at|on|with) ([a-z0-9][a-z0-9 .&'-]*?)(?: today| this week| this month)?\??$`),
			handler: handlerMerchantSpend,
		},
		{
			name:    "merchant_transactions",
			pattern: regexp.MustCompile(`(?:transactions|purchases|payments|orders) (?:at|on|from|with) ([a-z0-9][a-z0-9 .&'-]*?)\??$`),
			handler: handlerMerchantList,
		},
		{
			name:    "top_merchants",
			pattern: regexp.MustCompile(`top (?:\d+ )?(?:merchants|stores|shops|vendors)|where (?:do|did) i spend (?:the )?most`),
			handler: handlerTopMerchants,
		},
		{
			name:    "category_breakdown",
			pattern: regexp.MustCompile(`categor(?:y|ies)|breakdown|split by`),
			handler: handlerCategoryBreakdown,
		},
		{
			name:    "aggregate_spend",
			pattern: regexp.MustCompile(`how much|spen[dt]|total`),
			handler: handlerAggregateSpend,
		},
		{
			name:    "otp_list",
			pattern: regexp.MustCompile(`\botps?\b|one[ -]?time password|verification codes?`),
			handler: handlerOTPList,
		},
		{
			name:    "text_search",
			pattern: regexp.MustCompile(`(?:search|find|show|lookup) (?:messages? )?(?:about |containing |for )?(.+)`),
			handler: handlerTextSearch,
		},
	}
}

// Answer lowercases and trims the query, walks the route table in order and
// interprets the first match. No route matching yields static help text,
// never an error.
func (s *QueryService) Answer(ctx context.Context, rawQuery string, analysis *Analysis) QueryResult {
	query := strings.TrimSpace(strings.ToLower(rawQuery))
	started := time.Now()

	for _, route := range s.routes {
		match := route.pattern.FindStringSubmatch(query)
		if match == nil {
			continue
		}

		answer := s.resolve(route.handler, query, match, analysis)
		s.logger.LogQueryDispatched(ctx, route.name, time.Since(started).Milliseconds())
		s.metrics.IncrementCounter("query.dispatched", map[string]string{"handler": route.name})
		return QueryResult{Handler: route.name, Answer: answer}
	}

	s.logger.LogQueryUnmatched(ctx)
	s.metrics.IncrementCounter("query.dispatched", map[string]string{"handler": "help"})
	return QueryResult{Handler: "help", Answer: helpText()}
}

// resolve is the route interpreter: one tagged-union dispatch instead of
// closures capturing ambient state.
func (s *QueryService) resolve(id handlerID, query string, match []string, analysis *Analysis) string {
	switch id {
	case handlerMerchantSpend:
		return s.merchantSpend(query, capturedTerm(match), analysis.Transactions)
	case handlerMerchantList:
		return s.merchantTransactions(capturedTerm(match), analysis.Transactions)
	case handlerTopMerchants:
		return s.topMerchants(analysis.Transactions)
	case handlerCategoryBreakdown:
		return s.categoryBreakdown(analysis.Transactions)
	case handlerAggregateSpend:
		return s.aggregateSpend(query, analysis.Transactions)
	case handlerOTPList:
		return s.otpList(analysis.OTPMessages)
	case handlerTextSearch:
		return s.textSearch(capturedTerm(match), analysis.Messages)
	default:
		return helpText()
	}
}

func capturedTerm(match []string) string {
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func filterByMerchant(txns []models.Transaction, term string) []models.Transaction {
	needle := strings.ToLower(term)
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Merchant != "" && strings.Contains(strings.ToLower(t.Merchant), needle) {
			out = append(out, t)
		}
	}
	return out
}

func (s *QueryService) merchantSpend(query, term string, txns []models.Transaction) string {
	if term == "" {
		return s.aggregateSpend(query, txns)
	}

	window := WindowFromQuery(query)
	matched := FilterByWindow(filterByMerchant(txns, term), window, s.now())
	total := sumAmounts(matched)

	return fmt.Sprintf("%s at %s: %s across %d transaction(s).",
		window.Label(), strings.ToUpper(term), total.StringFixed(2), len(matched))
}

func (s *QueryService) merchantTransactions(term string, txns []models.Transaction) string {
	matched := filterByMerchant(txns, term)
	if len(matched) == 0 {
		return fmt.Sprintf("No transactions found for %q.", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d transaction(s) at %s, total %s:\n",
		len(matched), strings.ToUpper(term), sumAmounts(matched).StringFixed(2))

	for i, t := range matched {
		if i == transactionRowLimit {
			fmt.Fprintf(&b, "... and %d more", len(matched)-transactionRowLimit)
			break
		}
		b.WriteString(transactionRow(t))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *QueryService) aggregateSpend(query string, txns []models.Transaction) string {
	window := WindowFromQuery(query)
	matched := FilterByWindow(txns, window, s.now())
	total := sumAmounts(matched)

	return fmt.Sprintf("%s: %s across %d transaction(s).",
		window.Label(), total.StringFixed(2), len(matched))
}

func (s *QueryService) topMerchants(txns []models.Transaction) string {
	type merchantTotal struct {
		name  string
		total decimal.Decimal
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, t := range txns {
		name := t.Merchant
		if name == "" {
			name = "(unknown)"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(t.Amount)
	}

	if len(order) == 0 {
		return "No spending found yet."
	}

	ranked := make([]merchantTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, merchantTotal{name: name, total: totals[name]})
	}
	// Stable over first-seen order so equal totals rank deterministically.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total.GreaterThan(ranked[j].total)
	})

	if len(ranked) > topMerchantLimit {
		ranked = ranked[:topMerchantLimit]
	}

	var b strings.Builder
	b.WriteString("Top merchants by spend:\n")
	for i, m := range ranked {
		fmt.Fprintf(&b, "%d. %s | %s\n", i+1, m.name, m.total.StringFixed(2))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *QueryService) categoryBreakdown(txns []models.Transaction) string {
	type categoryTotal struct {
		name  string
		total decimal.Decimal
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, t := range txns {
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	if len(order) == 0 {
		return "No spending found yet."
	}

	grand := sumAmounts(txns)
	ranked := make([]categoryTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, categoryTotal{name: name, total: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total.GreaterThan(ranked[j].total)
	})

	var b strings.Builder
	b.WriteString("Spending by category:\n")
	for _, ct := range ranked {
		fmt.Fprintf(&b, "- %s: %s (%d%%)\n", ct.name, ct.total.StringFixed(2), truncatedPercent(ct.total, grand))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *QueryService) otpList(otps []models.Message) string {
	if len(otps) == 0 {
		return "No one-time passcodes found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d recent OTP message(s):\n", len(otps))
	for i, m := range otps {
		if i == otpRowLimit {
			break
		}
		fmt.Fprintf(&b, "- %s | %s\n", m.Time().Format(dateLayout), previewBody(m.Body))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *QueryService) textSearch(term string, messages []models.Message) string {
	needle := strings.ToLower(term)
	matched := make([]models.Message, 0)
	for _, m := range messages {
		if strings.Contains(strings.ToLower(m.Body), needle) {
			matched = append(matched, m)
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("No messages matching %q.", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d message(s) matching %q:\n", len(matched), term)
	for i, m := range matched {
		if i == searchRowLimit {
			fmt.Fprintf(&b, "... and %d more", len(matched)-searchRowLimit)
			break
		}
		fmt.Fprintf(&b, "- %s | %s\n", m.Time().Format(dateLayout), previewBody(m.Body))
	}
	return strings.TrimRight(b.String(), "\n")
}

func helpText() string {
	return strings.Join([]string{
		"I could not match that question. Try one of:",
		`- "how much did I spend this week"`,
		`- "how much did I spend at amazon this month"`,
		`- "transactions at uber"`,
		`- "top merchants"`,
		`- "category breakdown"`,
		`- "show my otps"`,
		`- "search electricity"`,
	}, "\n")
}
