package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"smsledger/internal/models"
)

// exclusionKeywords reject a message outright: credits, refunds, reversals
// and deposits are not spending events. Case-insensitive substring test.
var exclusionKeywords = []string{"credited", "refund", "reversal", "deposit"}

var (
	otpVocabularyRe = regexp.MustCompile(`(?i)\b(?:otp|one[ -]?time password|verification code)\b`)
	otpCodeRe       = regexp.MustCompile(`\b\d{4,8}\b`)
)

// Analysis is one pass over a message snapshot. Transactions and OTP
// messages are sorted newest-first; Messages preserves the same ordering for
// the free-text search handler.
type Analysis struct {
	Transactions []models.Transaction
	OTPMessages  []models.Message
	Messages     []models.Message
}

// AnalyzerService assembles Transactions from raw messages. It is pure over
// its input: the same snapshot always yields the same Analysis, which is why
// a single-entry memo keyed by a snapshot hash is safe.
type AnalyzerService struct {
	amounts    *AmountExtractor
	merchants  *MerchantResolver
	categories *CategoryClassifier
	logger     *AnalysisLogger
	metrics    MetricsRecorderInterface

	mu        sync.Mutex
	memoKey   string
	memoValue *Analysis
}

// NewAnalyzerService creates a new AnalyzerService
func NewAnalyzerService(
	amounts *AmountExtractor,
	merchants *MerchantResolver,
	categories *CategoryClassifier,
	logger *AnalysisLogger,
	metrics MetricsRecorderInterface,
) AnalyzerServiceInterface {
	if logger == nil {
		logger = NewAnalysisLogger(nil)
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &AnalyzerService{
		amounts:    amounts,
		merchants:  merchants,
		categories: categories,
		logger:     logger,
		metrics:    metrics,
	}
}

// Analyze runs one extraction pass over the snapshot. Messages are consumed
// in list order; input order breaks timestamp ties, so the caller must not
// reorder between calls if it wants byte-identical output.
func (s *AnalyzerService) Analyze(ctx context.Context, messages []models.Message) *Analysis {
	key := snapshotKey(messages)

	s.mu.Lock()
	if s.memoValue != nil && s.memoKey == key {
		memo := s.memoValue
		s.mu.Unlock()
		s.logger.LogAnalysisCacheHit(ctx, key, len(messages))
		s.metrics.IncrementCounter("analysis.cache", map[string]string{"result": "hit"})
		return memo
	}
	s.mu.Unlock()

	s.metrics.IncrementCounter("analysis.cache", map[string]string{"result": "miss"})
	s.logger.LogAnalysisStarted(ctx, len(messages))
	started := time.Now()

	analysis := s.assemble(messages)

	s.mu.Lock()
	s.memoKey = key
	s.memoValue = analysis
	s.mu.Unlock()

	elapsed := time.Since(started)
	s.logger.LogAnalysisCompleted(ctx, len(analysis.Transactions), len(analysis.OTPMessages), elapsed.Milliseconds())
	s.metrics.RecordProcessingTime("analysis.duration", elapsed)

	return analysis
}

// Invalidate drops the memoized analysis. Callers use this when the
// underlying message store changes out of band.
func (s *AnalyzerService) Invalidate() {
	s.mu.Lock()
	s.memoKey = ""
	s.memoValue = nil
	s.mu.Unlock()
}

func (s *AnalyzerService) assemble(messages []models.Message) *Analysis {
	analysis := &Analysis{
		Transactions: make([]models.Transaction, 0, len(messages)),
		OTPMessages:  make([]models.Message, 0),
		Messages:     make([]models.Message, len(messages)),
	}
	copy(analysis.Messages, messages)

	for _, msg := range messages {
		s.metrics.IncrementCounter("messages.analyzed", nil)

		if isOTPMessage(msg.Body) {
			analysis.OTPMessages = append(analysis.OTPMessages, msg)
			s.metrics.IncrementCounter("extraction.skipped", map[string]string{"reason": "otp"})
			continue
		}

		if containsExclusionKeyword(msg.Body) {
			s.metrics.IncrementCounter("extraction.skipped", map[string]string{"reason": "excluded"})
			continue
		}

		amount, ok := s.amounts.Extract(msg.Body)
		if !ok {
			s.metrics.IncrementCounter("extraction.skipped", map[string]string{"reason": "no_amount"})
			continue
		}

		merchant, method := s.merchants.Extract(msg.Body)
		s.metrics.IncrementCounter("merchant.resolution", map[string]string{"method": method})

		analysis.Transactions = append(analysis.Transactions, models.Transaction{
			Amount:        amount,
			Currency:      s.amounts.Currency(msg.Body),
			Merchant:      merchant,
			Category:      s.categories.Classify(merchant, msg.Body),
			Date:          msg.Date,
			SourceMessage: msg.Body,
		})
		s.metrics.IncrementCounter("transactions.extracted", nil)
	}

	// Stable: equal timestamps keep their relative input order.
	sort.SliceStable(analysis.Transactions, func(i, j int) bool {
		return analysis.Transactions[i].Date > analysis.Transactions[j].Date
	})
	sort.SliceStable(analysis.OTPMessages, func(i, j int) bool {
		return analysis.OTPMessages[i].Date > analysis.OTPMessages[j].Date
	})
	sort.SliceStable(analysis.Messages, func(i, j int) bool {
		return analysis.Messages[i].Date > analysis.Messages[j].Date
	})

	return analysis
}

func containsExclusionKeyword(body string) bool {
	lower := strings.ToLower(body)
	for _, keyword := range exclusionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isOTPMessage tags one-time-passcode messages: OTP vocabulary plus a 4-8
// digit code. Tagged messages never yield a Transaction.
func isOTPMessage(body string) bool {
	return otpVocabularyRe.MatchString(body) && otpCodeRe.MatchString(body)
}

// snapshotKey hashes the message list in input order. Identity of the
// snapshot, not of the slice header, decides whether the memo is reusable.
func snapshotKey(messages []models.Message) string {
	h := sha256.New()
	for _, m := range messages {
		h.Write([]byte(m.ID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatInt(m.Date, 10)))
		h.Write([]byte{0})
		h.Write([]byte(m.Body))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
