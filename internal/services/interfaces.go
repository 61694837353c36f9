package services

import (
	"context"
	"time"

	"smsledger/internal/models"
)

// AnalyzerServiceInterface assembles Transactions from a raw message
// snapshot. One message yields at most one Transaction; credits, refunds,
// reversals, deposits and OTP messages yield none.
type AnalyzerServiceInterface interface {
	// Analyze runs one extraction pass, memoized on the snapshot content.
	Analyze(ctx context.Context, messages []models.Message) *Analysis

	// Invalidate drops the memoized analysis.
	Invalidate()
}

// QueryServiceInterface answers free-text questions over an Analysis.
type QueryServiceInterface interface {
	Answer(ctx context.Context, rawQuery string, analysis *Analysis) QueryResult
}

// TokenServiceInterface issues and validates the bearer tokens guarding the
// HTTP surface.
type TokenServiceInterface interface {
	GenerateToken(subject string) (string, time.Time, error)
	ValidateToken(tokenString string) (string, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface decouples the engine from the metrics backend.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
