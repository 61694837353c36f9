package services

import (
	"context"
	"log/slog"
	"time"
)

// AnalysisLogger emits structured lifecycle events for analysis passes and
// query dispatches.
type AnalysisLogger struct {
	logger *slog.Logger
}

// NewAnalysisLogger creates a new AnalysisLogger. A nil logger falls back to
// slog.Default.
func NewAnalysisLogger(logger *slog.Logger) *AnalysisLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisLogger{logger: logger}
}

func (al *AnalysisLogger) LogAnalysisStarted(ctx context.Context, messageCount int) {
	al.logger.InfoContext(ctx, "analysis started",
		slog.String("event_type", "analysis_started"),
		slog.Int("message_count", messageCount),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AnalysisLogger) LogAnalysisCompleted(ctx context.Context, transactionCount, otpCount int, durationMs int64) {
	al.logger.InfoContext(ctx, "analysis completed",
		slog.String("event_type", "analysis_completed"),
		slog.Int("transaction_count", transactionCount),
		slog.Int("otp_count", otpCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AnalysisLogger) LogAnalysisCacheHit(ctx context.Context, snapshotKey string, messageCount int) {
	al.logger.DebugContext(ctx, "analysis cache hit",
		slog.String("event_type", "analysis_cache_hit"),
		slog.String("snapshot_key", snapshotKey),
		slog.Int("message_count", messageCount),
	)
}

func (al *AnalysisLogger) LogQueryDispatched(ctx context.Context, handler string, durationMs int64) {
	al.logger.InfoContext(ctx, "query dispatched",
		slog.String("event_type", "query_dispatched"),
		slog.String("handler", handler),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AnalysisLogger) LogQueryUnmatched(ctx context.Context) {
	al.logger.InfoContext(ctx, "query unmatched, serving help text",
		slog.String("event_type", "query_unmatched"),
		slog.Time("timestamp", time.Now()),
	)
}
