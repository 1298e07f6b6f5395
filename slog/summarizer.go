// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

// Ensure LoggingSummarizer implements dealerfinder.Summarizer.
var _ dealerfinder.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with per-call logging.
type LoggingSummarizer struct {
	next   dealerfinder.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next dealerfinder.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs the dealer and input size and delegates to the wrapped
// summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, dealerName, pageText string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"dealer", dealerName,
			"input_runes", len([]rune(pageText)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, dealerName, pageText)
}
