package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmoralesv/educrawl"
)

// Ensure LoggingSession implements educrawl.BrowserSession.
var _ educrawl.BrowserSession = (*LoggingSession)(nil)

// LoggingSession wraps a BrowserSession with debug logging of navigations.
type LoggingSession struct {
	next   educrawl.BrowserSession
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next educrawl.BrowserSession, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// WaitVisible delegates to the wrapped session.
func (s *LoggingSession) WaitVisible(ctx context.Context, selector string) error {
	return s.next.WaitVisible(ctx, selector)
}

// Click logs the selector being activated and delegates to the wrapped session.
func (s *LoggingSession) Click(ctx context.Context, selector string) error {
	s.logger.Debug("click", "selector", selector)
	return s.next.Click(ctx, selector)
}

// Attribute delegates to the wrapped session.
func (s *LoggingSession) Attribute(ctx context.Context, selector, name string) (string, error) {
	return s.next.Attribute(ctx, selector, name)
}

// HTML delegates to the wrapped session.
func (s *LoggingSession) HTML(ctx context.Context) (string, error) {
	return s.next.HTML(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
