// Package analytics observes lifecycle outcomes for instrumentation. A
// Tracker never mutates core state; the default implementation just logs.
package analytics

import (
	"context"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
)

// Event names emitted by the orchestration layer.
const (
	EventScanSuccess      = "qr_scan_success"
	EventScanBlocked      = "qr_scan_blocked"
	EventScanLimitReached = "scan_limit_reached"
	EventCodeCreated      = "qr_code_created"
	EventPremiumActivated = "premium_activated"
)

// Tracker records named events with key-value attributes.
type Tracker interface {
	Track(ctx context.Context, event string, args ...any)
}

// LogTracker writes events to the structured log.
type LogTracker struct {
	log logging.Logger
}

func NewLogTracker(log logging.Logger) *LogTracker {
	return &LogTracker{log: log.With("component", "analytics")}
}

func (t *LogTracker) Track(ctx context.Context, event string, args ...any) {
	t.log.Info(ctx, event, args...)
}

// Noop discards all events.
type Noop struct{}

func (Noop) Track(context.Context, string, ...any) {}
