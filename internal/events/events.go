// Package events publishes analytics events to a message broker. Publishing is
// fire-and-forget: failures are logged and never reach the request path.
package events

import (
	"context"
	"time"
)

// Routing keys.
const (
	LinkViewed          = "link.viewed"
	LinkCreated         = "link.created"
	ATSAnalyzed         = "ats.analyzed"
	ResumeScored        = "resume.scored"
	AssessmentSubmitted = "assessment.submitted"
	ResumeImported      = "resume.imported"
)

// Event is the JSON envelope of every published message.
type Event struct {
	Type       string         `json:"type"`
	Owner      string         `json:"owner"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// Publisher sends events. Implementations must not block callers on broker
// failures.
type Publisher interface {
	Publish(ctx context.Context, e Event)
	Close() error
}

// Noop discards events. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) {}

func (Noop) Close() error { return nil }
