// Package audit provides the append-only anonymized event record. Events
// carry the pseudonymous id and the length of the message content, never
// the raw identity or the text itself. The log is write-only: nothing in
// the pipeline reads it back.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType classifies an audit event.
type EventType string

const (
	TypeMessage  EventType = "message"
	TypeAlert    EventType = "alert"
	TypeReminder EventType = "reminder"
)

// Event is one anonymized record of bot activity.
type Event struct {
	ID         string
	PseudoID   string
	Timestamp  time.Time
	Type       EventType
	ContentLen int
	Intent     string
}

// Recorder appends events to a sink. Implementations must be safe for
// concurrent use. Record failures are the caller's to log and swallow;
// auditing never fails the pipeline.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// NewEvent builds an event for the given activity. Content is measured,
// never stored.
func NewEvent(pseudoID string, typ EventType, content, intentTag string) Event {
	if intentTag == "" {
		intentTag = "unknown"
	}
	return Event{
		ID:         uuid.NewString(),
		PseudoID:   pseudoID,
		Timestamp:  time.Now(),
		Type:       typ,
		ContentLen: len(content),
		Intent:     intentTag,
	}
}

// MemoryLog is the in-process recorder used when no database is
// configured. It grows for the process lifetime.
type MemoryLog struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryLog constructs an empty in-memory recorder.
func NewMemoryLog() *MemoryLog { return &MemoryLog{} }

// Record appends ev to the log.
func (l *MemoryLog) Record(_ context.Context, ev Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
	return nil
}

// Events returns a copy of the recorded events, oldest first.
func (l *MemoryLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
