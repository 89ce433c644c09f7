package events

import "time"

// Kind names an event type, namespaced by concern ("session.started",
// "turn_state.countdown", "capture.resolved", ...). Consumers switch on it
// when they only care about a slice of the stream.
type Kind string

// Event is what every emitted event satisfies. Concrete events embed Base
// and add their payload on top.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind and emission time common to all events.
type Base struct {
	kind      Kind
	timestamp time.Time
}

// NewBase stamps a base with the current time.
func NewBase(kind Kind) Base {
	return Base{kind: kind, timestamp: time.Now()}
}

func (b Base) Kind() Kind { return b.kind }

func (b Base) Timestamp() time.Time { return b.timestamp }
