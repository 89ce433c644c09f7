package events

const (
	// KindSessionStarted identifies session start.
	KindSessionStarted Kind = "session.started"
	// KindSessionEnded identifies session completion or cancellation.
	KindSessionEnded Kind = "session.ended"
)

// SessionStarted marks the scheduler starting to drive phases.
type SessionStarted struct {
	Base
	SessionID    string
	Participants []string
}

// NewSessionStarted creates a session started event.
func NewSessionStarted(sessionID string, participants []string) SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted), SessionID: sessionID, Participants: participants}
}

// SessionEnded marks the session reaching its terminal phase or being
// cancelled.
type SessionEnded struct {
	Base
	SessionID       string
	RoundsCompleted int
	Cancelled       bool
}

// NewSessionEnded creates a session ended event.
func NewSessionEnded(sessionID string, roundsCompleted int, cancelled bool) SessionEnded {
	return SessionEnded{Base: NewBase(KindSessionEnded), SessionID: sessionID, RoundsCompleted: roundsCompleted, Cancelled: cancelled}
}
