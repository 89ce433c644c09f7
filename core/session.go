package orchestration

// Phase is one discrete state of the session-level state machine.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseActiveTurn       Phase = "active_turn"
	PhaseInterstitial     Phase = "interstitial"
	PhaseAwaitingDecision Phase = "awaiting_decision"
	PhaseTerminal         Phase = "terminal"
)

// sessionState is the shared mutable session record, owned exclusively by
// the scheduler. Guarded by Scheduler.mu.
type sessionState struct {
	participants []*participant

	currentIndex    int
	roundsCompleted int
	phase           Phase

	// lastUtterance is the most recent user-submitted text, consumed at most
	// once by the next generated agent line.
	lastUtterance string

	decisionEntered   bool
	interstitialIndex int
}

// advance moves currentIndex forward by exactly one participant and reports
// whether the index wrapped to 0, incrementing the round count when it did.
func (s *sessionState) advance() bool {
	s.currentIndex = (s.currentIndex + 1) % len(s.participants)
	if s.currentIndex == 0 {
		s.roundsCompleted++
		return true
	}
	return false
}

// ParticipantSnapshot is a point-in-time view of one participant.
type ParticipantSnapshot struct {
	Name        string
	Role        Role
	CurrentLine string
}

// Session is a point-in-time view of session state.
type Session struct {
	ID              string
	Phase           Phase
	CurrentIndex    int
	RoundsCompleted int
	LastUtterance   string
	Participants    []ParticipantSnapshot
}

// Session returns a point-in-time snapshot of session state.
func (s *Scheduler) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Session{
		ID:              s.id,
		Phase:           s.session.phase,
		CurrentIndex:    s.session.currentIndex,
		RoundsCompleted: s.session.roundsCompleted,
		LastUtterance:   s.session.lastUtterance,
	}
	for _, p := range s.session.participants {
		snapshot.Participants = append(snapshot.Participants, ParticipantSnapshot{
			Name:        p.config.Name,
			Role:        p.config.Role,
			CurrentLine: p.currentLine,
		})
	}
	return snapshot
}

// Phase returns the current session phase.
func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.phase
}

// RoundsCompleted returns the number of completed full rotations.
func (s *Scheduler) RoundsCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.roundsCompleted
}

// CurrentIndex returns the position of the participant whose turn is (or
// will next be) current.
func (s *Scheduler) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.currentIndex
}
