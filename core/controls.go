package orchestration

import "fmt"

// SkipTurn ends the current turn early, cancelling whatever suspension it is
// blocked on. The index still advances by exactly one. Skipping a user turn
// injects the sentinel utterance so the next generated line keeps
// conversational context. Callable only while a turn is active.
func (s *Scheduler) SkipTurn() error {
	s.mu.Lock()
	turn := s.turn
	if s.session.phase != PhaseActiveTurn || turn == nil {
		s.mu.Unlock()
		return ErrNoActiveTurn
	}
	turn.skipped.Store(true)
	if turn.participant.config.Role == RoleUser {
		s.session.lastUtterance = SkippedTurnUtterance
	}
	s.mu.Unlock()

	turn.cancel()
	return nil
}

// Submit resolves the open input window with text. Text may be empty; it is
// stored as the utterance either way.
func (s *Scheduler) Submit(text string) error {
	return s.capture.submit(text)
}

// SkipCapture resolves the open input window with empty text, clearing the
// stored utterance.
func (s *Scheduler) SkipCapture() error {
	return s.capture.skip()
}

// UpdateDraft replaces the open input window's partial text, which a
// deadline expiry captures.
func (s *Scheduler) UpdateDraft(text string) error {
	return s.capture.updateDraft(text)
}

// SubmitDecision resolves the terminal branch choice. Outside the decision
// phase the call is ignored; an unknown branch id is rejected without
// touching session state.
func (s *Scheduler) SubmitDecision(branchID string) error {
	s.mu.Lock()
	awaiting := s.session.phase == PhaseAwaitingDecision
	s.mu.Unlock()

	if !awaiting || s.config.Decision == nil {
		return nil
	}

	branch, ok := s.config.Decision.branch(branchID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBranch, branchID)
	}

	select {
	case s.decisions <- branch.ID:
	default:
	}
	return nil
}
