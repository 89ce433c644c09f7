package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/koscakluka/dialogue-core/core/events"
)

const (
	defaultDecisionSlot    = "decision"
	defaultNarrationDelay  = 6 * time.Second
	defaultClosingDelay    = 4 * time.Second
	defaultDecisionClosing = "Simulation Complete."
)

// DecisionConfig describes the terminal branching decision.
type DecisionConfig struct {
	// Threshold is the number of completed rotations after which the
	// decision phase is entered.
	Threshold int

	Prompt   string
	Branches []Branch

	// NarrationDelay is how long the chosen branch's narration stays up
	// before the closing text, ClosingDelay how long the closing text stays
	// up before the session terminates.
	NarrationDelay time.Duration
	ClosingText    string
	ClosingDelay   time.Duration

	SlotID string
}

// Branch is one selectable decision outcome.
type Branch struct {
	ID        string
	Label     string
	Narration string
}

func (c *DecisionConfig) applyDefaults() error {
	if c.Threshold <= 0 {
		return ConfigError{Reason: "decision threshold must be positive"}
	}
	if len(c.Branches) == 0 {
		return ConfigError{Reason: "decision has no branches"}
	}

	ids := map[string]struct{}{}
	for i, branch := range c.Branches {
		if branch.ID == "" {
			return ConfigError{Reason: fmt.Sprintf("decision branch %d has no id", i)}
		}
		if _, taken := ids[branch.ID]; taken {
			return ConfigError{Reason: fmt.Sprintf("duplicate decision branch id %q", branch.ID)}
		}
		ids[branch.ID] = struct{}{}
	}

	if c.NarrationDelay <= 0 {
		c.NarrationDelay = defaultNarrationDelay
	}
	if c.ClosingDelay <= 0 {
		c.ClosingDelay = defaultClosingDelay
	}
	if c.ClosingText == "" {
		c.ClosingText = defaultDecisionClosing
	}
	if c.SlotID == "" {
		c.SlotID = defaultDecisionSlot
	}
	return nil
}

func (c *DecisionConfig) branch(id string) (Branch, bool) {
	for _, branch := range c.Branches {
		if branch.ID == id {
			return branch, true
		}
	}
	return Branch{}, false
}

func (c *DecisionConfig) branchIDs() []string {
	ids := make([]string, 0, len(c.Branches))
	for _, branch := range c.Branches {
		ids = append(ids, branch.ID)
	}
	return ids
}

// runDecision suspends the session on the branch choice, then plays the
// chosen narration and the closing text. Reports whether the decision
// resolved (as opposed to the session being cancelled while waiting).
func (s *Scheduler) runDecision(ctx context.Context) bool {
	decision := s.config.Decision

	s.mu.Lock()
	s.session.phase = PhaseAwaitingDecision
	s.session.decisionEntered = true
	s.mu.Unlock()

	ctx, span := tracer.Start(ctx, "decision phase")
	defer span.End()

	s.display.SetText(decision.SlotID, decision.Prompt)
	s.emit(events.NewDecisionPrompted(decision.Prompt, decision.branchIDs()))

	select {
	case id := <-s.decisions:
		branch, _ := decision.branch(id)
		s.display.SetText(decision.SlotID, branch.Narration)
		s.emit(events.NewDecisionResolved(branch.ID, branch.Narration))
		_ = sleepFor(ctx, s.clock, decision.NarrationDelay)

		s.display.SetText(decision.SlotID, decision.ClosingText)
		_ = sleepFor(ctx, s.clock, decision.ClosingDelay)
		return true

	case <-ctx.Done():
		s.display.Clear(decision.SlotID)
		return false
	}
}
