package orchestration

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/koscakluka/dialogue-core/core/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SkippedTurnUtterance is injected as conversational context when a user
// turn is skipped, so the next generated line still has something to respond
// to.
const SkippedTurnUtterance = "turn skipped, continue"

// turnContext is the ephemeral record of the one currently active turn.
type turnContext struct {
	id          string
	participant *participant
	index       int

	ctx     context.Context
	cancel  context.CancelFunc
	skipped atomic.Bool
}

func (s *Scheduler) runActiveTurn(parent context.Context) events.TurnEndReason {
	s.mu.Lock()
	p := s.session.participants[s.session.currentIndex]
	index := s.session.currentIndex
	round := s.session.roundsCompleted
	turn := &turnContext{id: uuid.NewString(), participant: p, index: index}
	turn.ctx, turn.cancel = context.WithCancel(parent)
	s.turn = turn
	s.session.phase = PhaseActiveTurn
	s.mu.Unlock()
	defer turn.cancel()

	ctx, span := tracer.Start(turn.ctx, "active turn", trace.WithAttributes(
		attribute.String("turn.participant", p.name()),
		attribute.Int("turn.index", index),
		attribute.Int("turn.round", round),
	))
	defer span.End()

	for _, other := range s.session.participants {
		if other != p {
			s.indicators.SetActive(other.indicatorID(), false)
		}
	}
	s.indicators.SetActive(p.indicatorID(), true)

	s.emit(events.NewTurnStarted(turn.id, p.name(), index, round))

	deadline := s.clock.Now().Add(s.config.TurnDuration)

	countdownCtx, stopCountdown := context.WithCancel(ctx)
	defer stopCountdown()
	go s.emitCountdown(countdownCtx, p, deadline)

	if p.config.Role == RoleUser {
		s.runUserTurn(ctx, turn, deadline)
	} else {
		s.runAgentTurn(ctx, turn, deadline)
	}

	// turn N cleanup always precedes turn N+1 activation
	s.display.Clear(p.slotID())
	s.indicators.SetActive(p.indicatorID(), false)

	reason := events.TurnEndCompleted
	if turn.skipped.Load() {
		reason = events.TurnEndSkipped
	} else if parent.Err() != nil {
		reason = events.TurnEndCancelled
	}

	s.mu.Lock()
	s.turn = nil
	s.mu.Unlock()

	s.emit(events.NewTurnEnded(turn.id, p.name(), reason))
	return reason
}

func (s *Scheduler) runAgentTurn(ctx context.Context, turn *turnContext, deadline time.Time) {
	p := turn.participant

	var line string
	generated := false
	if p.config.LineSource == LineSourceGenerated {
		line = s.gateway.generate(ctx, s.clock, p.config.Persona, s.takeUtterance(), deadline)
		generated = true
	} else {
		s.mu.Lock()
		line = p.nextScriptedLine()
		s.mu.Unlock()
	}

	if ctx.Err() != nil {
		// the turn was cancelled while the line was being produced; the
		// result is discarded, never applied to a stale turn
		return
	}

	if line != "" {
		s.mu.Lock()
		p.currentLine = line
		s.mu.Unlock()

		s.revealLine(ctx, p, line)
		if ctx.Err() == nil {
			s.emit(events.NewLineFinal(p.name(), line, generated))
		}
	}

	// the turn holds for its full budget even when the line is already
	// fully revealed, to keep pacing predictable
	s.holdUntil(ctx, deadline)
}

func (s *Scheduler) runUserTurn(ctx context.Context, turn *turnContext, deadline time.Time) {
	p := turn.participant

	s.capture.openWindow(func(draft string) {
		s.emit(events.NewCaptureDraftUpdated(p.name(), draft))
	})
	s.emit(events.NewCaptureOpened(p.name()))

	text, reason, err := s.capture.wait(ctx, s.clock, deadline, nil)
	if err != nil {
		// skipped or session cancelled; SkipTurn already injected the
		// sentinel utterance when it applied
		return
	}

	// the captured text overwrites context even when empty; an empty
	// submission deliberately clears it for the next generated line
	s.mu.Lock()
	s.session.lastUtterance = text
	p.currentLine = text
	s.mu.Unlock()

	s.emit(events.NewCaptureResolved(p.name(), text, reason))

	if text != "" {
		s.revealLine(ctx, p, text)
		if ctx.Err() == nil {
			s.emit(events.NewLineFinal(p.name(), text, false))
		}
	}
}

func (s *Scheduler) revealLine(ctx context.Context, p *participant, line string) {
	typewriter := Typewriter{Interval: s.config.RevealInterval, clock: s.clock}
	for partial := range typewriter.Reveal(ctx, line) {
		s.display.SetText(p.slotID(), partial)
		s.emit(events.NewLineRevealUpdated(p.name(), partial))
	}
}

// holdUntil keeps the turn open until deadline. Returns early only on
// cancellation.
func (s *Scheduler) holdUntil(ctx context.Context, deadline time.Time) {
	if remaining := deadline.Sub(s.clock.Now()); remaining > 0 {
		_ = sleepFor(ctx, s.clock, remaining)
	}
}

// emitCountdown ticks the remaining turn time roughly once per second for as
// long as the turn runs, regardless of what the turn is currently blocked on.
func (s *Scheduler) emitCountdown(ctx context.Context, p *participant, deadline time.Time) {
	for {
		remaining := deadline.Sub(s.clock.Now())
		if remaining <= 0 {
			return
		}
		s.emit(events.NewTurnCountdown(p.name(), remaining))

		step := remaining
		if step > time.Second {
			step = time.Second
		}
		if err := sleepFor(ctx, s.clock, step); err != nil {
			return
		}
	}
}
