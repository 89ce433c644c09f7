package orchestration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/koscakluka/dialogue-core/core/events"
)

const (
	defaultRevealInterval    = 50 * time.Millisecond
	defaultInterstitialDwell = 4 * time.Second
	defaultInterstitialSlot  = "interstitial"
)

// Config describes one session: its participants, pacing and optional
// interstitial and decision content.
type Config struct {
	Participants []ParticipantConfig

	// TurnDuration is the full time budget of every turn. Generation and
	// reveal time count against it; an agent turn never runs shorter.
	TurnDuration time.Duration

	// RevealInterval is the typewriter pause per revealed rune. Defaults to
	// 50ms.
	RevealInterval time.Duration

	// Interstitials are shown one per rotation, cycling, when non-empty.
	Interstitials      []string
	InterstitialDwell  time.Duration
	InterstitialSlotID string

	// Decision, when set, ends the session with a branch choice once the
	// round threshold is reached.
	Decision *DecisionConfig
}

// Scheduler owns participant order, phase, round counting and decision
// branching, and drives the gateway, capture and reveal components. It
// models exactly one live session.
type Scheduler struct {
	mu sync.Mutex

	id      string
	config  Config
	session sessionState

	clock      Clock
	gateway    responseGateway
	capture    captureController
	indicators IndicatorSink
	display    DisplaySink

	emit      eventEmitter
	started   atomic.Bool
	turn      *turnContext
	decisions chan string
}

// New validates config and builds a scheduler. Participant configuration is
// deep-copied into an owned arena; the caller's slices are never aliased.
func New(config Config, opts ...SchedulerOption) (*Scheduler, error) {
	s := &Scheduler{
		id:         uuid.NewString(),
		config:     config,
		clock:      SystemClock(),
		gateway:    newResponseGateway(),
		indicators: noopIndicatorSink{},
		display:    noopDisplaySink{},
		emit:       noopEventEmitter,
		decisions:  make(chan string, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.applyConfigDefaults(); err != nil {
		return nil, err
	}

	s.session = sessionState{phase: PhaseIdle}
	for _, participantConfig := range s.config.Participants {
		owned := ParticipantConfig{}
		if err := copier.CopyWithOption(&owned, &participantConfig, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("failed to copy participant config: %w", err)
		}
		s.session.participants = append(s.session.participants, &participant{config: owned})
	}

	return s, nil
}

func (s *Scheduler) applyConfigDefaults() error {
	if len(s.config.Participants) == 0 {
		return ConfigError{Reason: "participant list is empty"}
	}
	if s.config.TurnDuration <= 0 {
		return ConfigError{Reason: "turn duration must be positive"}
	}
	if s.config.RevealInterval <= 0 {
		s.config.RevealInterval = defaultRevealInterval
	}

	names := map[string]struct{}{}
	for i := range s.config.Participants {
		participantConfig := &s.config.Participants[i]
		if participantConfig.Name == "" {
			return ConfigError{Reason: fmt.Sprintf("participant %d has no name", i)}
		}
		if _, taken := names[participantConfig.Name]; taken {
			return ConfigError{Reason: fmt.Sprintf("duplicate participant name %q", participantConfig.Name)}
		}
		names[participantConfig.Name] = struct{}{}

		if participantConfig.Role == "" {
			participantConfig.Role = RoleAgent
		}
		if participantConfig.LineSource == "" {
			participantConfig.LineSource = LineSourceScripted
		}
		if participantConfig.Role == RoleUser && participantConfig.LineSource == LineSourceGenerated {
			return ConfigError{Reason: fmt.Sprintf("participant %q: user lines cannot be generated", participantConfig.Name)}
		}
		if participantConfig.LineSource == LineSourceGenerated && s.gateway.client == nil {
			return ConfigError{Reason: fmt.Sprintf("participant %q requires a generation client", participantConfig.Name)}
		}
	}

	if len(s.config.Interstitials) > 0 {
		if s.config.InterstitialDwell <= 0 {
			s.config.InterstitialDwell = defaultInterstitialDwell
		}
		if s.config.InterstitialSlotID == "" {
			s.config.InterstitialSlotID = defaultInterstitialSlot
		}
	}

	if decision := s.config.Decision; decision != nil {
		if err := decision.applyDefaults(); err != nil {
			return err
		}
	}

	return nil
}

// Run drives phases to completion or until ctx is cancelled.
//
// Cancellation is a signal, not a failure: Run restores the no-active-
// indicator state and returns nil. Contract: call Run at most once per
// scheduler instance.
func (s *Scheduler) Run(ctx context.Context, opts ...RunOption) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	runOptions := RunOptions{}
	for _, opt := range opts {
		opt(&runOptions)
	}
	s.emit = newCallbackEventEmitter(runOptions)

	ctx, span := tracer.Start(ctx, "run session")
	defer span.End()

	s.emit(events.NewSessionStarted(s.id, s.participantNames()))
	defer func() {
		s.deactivateAllIndicators()
		s.emit(events.NewSessionEnded(s.id, s.RoundsCompleted(), ctx.Err() != nil))
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if reason := s.runActiveTurn(ctx); reason == events.TurnEndCancelled {
			return nil
		}

		s.mu.Lock()
		wrapped := s.session.advance()
		decisionDue := wrapped && s.config.Decision != nil && !s.session.decisionEntered &&
			s.session.roundsCompleted >= s.config.Decision.Threshold
		s.mu.Unlock()

		if !wrapped {
			continue
		}

		if len(s.config.Interstitials) > 0 {
			s.runInterstitial(ctx)
		}

		if decisionDue {
			if s.runDecision(ctx) {
				s.setPhase(PhaseTerminal)
			}
			return nil
		}
	}
}

func (s *Scheduler) setPhase(phase Phase) {
	s.mu.Lock()
	s.session.phase = phase
	s.mu.Unlock()
}

// takeUtterance consumes the stored user utterance. It is read at most once;
// a second agent turn without an intervening user turn gets an empty
// context.
func (s *Scheduler) takeUtterance() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	utterance := s.session.lastUtterance
	s.session.lastUtterance = ""
	return utterance
}

func (s *Scheduler) participantNames() []string {
	names := make([]string, 0, len(s.session.participants))
	for _, p := range s.session.participants {
		names = append(names, p.config.Name)
	}
	return names
}

func (s *Scheduler) deactivateAllIndicators() {
	for _, p := range s.session.participants {
		s.indicators.SetActive(p.indicatorID(), false)
	}
}
