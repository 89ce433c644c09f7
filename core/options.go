package orchestration

import (
	"context"
	"time"

	"github.com/koscakluka/dialogue-core/core/events"
	"github.com/koscakluka/dialogue-core/core/llms"
)

type SchedulerOption func(*Scheduler)

// LLMWithPrompt is the single-shot prompting contract the response gateway
// drives. The configured deadline is carried by ctx.
type LLMWithPrompt interface {
	Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error)
}

// WithLLM configures the client used for generated agent lines.
func WithLLM(client LLMWithPrompt) SchedulerOption {
	return func(s *Scheduler) { s.gateway.client = client }
}

// WithClock substitutes the time source. Defaults to the system clock.
func WithClock(clock Clock) SchedulerOption {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIndicatorSink configures the indicator sink participants light up in.
func WithIndicatorSink(sink IndicatorSink) SchedulerOption {
	return func(s *Scheduler) {
		if sink != nil {
			s.indicators = sink
		}
	}
}

// WithDisplaySink configures the text display sink.
func WithDisplaySink(sink DisplaySink) SchedulerOption {
	return func(s *Scheduler) {
		if sink != nil {
			s.display = sink
		}
	}
}

// WithFallbackLine overrides the line used when generation fails or times
// out.
func WithFallbackLine(line string) SchedulerOption {
	return func(s *Scheduler) { s.gateway.fallback = line }
}

// WithOpeningPrompt overrides the task instruction used when no opposing
// utterance is available.
func WithOpeningPrompt(prompt string) SchedulerOption {
	return func(s *Scheduler) { s.gateway.openingPrompt = prompt }
}

// WithRebuttalTemplate overrides the task instruction used when an opposing
// utterance is available. The template must contain exactly one %s verb for
// the utterance.
func WithRebuttalTemplate(template string) SchedulerOption {
	return func(s *Scheduler) { s.gateway.rebuttalTemplate = template }
}

// WithGenerationLimit caps a single generation call. The call is always also
// bounded by the turn's remaining budget; zero disables the extra cap.
func WithGenerationLimit(limit time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.gateway.generationLimit = limit }
}

type RunOptions struct {
	onEvent            func(events.Event)
	onTurnStarted      func(participant string, index, round int)
	onCountdown        func(participant string, remaining time.Duration)
	onLine             func(participant, partial string)
	onLineEnd          func(participant, line string)
	onCaptureOpened    func(participant string)
	onCaptureResolved  func(text string, reason events.CaptureReason)
	onInterstitial     func(text string)
	onInterstitialEnd  func()
	onDecisionPrompt   func(prompt string, branches []string)
	onDecisionResolved func(branchID, narration string)
	onCancellation     func()
	onSessionEnd       func()
}

type RunOption func(*RunOptions)

// WithEventCallback registers a callback for every raw orchestration event.
// It fires before any of the specialized callbacks.
func WithEventCallback(callback func(events.Event)) RunOption {
	return func(o *RunOptions) {
		o.onEvent = callback
	}
}

// WithTurnStartedCallback registers a callback for a participant's turn
// becoming current.
func WithTurnStartedCallback(callback func(participant string, index, round int)) RunOption {
	return func(o *RunOptions) {
		o.onTurnStarted = callback
	}
}

// WithCountdownCallback registers a callback for remaining-time updates,
// emitted roughly once per second during a turn.
func WithCountdownCallback(callback func(participant string, remaining time.Duration)) RunOption {
	return func(o *RunOptions) {
		o.onCountdown = callback
	}
}

// WithLineCallback registers a callback for partial line reveals.
func WithLineCallback(callback func(participant, partial string)) RunOption {
	return func(o *RunOptions) {
		o.onLine = callback
	}
}

// WithLineEndCallback registers a callback for fully revealed lines.
func WithLineEndCallback(callback func(participant, line string)) RunOption {
	return func(o *RunOptions) {
		o.onLineEnd = callback
	}
}

// WithCaptureOpenedCallback registers a callback for input windows opening.
func WithCaptureOpenedCallback(callback func(participant string)) RunOption {
	return func(o *RunOptions) {
		o.onCaptureOpened = callback
	}
}

// WithCaptureResolvedCallback registers a callback for input windows
// closing, with the captured text and its completion reason.
func WithCaptureResolvedCallback(callback func(text string, reason events.CaptureReason)) RunOption {
	return func(o *RunOptions) {
		o.onCaptureResolved = callback
	}
}

// WithInterstitialCallback registers a callback for interstitial content.
func WithInterstitialCallback(callback func(text string)) RunOption {
	return func(o *RunOptions) {
		o.onInterstitial = callback
	}
}

// WithInterstitialEndCallback registers a callback for interstitial dwell
// ending.
func WithInterstitialEndCallback(callback func()) RunOption {
	return func(o *RunOptions) {
		o.onInterstitialEnd = callback
	}
}

// WithDecisionPromptCallback registers a callback for the decision phase
// opening.
func WithDecisionPromptCallback(callback func(prompt string, branches []string)) RunOption {
	return func(o *RunOptions) {
		o.onDecisionPrompt = callback
	}
}

// WithDecisionResolvedCallback registers a callback for the chosen branch.
func WithDecisionResolvedCallback(callback func(branchID, narration string)) RunOption {
	return func(o *RunOptions) {
		o.onDecisionResolved = callback
	}
}

// WithCancellationCallback registers a callback for turns ending early, by
// skip or by session cancellation.
func WithCancellationCallback(callback func()) RunOption {
	return func(o *RunOptions) {
		o.onCancellation = callback
	}
}

// WithSessionEndCallback registers a callback for the session ending.
func WithSessionEndCallback(callback func()) RunOption {
	return func(o *RunOptions) {
		o.onSessionEnd = callback
	}
}
