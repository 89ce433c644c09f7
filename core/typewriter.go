package orchestration

import (
	"context"
	"iter"
	"time"
)

// Typewriter turns a string into a lazy, time-paced sequence of reveal
// states.
type Typewriter struct {
	// Interval is the pause between consecutive reveal states.
	Interval time.Duration

	clock Clock
}

// NewTypewriter creates a typewriter pacing reveals on the system clock.
func NewTypewriter(interval time.Duration) Typewriter {
	return Typewriter{Interval: interval, clock: SystemClock()}
}

// Reveal produces the reveal sequence for text: the empty prefix first, then
// one appended rune per state, ending with the full text. The sequence has
// one state more than text has runes; empty input collapses to a single
// empty state.
//
// Cancelling ctx stops the sequence mid-reveal; the last yielded partial is
// whatever the consumer saw, never a longer prefix.
func (t Typewriter) Reveal(ctx context.Context, text string) iter.Seq[string] {
	clock := t.clock
	if clock == nil {
		clock = SystemClock()
	}

	return func(yield func(string) bool) {
		runes := []rune(text)
		for i := 0; i <= len(runes); i++ {
			if i > 0 {
				if err := sleepFor(ctx, clock, t.Interval); err != nil {
					return
				}
			}
			if !yield(string(runes[:i])) {
				return
			}
		}
	}
}
