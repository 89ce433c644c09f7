package orchestration

import (
	"context"
	"sync"
	"time"

	"github.com/koscakluka/dialogue-core/core/events"
)

type captureResolution struct {
	text   string
	reason events.CaptureReason
}

// captureController is the bounded-time input window for user turns. It is
// owned by the scheduler; external commands (Submit, Skip, UpdateDraft) are
// routed into the currently open window.
type captureController struct {
	mu          sync.Mutex
	open        bool
	draft       string
	resolutions chan captureResolution
	onDraft     func(draft string)
}

func (c *captureController) openWindow(onDraft func(string)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = true
	c.draft = ""
	c.resolutions = make(chan captureResolution, 1)
	c.onDraft = onDraft
}

func (c *captureController) closeWindow() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = false
	c.onDraft = nil
}

// submit resolves the open window with the passed text. The first resolution
// wins; anything after it is a misuse.
func (c *captureController) submit(text string) error {
	return c.resolve(captureResolution{text: text, reason: events.CaptureSubmitted})
}

// skip resolves the open window with empty text.
func (c *captureController) skip() error {
	return c.resolve(captureResolution{reason: events.CaptureSkipped})
}

func (c *captureController) resolve(resolution captureResolution) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return ErrNoOpenCapture
	}
	c.open = false
	resolutions := c.resolutions
	c.mu.Unlock()

	select {
	case resolutions <- resolution:
	default:
	}
	return nil
}

// updateDraft replaces the accumulated partial text. The draft is what a
// deadline expiry returns.
func (c *captureController) updateDraft(draft string) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return ErrNoOpenCapture
	}
	c.draft = draft
	onDraft := c.onDraft
	c.mu.Unlock()

	if onDraft != nil {
		onDraft(draft)
	}
	return nil
}

func (c *captureController) takeDraft() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft := c.draft
	c.draft = ""
	return draft
}

// wait suspends until the window resolves: an explicit submit or skip, the
// deadline (returning the accumulated draft), or ctx cancellation. Exactly
// one outcome terminates the wait and the window is closed on every exit
// path.
func (c *captureController) wait(
	ctx context.Context,
	clock Clock,
	deadline time.Time,
	onTick func(remaining time.Duration),
) (string, events.CaptureReason, error) {
	defer c.closeWindow()

	for {
		remaining := deadline.Sub(clock.Now())
		if remaining <= 0 {
			return c.takeDraft(), events.CaptureTimedOut, nil
		}
		if onTick != nil {
			onTick(remaining)
		}

		step := remaining
		if step > time.Second {
			step = time.Second
		}

		select {
		case resolution := <-c.resolutions:
			return resolution.text, resolution.reason, nil
		case <-clock.After(step):
		case <-ctx.Done():
			return c.takeDraft(), "", ctx.Err()
		}
	}
}
