package orchestration

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestRevealYieldsEveryPrefix(t *testing.T) {
	typewriter := NewTypewriter(time.Millisecond)

	var partials []string
	for partial := range typewriter.Reveal(context.Background(), "cat") {
		partials = append(partials, partial)
	}

	expected := []string{"", "c", "ca", "cat"}
	if !slices.Equal(partials, expected) {
		t.Fatalf("expected %q, got %q", expected, partials)
	}
}

func TestRevealHandlesMultibyteRunes(t *testing.T) {
	typewriter := NewTypewriter(time.Millisecond)

	var partials []string
	for partial := range typewriter.Reveal(context.Background(), "héj") {
		partials = append(partials, partial)
	}

	expected := []string{"", "h", "hé", "héj"}
	if !slices.Equal(partials, expected) {
		t.Fatalf("expected %q, got %q", expected, partials)
	}
}

func TestRevealOfEmptyTextIsASingleEmptyState(t *testing.T) {
	typewriter := NewTypewriter(time.Millisecond)

	var partials []string
	for partial := range typewriter.Reveal(context.Background(), "") {
		partials = append(partials, partial)
	}

	if !slices.Equal(partials, []string{""}) {
		t.Fatalf("expected a single empty state, got %q", partials)
	}
}

func TestRevealStopsOnCancellation(t *testing.T) {
	typewriter := NewTypewriter(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var partials []string
	for partial := range typewriter.Reveal(ctx, "a long line that should never finish") {
		partials = append(partials, partial)
		if len(partials) == 3 {
			cancel()
		}
	}

	if len(partials) != 3 {
		t.Fatalf("expected the sequence to stop after cancellation, got %d states", len(partials))
	}
	if partials[len(partials)-1] != "a " {
		t.Fatalf("expected the last partial to be the prefix seen at cancellation, got %q", partials[len(partials)-1])
	}
}

func TestRevealRespectsEarlyConsumerBreak(t *testing.T) {
	typewriter := NewTypewriter(time.Millisecond)

	count := 0
	for range typewriter.Reveal(context.Background(), "cat") {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Fatalf("expected the sequence to stop when the consumer breaks, got %d states", count)
	}
}
