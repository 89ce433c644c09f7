package events

import "testing"

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "session started", event: NewSessionStarted("id", []string{"a"}), expected: KindSessionStarted},
		{name: "session ended", event: NewSessionEnded("id", 3, false), expected: KindSessionEnded},
		{name: "turn started", event: NewTurnStarted("turn", "a", 0, 0), expected: KindTurnStarted},
		{name: "turn countdown", event: NewTurnCountdown("a", 0), expected: KindTurnCountdown},
		{name: "turn ended", event: NewTurnEnded("turn", "a", TurnEndCompleted), expected: KindTurnEnded},
		{name: "line reveal updated", event: NewLineRevealUpdated("a", "par"), expected: KindLineRevealUpdated},
		{name: "line final", event: NewLineFinal("a", "text", true), expected: KindLineFinal},
		{name: "capture opened", event: NewCaptureOpened("a"), expected: KindCaptureOpened},
		{name: "capture draft updated", event: NewCaptureDraftUpdated("a", "draft"), expected: KindCaptureDraftUpdated},
		{name: "capture resolved", event: NewCaptureResolved("a", "text", CaptureSubmitted), expected: KindCaptureResolved},
		{name: "interstitial shown", event: NewInterstitialShown("fact", 0), expected: KindInterstitialShown},
		{name: "interstitial cleared", event: NewInterstitialCleared(), expected: KindInterstitialCleared},
		{name: "decision prompted", event: NewDecisionPrompted("choose", []string{"a", "b"}), expected: KindDecisionPrompted},
		{name: "decision resolved", event: NewDecisionResolved("a", "narration"), expected: KindDecisionResolved},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestTurnEndReasonsAreDistinct(t *testing.T) {
	reasons := map[TurnEndReason]struct{}{
		TurnEndCompleted: {},
		TurnEndSkipped:   {},
		TurnEndCancelled: {},
	}

	if len(reasons) != 3 {
		t.Fatalf("expected 3 distinct turn end reasons, got %d", len(reasons))
	}
}
