package tui

import (
	"time"

	"github.com/koscakluka/dialogue-core/core/events"
)

// Messages delivered into the bubbletea loop by the session bridge.

type SessionStartedMsg struct {
	Participants []string
}

type TurnStartedMsg struct {
	Participant string
	Index       int
	Round       int
}

type CountdownMsg struct {
	Participant string
	Remaining   time.Duration
}

type LineRevealMsg struct {
	Participant string
	Partial     string
}

type LineFinalMsg struct {
	Participant string
	Line        string
}

type CaptureOpenedMsg struct {
	Participant string
}

type CaptureResolvedMsg struct {
	Text   string
	Reason events.CaptureReason
}

type InterstitialMsg struct {
	Text string
}

type InterstitialClearedMsg struct{}

type DecisionPromptMsg struct {
	Prompt   string
	Branches []string
}

type DecisionResolvedMsg struct {
	Narration string
}

type SessionEndedMsg struct{}

// introTickMsg advances the intro line sequence.
type introTickMsg struct{}
