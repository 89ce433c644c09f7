package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	orchestration "github.com/koscakluka/dialogue-core/core"
	"github.com/koscakluka/dialogue-core/core/events"
)

// Program is the message sink the session bridge feeds. *tea.Program
// satisfies it.
type Program interface {
	Send(msg tea.Msg)
}

// SessionRunOptions wires a running session into the TUI: every scheduler
// callback becomes a message on the bubbletea loop.
func SessionRunOptions(p Program) []orchestration.RunOption {
	return []orchestration.RunOption{
		orchestration.WithEventCallback(func(event events.Event) {
			if started, ok := event.(events.SessionStarted); ok {
				p.Send(SessionStartedMsg{Participants: started.Participants})
			}
		}),
		orchestration.WithTurnStartedCallback(func(participant string, index, round int) {
			p.Send(TurnStartedMsg{Participant: participant, Index: index, Round: round})
		}),
		orchestration.WithCountdownCallback(func(participant string, remaining time.Duration) {
			p.Send(CountdownMsg{Participant: participant, Remaining: remaining})
		}),
		orchestration.WithLineCallback(func(participant, partial string) {
			p.Send(LineRevealMsg{Participant: participant, Partial: partial})
		}),
		orchestration.WithLineEndCallback(func(participant, line string) {
			p.Send(LineFinalMsg{Participant: participant, Line: line})
		}),
		orchestration.WithCaptureOpenedCallback(func(participant string) {
			p.Send(CaptureOpenedMsg{Participant: participant})
		}),
		orchestration.WithCaptureResolvedCallback(func(text string, reason events.CaptureReason) {
			p.Send(CaptureResolvedMsg{Text: text, Reason: reason})
		}),
		orchestration.WithInterstitialCallback(func(text string) {
			p.Send(InterstitialMsg{Text: text})
		}),
		orchestration.WithInterstitialEndCallback(func() {
			p.Send(InterstitialClearedMsg{})
		}),
		orchestration.WithDecisionPromptCallback(func(prompt string, branches []string) {
			p.Send(DecisionPromptMsg{Prompt: prompt, Branches: branches})
		}),
		orchestration.WithDecisionResolvedCallback(func(branchID, narration string) {
			p.Send(DecisionResolvedMsg{Narration: narration})
		}),
		orchestration.WithSessionEndCallback(func() {
			p.Send(SessionEndedMsg{})
		}),
	}
}
