package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	orchestration "github.com/koscakluka/dialogue-core/core"
)

type recordingProgram struct {
	msgs chan tea.Msg
}

func (p *recordingProgram) Send(msg tea.Msg) {
	select {
	case p.msgs <- msg:
	default:
	}
}

func TestBridgeDeliversSessionMessages(t *testing.T) {
	scheduler, err := orchestration.New(orchestration.Config{
		TurnDuration:   20 * time.Millisecond,
		RevealInterval: time.Millisecond,
		Participants: []orchestration.ParticipantConfig{
			{Name: "Refrigerator", Lines: []string{"keep me plugged in"}},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	program := &recordingProgram{msgs: make(chan tea.Msg, 256)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- scheduler.Run(ctx, SessionRunOptions(program)...)
	}()

	var sawSessionStart, sawTurnStart, sawReveal, sawLineEnd bool
	deadline := time.After(2 * time.Second)
	for !(sawSessionStart && sawTurnStart && sawReveal && sawLineEnd) {
		select {
		case msg := <-program.msgs:
			switch msg := msg.(type) {
			case SessionStartedMsg:
				if len(msg.Participants) != 1 || msg.Participants[0] != "Refrigerator" {
					t.Fatalf("expected the participant roster, got %v", msg.Participants)
				}
				sawSessionStart = true
			case TurnStartedMsg:
				sawTurnStart = true
			case LineRevealMsg:
				sawReveal = true
			case LineFinalMsg:
				if msg.Line != "keep me plugged in" {
					t.Fatalf("expected the scripted line, got %q", msg.Line)
				}
				sawLineEnd = true
			}
		case <-deadline:
			t.Fatal("timed out waiting for bridged messages")
		}
	}

	cancel()
	select {
	case <-runDone:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the session to end")
	}
}
