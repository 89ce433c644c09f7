package scenario

import (
	"context"
	"strings"
	"testing"
	"time"

	orchestration "github.com/koscakluka/dialogue-core/core"
	"github.com/koscakluka/dialogue-core/core/llms"
)

type promptStub struct{}

func (promptStub) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error) {
	return &llms.Message{Role: llms.MessageRoleAssistant, Content: "ok"}, nil
}

const sampleScenario = `
title: Late Night Standoff
turn_duration: 10s
reveal_interval: 50ms
participants:
  - name: Kettle
    persona: a kettle
    source: generated
  - name: You
    role: user
interstitials:
  - kettles boil at 100C
interstitial_dwell: 4s
decision:
  after_rounds: 2
  prompt: pick one
  branches:
    - id: kettle
      label: Unplug the Kettle
      narration: steam fades
  narration_delay: 6s
  closing_delay: 4s
`

func TestParseBuildsOrchestrationConfig(t *testing.T) {
	scenario, err := Parse([]byte(sampleScenario))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if scenario.Title != "Late Night Standoff" {
		t.Fatalf("expected the title to survive parsing, got %q", scenario.Title)
	}

	config := scenario.Config()
	if config.TurnDuration != 10*time.Second {
		t.Fatalf("expected a 10s turn duration, got %v", config.TurnDuration)
	}
	if config.RevealInterval != 50*time.Millisecond {
		t.Fatalf("expected a 50ms reveal interval, got %v", config.RevealInterval)
	}
	if len(config.Participants) != 2 {
		t.Fatalf("expected two participants, got %d", len(config.Participants))
	}
	if config.Participants[0].LineSource != orchestration.LineSourceGenerated {
		t.Fatalf("expected a generated first participant, got %q", config.Participants[0].LineSource)
	}
	if config.Participants[1].Role != orchestration.RoleUser {
		t.Fatalf("expected a user second participant, got %q", config.Participants[1].Role)
	}
	if config.Decision == nil || config.Decision.Threshold != 2 {
		t.Fatalf("expected a decision after 2 rounds, got %+v", config.Decision)
	}
	if config.Decision.Branches[0].ID != "kettle" {
		t.Fatalf("expected the branch id to survive conversion, got %q", config.Decision.Branches[0].ID)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("turn_durration: 10s\nparticipants: []\n"))
	if err == nil {
		t.Fatal("expected a typoed key to be rejected")
	}
}

func TestParseRejectsMalformedDurations(t *testing.T) {
	_, err := Parse([]byte("turn_duration: soon\nparticipants: []\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("expected an invalid duration error, got %v", err)
	}
}

func TestDefaultScenarioIsAcceptedByTheScheduler(t *testing.T) {
	scenario := Default()

	_, err := orchestration.New(scenario.Config(), orchestration.WithLLM(promptStub{}))
	if err != nil {
		t.Fatalf("expected the built-in scenario to validate, got %v", err)
	}

	if len(scenario.Intro) == 0 {
		t.Fatal("expected the built-in scenario to carry intro lines")
	}
	if scenario.Decision == nil || len(scenario.Decision.Branches) != 2 {
		t.Fatal("expected the built-in scenario to end in a two-way decision")
	}
}

func TestSchemaCoversTopLevelFields(t *testing.T) {
	schema := Schema()
	if schema == nil || schema.Properties == nil {
		t.Fatal("expected a reflected schema with properties")
	}

	for _, field := range []string{"participants", "turn_duration", "decision"} {
		if _, ok := schema.Properties.Get(field); !ok {
			t.Fatalf("expected the schema to describe %q", field)
		}
	}
}
