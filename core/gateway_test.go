package orchestration

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/koscakluka/dialogue-core/core/llms"
)

func TestGenerateUsesOpeningPromptWithoutUtterance(t *testing.T) {
	client := &scriptedLLMClient{}
	gateway := newResponseGateway()
	gateway.client = client

	line := gateway.generate(context.Background(), SystemClock(), "debater", "", time.Now().Add(time.Second))
	if line != "generated line" {
		t.Fatalf("expected the client's line, got %q", line)
	}

	prompts := client.recordedPrompts()
	if len(prompts) != 1 {
		t.Fatalf("expected exactly one generation call, got %d", len(prompts))
	}
	if prompts[0] != defaultOpeningPrompt {
		t.Fatalf("expected the opening prompt, got %q", prompts[0])
	}
}

func TestGenerateEmbedsUtteranceInRebuttalPrompt(t *testing.T) {
	client := &scriptedLLMClient{}
	gateway := newResponseGateway()
	gateway.client = client

	gateway.generate(context.Background(), SystemClock(), "debater", "the lights must stay on", time.Now().Add(time.Second))

	prompts := client.recordedPrompts()
	if len(prompts) != 1 {
		t.Fatalf("expected exactly one generation call, got %d", len(prompts))
	}
	if !strings.Contains(prompts[0], "the lights must stay on") {
		t.Fatalf("expected the utterance embedded verbatim, got %q", prompts[0])
	}
	if prompts[0] == defaultOpeningPrompt {
		t.Fatal("expected the rebuttal prompt, got the opening prompt")
	}
}

func TestGenerateFallsBackOnClientError(t *testing.T) {
	client := &scriptedLLMClient{respond: func(string) (*llms.Message, error) {
		return nil, errors.New("boom")
	}}
	gateway := newResponseGateway()
	gateway.client = client

	line := gateway.generate(context.Background(), SystemClock(), "", "", time.Now().Add(time.Second))
	if line != defaultFallbackLine {
		t.Fatalf("expected the fallback line, got %q", line)
	}
}

func TestGenerateFallsBackOnEmptyResponse(t *testing.T) {
	client := &scriptedLLMClient{respond: func(string) (*llms.Message, error) {
		return &llms.Message{Role: llms.MessageRoleAssistant, Content: "   "}, nil
	}}
	gateway := newResponseGateway()
	gateway.client = client

	line := gateway.generate(context.Background(), SystemClock(), "", "", time.Now().Add(time.Second))
	if line != defaultFallbackLine {
		t.Fatalf("expected the fallback line, got %q", line)
	}
}

func TestGenerateFallsBackWithoutClient(t *testing.T) {
	gateway := newResponseGateway()

	line := gateway.generate(context.Background(), SystemClock(), "", "", time.Now().Add(time.Second))
	if line != defaultFallbackLine {
		t.Fatalf("expected the fallback line, got %q", line)
	}
}

func TestGenerateIsBoundedByTheDeadline(t *testing.T) {
	gateway := newResponseGateway()
	gateway.client = blockingLLMClient{}

	start := time.Now()
	line := gateway.generate(context.Background(), SystemClock(), "", "", time.Now().Add(50*time.Millisecond))
	if line != defaultFallbackLine {
		t.Fatalf("expected the fallback line, got %q", line)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected the deadline to bound the call, took %v", elapsed)
	}
}

func TestGenerateIsBoundedByTheGenerationLimit(t *testing.T) {
	gateway := newResponseGateway()
	gateway.client = blockingLLMClient{}
	gateway.generationLimit = 50 * time.Millisecond

	start := time.Now()
	line := gateway.generate(context.Background(), SystemClock(), "", "", time.Now().Add(time.Hour))
	if line != defaultFallbackLine {
		t.Fatalf("expected the fallback line, got %q", line)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected the generation limit to bound the call, took %v", elapsed)
	}
}
