package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koscakluka/dialogue-core/core/llms"
)

func TestPromptReturnsFirstCandidate(t *testing.T) {
	var captured requestBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  first  "}},{"index":1,"message":{"role":"assistant","content":"second"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithEndpoint(server.URL), WithModel("test-model"), WithMaxTokens(42))

	response, err := client.Prompt(context.Background(), "state your case",
		llms.WithSystemPrompt("you are a debater"),
		llms.WithMessages(llms.Message{Role: llms.MessageRoleUser, Content: "earlier"}),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if response.Content != "first" {
		t.Fatalf("expected first candidate content trimmed, got %q", response.Content)
	}
	if response.Role != llms.MessageRoleAssistant {
		t.Fatalf("expected assistant role, got %q", response.Role)
	}

	if captured.Model != "test-model" {
		t.Fatalf("expected model %q, got %q", "test-model", captured.Model)
	}
	if captured.MaxTokens != 42 {
		t.Fatalf("expected max tokens 42, got %d", captured.MaxTokens)
	}
	expectedRoles := []messageRole{messageRoleSystem, messageRoleUser, messageRoleUser}
	if len(captured.Messages) != len(expectedRoles) {
		t.Fatalf("expected %d messages, got %d", len(expectedRoles), len(captured.Messages))
	}
	for i, role := range expectedRoles {
		if captured.Messages[i].Role != role {
			t.Fatalf("expected message %d role %q, got %q", i, role, captured.Messages[i].Role)
		}
	}
	if captured.Messages[len(captured.Messages)-1].Content != "state your case" {
		t.Fatalf("expected prompt as last message, got %q", captured.Messages[len(captured.Messages)-1].Content)
	}
}

func TestPromptEscapesControlCharactersInTransit(t *testing.T) {
	var rawBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var captured requestBody
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&captured); err != nil {
			t.Errorf("request body is not valid JSON: %v", err)
		}
		rawBody, _ = json.Marshal(captured)
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithEndpoint(server.URL))

	hostile := "he said \"unplug it\"\nand\tleft"
	if _, err := client.Prompt(context.Background(), hostile); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var roundTripped requestBody
	if err := json.Unmarshal(rawBody, &roundTripped); err != nil {
		t.Fatalf("round-tripped body is not valid JSON: %v", err)
	}
	last := roundTripped.Messages[len(roundTripped.Messages)-1]
	if last.Content != hostile {
		t.Fatalf("expected content preserved through transport, got %q", last.Content)
	}
}

func TestPromptFailsOnNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", WithEndpoint(server.URL))

	if _, err := client.Prompt(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for non-OK status, got nil")
	}
}

func TestPromptFailsOnEmptyCandidateList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithEndpoint(server.URL))

	if _, err := client.Prompt(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty candidate list, got nil")
	}
}

func TestPromptFailsOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithEndpoint(server.URL))

	if _, err := client.Prompt(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestPromptHonorsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient("test-key", WithEndpoint(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := client.Prompt(ctx, "prompt"); err == nil {
		t.Fatal("expected deadline error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected prompt to resolve near the deadline, took %v", elapsed)
	}
}
