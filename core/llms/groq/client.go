package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/koscakluka/dialogue-core/core/llms"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel     = "llama-3.1-8b-instant"
	defaultMaxTokens = 80
)

// Client is a non-streaming Groq chat-completions client.
type Client struct {
	apiKey    string
	model     string
	maxTokens int
	url       string

	httpClient *http.Client
}

type ClientOption func(*Client)

// WithModel overrides the default completion model.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithMaxTokens overrides the default completion length bound.
func WithMaxTokens(maxTokens int) ClientOption {
	return func(c *Client) { c.maxTokens = maxTokens }
}

// WithEndpoint overrides the chat-completions endpoint URL.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) { c.url = url }
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = client }
}

func NewClient(apiKey string, opts ...ClientOption) *Client {
	client := &Client{
		apiKey:    apiKey,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
		url:       defaultURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Prompt sends a single chat-completion request and returns the first
// candidate completion.
//
// The request is attempted exactly once; deadline and cancellation are
// carried by ctx.
func (c *Client) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error) {
	ctx, span := tracer.Start(ctx, "groq chat completion")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", c.model))

	options := llms.PromptOptions{MaxTokens: c.maxTokens}
	for _, opt := range opts {
		opt(&options)
	}

	messages := toMessages(options.Instructions, options.Messages)
	messages = append(messages, message{
		Role:    messageRoleUser,
		Content: prompt,
	})

	requestBodyBytes, err := json.Marshal(requestBody{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: options.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordedErr := fmt.Errorf("error sending request: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.WarnContext(ctx, "non-OK HTTP status from completion endpoint",
			"status", resp.Status, "body", string(body))
		return nil, fmt.Errorf("non-OK HTTP status: %s", resp.Status)
	}

	var response responseBody
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		recordedErr := fmt.Errorf("error unmarshalling response: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty candidate list in response")
	}

	return &llms.Message{
		Role:    llms.MessageRoleAssistant,
		Content: strings.TrimSpace(response.Choices[0].Message.Content),
	}, nil
}
