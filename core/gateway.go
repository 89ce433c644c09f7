package orchestration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/koscakluka/dialogue-core/core/llms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultFallbackLine    = "The floor stays silent for a moment, but the debate continues."
	defaultOpeningPrompt   = "Open the conversation with your position. Keep your response to about one to two sentences and very short."
	defaultRebuttalPrompt  = "Your opponent just said: %s. Respond to it directly and keep your response to about one to two sentences and very short."
	defaultGenerationLimit = 8 * time.Second
)

// responseGateway builds role-conditioned prompts, invokes the configured LLM
// once per turn and degrades to a fixed fallback line on any failure. It
// never aborts the turn.
type responseGateway struct {
	client LLMWithPrompt

	openingPrompt    string
	rebuttalTemplate string
	fallback         string
	generationLimit  time.Duration
}

func newResponseGateway() responseGateway {
	return responseGateway{
		openingPrompt:    defaultOpeningPrompt,
		rebuttalTemplate: defaultRebuttalPrompt,
		fallback:         defaultFallbackLine,
		generationLimit:  defaultGenerationLimit,
	}
}

// generate returns the next line for an agent participant. The utterance, if
// any, is embedded verbatim in the rebuttal template; transport escaping is
// the client's concern. The call is bounded by deadline and by the
// per-generation limit, whichever is sooner, and always resolves to text.
func (g *responseGateway) generate(ctx context.Context, clock Clock, persona, utterance string, deadline time.Time) string {
	ctx, span := tracer.Start(ctx, "generate line")
	defer span.End()
	span.SetAttributes(attribute.Bool("line.rebuttal", utterance != ""))

	if g.client == nil {
		return g.fallback
	}

	prompt := g.openingPrompt
	if utterance != "" {
		prompt = fmt.Sprintf(g.rebuttalTemplate, utterance)
	}

	if limit := clock.Now().Add(g.generationLimit); g.generationLimit > 0 && limit.Before(deadline) {
		deadline = limit
	}
	callCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	response, err := g.client.Prompt(callCtx, prompt, llms.WithSystemPrompt(persona))
	if err != nil {
		recordedErr := fmt.Errorf("failed to generate line: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		logger.WarnContext(ctx, "line generation degraded to fallback", "error", err)
		return g.fallback
	}

	if response == nil || strings.TrimSpace(response.Content) == "" {
		logger.WarnContext(ctx, "empty generation response, using fallback")
		return g.fallback
	}

	return response.Content
}
