package llms

// PromptOptions contains all the options for a single prompt.
type PromptOptions struct {
	Instructions string
	Messages     []Message
	MaxTokens    int
}

// PromptOption is a function that can be used to modify the prompt options.
type PromptOption func(*PromptOptions)

// WithSystemPrompt sets the system prompt. Repeating this option overwrites
// the previous system prompt.
func WithSystemPrompt(prompt string) PromptOption {
	return func(opts *PromptOptions) {
		opts.Instructions = prompt
	}
}

// WithMessages adds passed messages to the prompt. Repeating this option
// sequentially adds more messages.
func WithMessages(messages ...Message) PromptOption {
	return func(opts *PromptOptions) {
		opts.Messages = append(opts.Messages, messages...)
	}
}

// WithMaxTokens bounds the length of the generated completion.
func WithMaxTokens(maxTokens int) PromptOption {
	return func(opts *PromptOptions) {
		opts.MaxTokens = maxTokens
	}
}
