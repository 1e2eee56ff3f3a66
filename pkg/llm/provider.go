// Package llm is the narrow contract the chat service uses to reach a
// completion backend. Callers own the fallback policy: any error, including
// ErrUnavailable, means "answer without the model this turn".
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable means no completion backend is configured or reachable.
var ErrUnavailable = errors.New("llm provider unavailable")

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Options are per-call overrides. Zero values leave the provider default.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type Option func(*Options)

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

// ApplyOptions resolves options on top of the given defaults.
func ApplyOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// LLMProvider turns a conversation into one assistant reply.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, opts ...Option) (string, error)

	// Generate is Chat with a single user message.
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}
