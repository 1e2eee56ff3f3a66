package reply

import (
	"context"
	"strings"
	"time"

	"anilab-chat-be/pkg/llm"
)

const (
	// Persona is the system prompt used when answering free-form questions.
	Persona = "You are ANiLab AI assistant. Be helpful, concise and friendly. " +
		"Answer in the language of the customer. Never invent prices, shipping terms or product links."

	polishInstruction = "You are ANiLab AI assistant. Rewrite the following shop assistant reply so it sounds " +
		"warm and natural. Keep the language of the reply. Keep every product name and every URL exactly " +
		"as written, do not add products, links, prices or promises. Return only the rewritten reply."

	defaultTimeout   = 15 * time.Second
	defaultMaxTokens = 600
)

// Polisher rewrites drafts through a completion service. A nil provider
// turns it into a pass-through.
type Polisher struct {
	provider llm.LLMProvider
	timeout  time.Duration
}

func NewPolisher(provider llm.LLMProvider) *Polisher {
	return &Polisher{provider: provider, timeout: defaultTimeout}
}

func (p *Polisher) Enabled() bool {
	return p != nil && p.provider != nil
}

// Polish returns the rewritten draft, or the formatted draft unchanged when
// the provider fails, answers empty, or drops any of the draft's URLs.
func (p *Polisher) Polish(ctx context.Context, d Draft) string {
	text := Format(d)
	if !p.Enabled() || text == "" {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.provider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: polishInstruction},
		{Role: llm.RoleUser, Content: text},
	}, llm.WithMaxTokens(defaultMaxTokens))
	if err != nil {
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" || !keepsAll(out, d.URLs()) {
		return text
	}
	return out
}

// Answer replies to a raw customer message with the persona prompt.
func (p *Polisher) Answer(ctx context.Context, message string) (string, error) {
	if !p.Enabled() {
		return "", llm.ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.provider.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: Persona},
		{Role: llm.RoleUser, Content: message},
	}, llm.WithMaxTokens(defaultMaxTokens))
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", llm.ErrUnavailable
	}
	return out, nil
}

func keepsAll(text string, urls []string) bool {
	for _, u := range urls {
		if !strings.Contains(text, u) {
			return false
		}
	}
	return true
}
