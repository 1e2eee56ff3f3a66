package factory

import (
	"fmt"

	"anilab-chat-be/pkg/llm"
	"anilab-chat-be/pkg/llm/ollama"
	"anilab-chat-be/pkg/llm/openai"
)

type Config struct {
	Provider      string // "openai", "ollama" or "none"
	APIKey        string
	Model         string
	BaseURL       string
	OllamaBaseURL string
	OllamaModel   string
}

// NewLLMProvider returns llm.ErrUnavailable when the chosen backend cannot
// be used (disabled or missing credential). Callers treat that as "polish off".
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", "openai":
		p, err := openai.NewProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		model := cfg.OllamaModel
		if model == "" {
			model = "llama3"
		}
		return ollama.NewOllamaProvider(baseURL, model), nil
	case "none":
		return nil, llm.ErrUnavailable
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
