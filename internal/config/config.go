package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Chat    ChatConfig
	Session SessionConfig
	SMTP    SMTPConfig
	Ai      AIConfig
	// EnvFileLoaded is false when no .env file was found; the process
	// environment is used either way.
	EnvFileLoaded bool
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	OtelEnabled        bool
}

type ChatConfig struct {
	SupportURL       string
	StrictValidation bool
	RecommendLimit   int
	CatalogPath      string
	FAQPath          string
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	TTL      time.Duration
	RedisURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	LeadTo   string
}

type AIConfig struct {
	LLMProvider   string // "openai", "ollama" or "none"
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	OllamaBaseURL string
	OllamaModel   string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		EnvFileLoaded: loaded,
		App: AppConfig{
			Port:               getEnv("PORT", "10000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Chat: ChatConfig{
			SupportURL:       getEnv("SUPPORT_URL", "https://anilab.sk/kontakt"),
			StrictValidation: getEnvAsBool("CHAT_STRICT_VALIDATION", false),
			RecommendLimit:   getEnvAsInt("RECOMMEND_LIMIT", 3),
			CatalogPath:      getEnv("CATALOG_PATH", "data/products.json"),
			FAQPath:          getEnv("FAQ_PATH", "data/faq.json"),
		},
		Session: SessionConfig{
			Store:    strings.ToLower(getEnv("SESSION_STORE", "memory")),
			TTL:      getEnvAsDuration("SESSION_TTL", 0),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			LeadTo:   getEnv("LEAD_TO_EMAIL", ""),
		},
		Ai: AIConfig{
			LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("30m", "24h") or plain seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
