package bootstrap

import (
	"context"
	"errors"

	"anilab-chat-be/internal/config"
	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/controller"
	"anilab-chat-be/internal/handler"
	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/pkg/mailer"
	"anilab-chat-be/internal/repository/contract"
	"anilab-chat-be/internal/repository/memory"
	redisrepo "anilab-chat-be/internal/repository/redis"
	"anilab-chat-be/internal/service"
	"anilab-chat-be/pkg/b2b"
	"anilab-chat-be/pkg/catalog"
	"anilab-chat-be/pkg/events"
	"anilab-chat-be/pkg/faq"
	"anilab-chat-be/pkg/intent"
	"anilab-chat-be/pkg/llm"
	"anilab-chat-be/pkg/llm/factory"
	pktNats "anilab-chat-be/pkg/nats"
	"anilab-chat-be/pkg/reply"
	"anilab-chat-be/pkg/taxonomy"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	HealthController  controller.IHealthController

	// Handlers
	ChatSocketHandler *handler.ChatSocketHandler

	Logger logger.ILogger

	closers []func()
}

// Close releases external connections opened by NewContainer.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// NewContainer wires every component. Optional collaborators that cannot be
// reached (catalog file, Redis, NATS, SMTP, completion API) are logged and
// replaced by their degraded form; construction itself never fails.
func NewContainer(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Static data
	products, err := catalog.LoadProducts(cfg.Chat.CatalogPath)
	if err != nil {
		sysLogger.Warn(constant.LogModuleCatalog, "Catalog not loaded, recommendations disabled", map[string]interface{}{
			"path":  cfg.Chat.CatalogPath,
			"error": err.Error(),
		})
	}
	faqConfig, err := catalog.LoadFAQ(cfg.Chat.FAQPath)
	if err != nil {
		sysLogger.Warn(constant.LogModuleCatalog, "FAQ not loaded, logistics answers fall back to support link", map[string]interface{}{
			"path":  cfg.Chat.FAQPath,
			"error": err.Error(),
		})
	}
	sysLogger.Info(constant.LogModuleCatalog, "Static data loaded", map[string]interface{}{
		"products": products.Len(),
		"faq":      faqConfig != nil,
	})

	// 2. Infrastructure
	sessionRepo := c.sessionRepository(ctx, cfg, sysLogger)
	llmProvider := completionProvider(cfg, sysLogger)
	publisher := c.eventPublisher(ctx, cfg, sysLogger)

	leadMailer := mailer.NewLeadMailer(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.LeadTo,
	})
	if !leadMailer.Enabled() {
		sysLogger.Warn(constant.LogModuleLead, "SMTP not fully configured, leads will not be mailed", nil)
	}

	// 3. Domain
	tax := taxonomy.Default()
	leadService := service.NewLeadService(leadMailer, publisher, sysLogger)

	contact := cfg.SMTP.LeadTo
	if contact == "" {
		contact = cfg.Chat.SupportURL
	}

	chatbotService := service.NewChatbotService(
		products,
		intent.NewClassifier(tax),
		faq.NewResolver(faqConfig, tax),
		b2b.NewDialogue(tax, leadService, contact),
		reply.NewPolisher(llmProvider),
		sessionRepo,
		sysLogger,
		service.ChatbotOptions{
			SupportURL:     cfg.Chat.SupportURL,
			RecommendLimit: cfg.Chat.RecommendLimit,
		},
	)

	// 4. Controllers
	c.ChatbotController = controller.NewChatbotController(chatbotService, sysLogger, cfg.Chat.StrictValidation)
	c.HealthController = controller.NewHealthController(products.Len(), faqConfig != nil)
	c.ChatSocketHandler = handler.NewChatSocketHandler(chatbotService, sysLogger)

	return c
}

func (c *Container) sessionRepository(ctx context.Context, cfg *config.Config, log logger.ILogger) contract.SessionRepository {
	if cfg.Session.Store == "redis" {
		rdb, err := redisrepo.Connect(ctx, cfg.Session.RedisURL)
		if err == nil {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
			log.Info(constant.LogModuleSession, "Using Redis session store", map[string]interface{}{"ttl": cfg.Session.TTL.String()})
			return redisrepo.NewSessionRepository(rdb, cfg.Session.TTL)
		}
		log.Warn(constant.LogModuleSession, "Redis unreachable, falling back to memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if cfg.Session.TTL <= 0 {
		log.Info(constant.LogModuleSession, "Memory sessions never expire, growth is unbounded", nil)
	}
	return memory.NewSessionRepository(cfg.Session.TTL)
}

func completionProvider(cfg *config.Config, log logger.ILogger) llm.LLMProvider {
	p, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		APIKey:        cfg.Ai.OpenAIKey,
		Model:         cfg.Ai.OpenAIModel,
		BaseURL:       cfg.Ai.OpenAIBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OllamaModel:   cfg.Ai.OllamaModel,
	})
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		log.Info(constant.LogModuleLLM, "No completion service configured, replies are not polished", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
		})
		return nil
	case err != nil:
		log.Warn(constant.LogModuleLLM, "Completion service disabled", map[string]interface{}{"error": err.Error()})
		return nil
	}

	log.Info(constant.LogModuleLLM, "Using completion service", map[string]interface{}{"provider": cfg.Ai.LLMProvider})
	return p
}

func (c *Container) eventPublisher(ctx context.Context, cfg *config.Config, log logger.ILogger) events.Publisher {
	if cfg.App.NatsURL == "" {
		return nil
	}

	pub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
	if err != nil {
		log.Warn(constant.LogModuleLead, "NATS unavailable, lead events disabled", map[string]interface{}{"error": err.Error()})
		return nil
	}
	c.closers = append(c.closers, pub.Close)
	return pub
}
