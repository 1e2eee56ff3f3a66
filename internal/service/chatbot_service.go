package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/dto"
	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/repository/contract"
	"anilab-chat-be/pkg/b2b"
	"anilab-chat-be/pkg/catalog"
	"anilab-chat-be/pkg/faq"
	"anilab-chat-be/pkg/intent"
	"anilab-chat-be/pkg/reply"
	"anilab-chat-be/pkg/store"
	"anilab-chat-be/pkg/taxonomy"
	"anilab-chat-be/pkg/textnorm"
)

const anonymousSession = "anonymous"

// MaxMessageRunes caps how much of one message is kept and matched.
// Longer input is cut, not rejected.
const MaxMessageRunes = 2000

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	// Reply answers one user message. fallbackKey identifies the session when
	// the request carries no sessionId (usually the client IP).
	Reply(ctx context.Context, request *dto.ChatRequest, fallbackKey string) (*dto.ChatResponse, error)
}

type ChatbotOptions struct {
	SupportURL     string
	RecommendLimit int
}

type chatbotService struct {
	catalog    *catalog.Catalog
	classifier *intent.Classifier
	faq        *faq.Resolver
	dialogue   *b2b.Dialogue
	polisher   *reply.Polisher
	sessions   contract.SessionRepository
	logger     logger.ILogger

	supportURL string
	limit      int
	now        func() time.Time
}

func NewChatbotService(
	cat *catalog.Catalog,
	classifier *intent.Classifier,
	faqResolver *faq.Resolver,
	dialogue *b2b.Dialogue,
	polisher *reply.Polisher,
	sessions contract.SessionRepository,
	log logger.ILogger,
	opts ChatbotOptions,
) IChatbotService {
	if opts.RecommendLimit <= 0 {
		opts.RecommendLimit = catalog.DefaultLimit
	}
	return &chatbotService{
		catalog:    cat,
		classifier: classifier,
		faq:        faqResolver,
		dialogue:   dialogue,
		polisher:   polisher,
		sessions:   sessions,
		logger:     log,
		supportURL: opts.SupportURL,
		limit:      opts.RecommendLimit,
		now:        time.Now,
	}
}

func (cs *chatbotService) Reply(ctx context.Context, request *dto.ChatRequest, fallbackKey string) (*dto.ChatResponse, error) {
	raw := truncateRunes(strings.TrimSpace(request.Message), MaxMessageRunes)
	if raw == "" {
		return &dto.ChatResponse{Reply: constant.ChatGreeting}, nil
	}

	sess := cs.loadSession(ctx, sessionKey(request.SessionId, fallbackKey))
	sess.AppendHistory(raw)
	norm := textnorm.Normalize(raw)

	var text string
	if sess.B2B.Active || cs.dialogue.Triggered(norm) {
		text = cs.handleB2B(ctx, sess, raw)
	} else {
		text = cs.handleShop(ctx, sess, raw, norm)
	}

	sess.UpdatedAt = cs.now()
	if err := cs.sessions.Save(ctx, sess); err != nil {
		cs.logger.Error(constant.LogModuleSession, "Failed to save session", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}

	return &dto.ChatResponse{Reply: text}, nil
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func sessionKey(sessionID, fallbackKey string) string {
	if id := strings.TrimSpace(sessionID); id != "" {
		return id
	}
	if fallbackKey != "" {
		return fallbackKey
	}
	return anonymousSession
}

// loadSession never fails: a broken store degrades to a fresh session.
func (cs *chatbotService) loadSession(ctx context.Context, key string) *store.Session {
	sess, err := cs.sessions.Get(ctx, key)
	if err != nil {
		cs.logger.Warn(constant.LogModuleSession, "Session lookup failed, starting fresh", map[string]interface{}{
			"session_id": key,
			"error":      err.Error(),
		})
	}
	if sess == nil {
		sess = store.NewSession(key)
	}
	return sess
}

func (cs *chatbotService) handleB2B(ctx context.Context, sess *store.Session, raw string) string {
	step := sess.B2B.Step
	res := cs.dialogue.Handle(ctx, &sess.B2B, raw, sess.History)

	details := map[string]interface{}{
		"session_id": sess.ID,
		"from_step":  step,
		"to_step":    sess.B2B.Step,
	}
	if res.Dispatched {
		details["lead_id"] = res.Lead.ID
		if res.DispatchErr != nil {
			details["error"] = res.DispatchErr.Error()
			cs.logger.Error(constant.LogModuleB2B, "Lead dispatch failed", details)
		} else {
			cs.logger.Info(constant.LogModuleB2B, "Lead dispatched", details)
		}
	} else {
		cs.logger.Debug(constant.LogModuleB2B, "Dialogue advanced", details)
	}

	return res.Reply
}

func (cs *chatbotService) handleShop(ctx context.Context, sess *store.Session, raw, norm string) string {
	if g, ok := cs.classifier.ExtractGoal(norm); ok {
		sess.LastGoal = string(g)
	}
	if f, ok := cs.classifier.ExtractFormat(norm); ok {
		sess.PreferredFormat = string(f)
	}

	in := cs.classifier.Classify(norm)
	sess.LastIntent = string(in)

	if in == intent.OrderHelp {
		return cs.orderHelp(sess, norm)
	}

	if in == intent.General && cs.polisher.Enabled() {
		answer, err := cs.polisher.Answer(ctx, raw)
		if err == nil {
			return answer
		}
		cs.logger.Warn(constant.LogModuleLLM, "Free-form answer failed, using draft", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}

	draft := cs.buildDraft(sess, in, norm)
	return cs.polisher.Polish(ctx, draft)
}

// orderHelp answers logistics questions from the FAQ config only.
func (cs *chatbotService) orderHelp(sess *store.Session, norm string) string {
	if answer, ok := cs.faq.Resolve(norm); ok {
		cs.logger.Debug(constant.LogModuleChat, "FAQ answered", map[string]interface{}{"session_id": sess.ID})
		return answer
	}
	return fmt.Sprintf(constant.ChatOrderHelpFallback, cs.supportURL)
}

func (cs *chatbotService) buildDraft(sess *store.Session, in intent.Intent, norm string) reply.Draft {
	goal := taxonomy.Goal(sess.LastGoal)
	format := taxonomy.Format(sess.PreferredFormat)

	products := cs.catalog.Pick(catalog.ScoreContext{Message: norm, Goal: goal, Format: format}, cs.limit)

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	cs.logger.Debug(constant.LogModuleChat, "Products picked", map[string]interface{}{
		"session_id": sess.ID,
		"intent":     string(in),
		"goal":       sess.LastGoal,
		"format":     sess.PreferredFormat,
		"products":   ids,
	})

	d := reply.Draft{
		Intro:    intro(in, goal, format, products),
		Products: products,
		Closing:  constant.ChatClosing,
	}

	if goal == "" && format == "" && !sess.AskedOnce {
		d.Question = constant.ChatClarifyingQuestion
		sess.AskedOnce = true
	}
	return d
}

func intro(in intent.Intent, goal taxonomy.Goal, format taxonomy.Format, products []catalog.Product) string {
	if len(products) == 0 {
		return constant.ChatIntroNoProducts
	}
	if s := constant.GoalIntro(goal); s != "" {
		return s
	}
	if s := constant.FormatIntro(format); s != "" {
		return s
	}
	if in == intent.ProductSearch {
		return constant.ChatIntroProduct
	}
	return constant.ChatIntroDefault
}
