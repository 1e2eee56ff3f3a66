package handler

import (
	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/pkg/logger"
	internalWS "anilab-chat-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ChatSocketHandler exposes the chat assistant over a websocket. Each text
// frame is a chat request ({"message","sessionId"}) and is answered with one
// frame carrying {"reply"}.
type ChatSocketHandler struct {
	replier internalWS.Replier
	logger  logger.ILogger
}

func NewChatSocketHandler(replier internalWS.Replier, log logger.ILogger) *ChatSocketHandler {
	return &ChatSocketHandler{replier: replier, logger: log}
}

// ServeWs upgrades the request and runs the chat loop on the connection.
func (h *ChatSocketHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	// The peer address is gone once the connection is hijacked.
	fallbackKey := c.IP()

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Debug(constant.LogModuleChat, "WebSocket session started", map[string]interface{}{"remote": fallbackKey})
		internalWS.ServeChat(conn, h.replier, fallbackKey, h.logger)
		h.logger.Debug(constant.LogModuleChat, "WebSocket session ended", map[string]interface{}{"remote": fallbackKey})
	})(c)
}

func (h *ChatSocketHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/chat", h.ServeWs)
}
