package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/dto"
	"anilab-chat-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024 * 1024
	sendBuffer     = 16
)

// Replier answers one chat turn. It is satisfied by service.IChatbotService.
type Replier interface {
	Reply(ctx context.Context, req *dto.ChatRequest, fallbackKey string) (*dto.ChatResponse, error)
}

// Client is a middleman between the websocket connection and the chat service.
type Client struct {
	Conn *websocket.Conn

	// FallbackKey identifies the conversation when a frame carries no sessionId.
	FallbackKey string

	// Buffered channel of outbound frames.
	Send chan []byte

	replier Replier
	logger  logger.ILogger
}

// readPump reads chat frames and answers them in arrival order.
func (c *Client) readPump(ctx context.Context) {
	defer close(c.Send)

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Warn(constant.LogModuleChat, "WebSocket read failed", map[string]interface{}{"error": err.Error()})
			}
			return
		}

		out, err := json.Marshal(c.answer(ctx, raw))
		if err != nil {
			continue
		}
		select {
		case c.Send <- out:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) answer(ctx context.Context, raw []byte) (res *dto.ChatResponse) {
	var req dto.ChatRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		req = dto.ChatRequest{}
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(constant.LogModuleChat, "Panic while answering", map[string]interface{}{
				"session_id": req.SessionId,
				"error":      fmt.Sprint(r),
			})
			res = &dto.ChatResponse{Reply: constant.ChatApology}
		}
	}()

	res, err := c.replier.Reply(ctx, &req, c.FallbackKey)
	if err != nil || res == nil {
		details := map[string]interface{}{"session_id": req.SessionId}
		if err != nil {
			details["error"] = err.Error()
		}
		c.logger.Error(constant.LogModuleChat, "Reply failed", details)
		return &dto.ChatResponse{Reply: constant.ChatApology}
	}
	return res
}

// writePump pumps replies to the websocket connection and keeps it alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Warn(constant.LogModuleChat, "WebSocket write failed", map[string]interface{}{"error": err.Error()})
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
