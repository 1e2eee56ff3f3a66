package websocket

import (
	"context"

	"anilab-chat-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

// ServeChat runs one chat connection until the peer goes away. Replies go out
// in the order the messages arrived.
func ServeChat(c *websocket.Conn, replier Replier, fallbackKey string, log logger.ILogger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &Client{
		Conn:        c,
		FallbackKey: fallbackKey,
		Send:        make(chan []byte, sendBuffer),
		replier:     replier,
		logger:      log,
	}

	done := make(chan struct{})
	go func() {
		client.writePump()
		cancel()
		close(done)
	}()
	client.readPump(ctx)
	<-done
}
