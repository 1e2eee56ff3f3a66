package controller

import (
	"fmt"
	"strings"

	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/dto"
	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/pkg/serverutils"
	"anilab-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	logger  logger.ILogger
	strict  bool
}

// NewChatbotController builds the chat endpoint. With strict set, an empty
// message is rejected with 400 instead of answered with a greeting.
func NewChatbotController(service service.IChatbotService, log logger.ILogger, strict bool) IChatbotController {
	return &chatbotController{service: service, logger: log, strict: strict}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) (err error) {
	var req dto.ChatRequest
	if perr := ctx.BodyParser(&req); perr != nil {
		// Unparseable bodies are treated as an empty message
		req = dto.ChatRequest{}
	}

	if c.strict {
		req.Message = strings.TrimSpace(req.Message)
		if verr := serverutils.ValidateRequest(req); verr != nil {
			if req.Message == "" {
				return fiber.NewError(fiber.StatusBadRequest, constant.ChatErrorMissingMessage)
			}
			return verr
		}
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(constant.LogModuleChat, "Panic while answering", map[string]interface{}{
				"session_id": req.SessionId,
				"error":      fmt.Sprint(r),
			})
			err = ctx.Status(fiber.StatusOK).JSON(dto.ChatResponse{Reply: constant.ChatApology})
		}
	}()

	res, rerr := c.service.Reply(ctx.UserContext(), &req, ctx.IP())
	if rerr != nil {
		c.logger.Error(constant.LogModuleChat, "Reply failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      rerr.Error(),
		})
		return ctx.JSON(dto.ChatResponse{Reply: constant.ChatApology})
	}

	return ctx.JSON(res)
}
