package controller

import (
	"time"

	"anilab-chat-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Liveness(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	products int
	faq      bool
	now      func() time.Time
}

func NewHealthController(products int, faqLoaded bool) IHealthController {
	return &healthController{products: products, faq: faqLoaded, now: time.Now}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Liveness)
	r.Get("/health", c.Health)
}

func (c *healthController) Liveness(ctx *fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Ok:       true,
		Products: c.products,
		Faq:      c.faq,
		Time:     c.now().UTC().Format(time.RFC3339),
	})
}
