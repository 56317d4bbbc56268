package insights

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
)

// Handler handles HTTP requests for AI insights.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Insights handles GET /api/p/ai/insights
func (h *Handler) Insights(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	items, source, dataPoints, err := h.service.Insights(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to generate insights",
		})
	}

	return c.JSON(fiber.Map{
		"insights":   items,
		"source":     source,
		"dataPoints": dataPoints,
	})
}

// Prompts handles GET /api/p/ai/prompts
func (h *Handler) Prompts(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	prompts, err := h.service.Prompts(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to generate daily prompts",
		})
	}

	return c.JSON(fiber.Map{"prompts": prompts})
}

// Recommendations handles GET /api/p/ai/recommendations
func (h *Handler) Recommendations(c *fiber.Ctx) error {
	if _, err := authctx.GetUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	return c.JSON(fiber.Map{
		"recommendations": h.service.Recommendations(c.Query("mood")),
	})
}
