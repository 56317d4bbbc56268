package mood

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
)

// Handler handles HTTP requests for mood entries.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Save handles POST /api/p/mood
func (h *Handler) Save(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Emotion string `json:"emotion"`
		Score   int    `json:"score"`
		Note    string `json:"note"`
		Date    string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.Save(userID, req.Emotion, req.Score, req.Note, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"mood":    entry,
		"message": "Mood saved successfully",
	})
}

// Today handles GET /api/p/mood/today
func (h *Handler) Today(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	resp, err := h.service.Today(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch today's mood",
		})
	}

	return c.JSON(resp)
}

// Delete handles DELETE /api/p/mood/:date
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	if err := h.service.Delete(userID, c.Params("date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Mood deleted successfully",
	})
}

// Stats handles GET /api/p/mood/stats
func (h *Handler) Stats(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	stats, err := h.service.Stats(userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch mood statistics",
		})
	}

	return c.JSON(stats)
}

// Trends handles GET /api/p/mood/trends
func (h *Handler) Trends(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	trends, err := h.service.Trends(userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch mood trends",
		})
	}

	return c.JSON(trends)
}

// Insights handles GET /api/p/mood/insights
func (h *Handler) Insights(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	items, source, err := h.service.Insights(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to generate insights",
		})
	}

	return c.JSON(fiber.Map{
		"insights": items,
		"source":   source,
	})
}
