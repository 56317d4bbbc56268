package habits

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
)

// Handler handles HTTP requests for habits.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/p/habits
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	list, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch habits",
		})
	}

	return c.JSON(fiber.Map{"habits": list})
}

// Create handles POST /api/p/habits
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Name      string `json:"name"`
		Icon      string `json:"icon"`
		Frequency string `json:"frequency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	habit, err := h.service.Create(userID, req.Name, req.Icon, req.Frequency)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"habit": habit})
}

// Update handles PUT /api/p/habits/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid habit ID",
		})
	}

	var req struct {
		Name      string `json:"name"`
		Icon      string `json:"icon"`
		Frequency string `json:"frequency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	habit, err := h.service.Update(userID, habitID, req.Name, req.Icon, req.Frequency)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Habit not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"habit": habit})
}

// Delete handles DELETE /api/p/habits/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid habit ID",
		})
	}

	if err := h.service.Delete(userID, habitID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Habit not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete habit",
		})
	}

	return c.JSON(fiber.Map{"message": "Habit deleted"})
}

// Mark handles POST /api/p/habits/:id/mark
func (h *Handler) Mark(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid habit ID",
		})
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	if err := h.service.Mark(userID, habitID, req.Date); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Habit not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Day marked successfully",
		"habitId": habitID,
		"date":    req.Date,
	})
}

// Unmark handles DELETE /api/p/habits/:id/mark
func (h *Handler) Unmark(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid habit ID",
		})
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	if err := h.service.Unmark(userID, habitID, req.Date); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Habit not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Day unmarked successfully",
		"habitId": habitID,
		"date":    req.Date,
	})
}

// Stats handles GET /api/p/habits/:id/stats
func (h *Handler) Stats(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid habit ID",
		})
	}

	stats, err := h.service.Stats(userID, habitID)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Habit not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch habit statistics",
		})
	}

	return c.JSON(stats)
}
