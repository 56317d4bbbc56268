package tasks

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
)

// Handler handles HTTP requests for tasks.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/p/tasks
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	filter := ListFilter{
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if completed := c.Query("completed"); completed != "" {
		v := completed == "true"
		filter.Completed = &v
	}

	list, err := h.service.List(userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch tasks",
		})
	}

	return c.JSON(fiber.Map{"tasks": list})
}

// Create handles POST /api/p/tasks
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var input TaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	task, err := h.service.Create(userID, input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

// Update handles PUT /api/p/tasks/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid task ID",
		})
	}

	var input TaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	task, err := h.service.Update(userID, taskID, input)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Task not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"task": task})
}

// Toggle handles PATCH /api/p/tasks/:id/toggle
func (h *Handler) Toggle(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid task ID",
		})
	}

	task, err := h.service.Toggle(userID, taskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Task not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to toggle task",
		})
	}

	return c.JSON(fiber.Map{"task": task})
}

// Delete handles DELETE /api/p/tasks/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid task ID",
		})
	}

	if err := h.service.Delete(userID, taskID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Task not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete task",
		})
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}
