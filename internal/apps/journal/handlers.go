package journal

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
)

// Handler handles HTTP requests for journal entries.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/p/journal
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	entries, err := h.service.List(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch journal entries",
		})
	}

	return c.JSON(fiber.Map{"journals": entries})
}

// Search handles GET /api/p/journal/search
func (h *Handler) Search(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	filter := SearchFilter{
		Query:     c.Query("q"),
		Emotion:   c.Query("emotion"),
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	entries, err := h.service.Search(userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to search journal entries",
		})
	}

	return c.JSON(fiber.Map{"journals": entries, "count": len(entries)})
}

// Get handles GET /api/p/journal/:id
func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid entry ID",
		})
	}

	entry, err := h.service.Get(userID, entryID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": "Journal entry not found",
		})
	}

	return c.JSON(fiber.Map{"journal": entry})
}

// Create handles POST /api/p/journal
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	var req struct {
		Title       string  `json:"title"`
		Content     string  `json:"content"`
		Emotion     string  `json:"emotion"`
		Probability float64 `json:"probability"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.Create(userID, req.Title, req.Content, req.Emotion, req.Probability)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"journal": entry})
}

// Update handles PUT /api/p/journal/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid entry ID",
		})
	}

	var req struct {
		Title       string  `json:"title"`
		Content     string  `json:"content"`
		Emotion     string  `json:"emotion"`
		Probability float64 `json:"probability"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.Update(userID, entryID, req.Title, req.Content, req.Emotion, req.Probability)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Journal entry not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"journal": entry})
}

// Delete handles DELETE /api/p/journal/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid entry ID",
		})
	}

	if err := h.service.Delete(userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "Journal entry not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete journal entry",
		})
	}

	return c.JSON(fiber.Map{"message": "Journal entry deleted"})
}
