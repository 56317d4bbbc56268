package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/authctx"
	"github.com/wellspringhq/wellspring-backend/internal/dto"
	"github.com/wellspringhq/wellspring-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	return c.JSON(profileResponse(&user))
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Pronouns != nil {
		updates["pronouns"] = *req.Pronouns
	}
	if req.Birthday != nil {
		if *req.Birthday == "" {
			updates["birthday"] = nil
		} else {
			day, err := time.Parse("2006-01-02", *req.Birthday)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error: true, Message: "Birthday must be YYYY-MM-DD",
				})
			}
			updates["birthday"] = day
		}
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}
	if req.Interests != nil {
		b, err := json.Marshal(*req.Interests)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid interests",
			})
		}
		updates["interests"] = datatypes.JSON(b)
	}

	if len(updates) > 0 {
		if err := h.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update profile",
			})
		}
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	return c.JSON(profileResponse(&user))
}

func profileResponse(user *models.User) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		Name:       user.Name,
		Gender:     user.Gender,
		Pronouns:   user.Pronouns,
		Bio:        user.Bio,
		Occupation: user.Occupation,
		Location:   user.Location,
		Timezone:   user.Timezone,
		Interests:  []string{},
	}
	if user.Birthday != nil {
		s := user.Birthday.Format("2006-01-02")
		resp.Birthday = &s
	}
	if len(user.Interests) > 0 {
		var interests []string
		if err := json.Unmarshal(user.Interests, &interests); err == nil {
			resp.Interests = interests
		}
	}
	return resp
}
