package tasks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the tasks module.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "tasks" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Task{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Get("/tasks", handler.List)
	router.Post("/tasks", handler.Create)
	router.Put("/tasks/:id", handler.Update)
	router.Patch("/tasks/:id/toggle", handler.Toggle)
	router.Delete("/tasks/:id", handler.Delete)
}
