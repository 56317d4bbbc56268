package habits

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the habits module.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "habits" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Habit{}, &Tracking{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Get("/habits", handler.List)
	router.Post("/habits", handler.Create)
	router.Put("/habits/:id", handler.Update)
	router.Delete("/habits/:id", handler.Delete)
	router.Post("/habits/:id/mark", handler.Mark)
	router.Delete("/habits/:id/mark", handler.Unmark)
	router.Get("/habits/:id/stats", handler.Stats)
}
