package journal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the journal module.
type Plugin struct{}

func New() *Plugin { return &Plugin{} }

func (p *Plugin) ID() string { return "journal" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Entry{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Get("/journal/search", handler.Search)
	router.Get("/journal", handler.List)
	router.Get("/journal/:id", handler.Get)
	router.Post("/journal", handler.Create)
	router.Put("/journal/:id", handler.Update)
	router.Delete("/journal/:id", handler.Delete)
}
