package insights

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the AI insights module.
type Plugin struct {
	coordinator *wellness.Coordinator
	gen         wellness.TextGenerator
}

func New(coordinator *wellness.Coordinator, gen wellness.TextGenerator) *Plugin {
	return &Plugin{coordinator: coordinator, gen: gen}
}

func (p *Plugin) ID() string { return "ai" }

// Models is empty: the module reads the other modules' tables and persists
// nothing of its own.
func (p *Plugin) Models() []interface{} {
	return nil
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(NewGatherer(db), p.coordinator, p.gen)
	handler := NewHandler(svc)

	router.Get("/ai/insights", handler.Insights)
	router.Get("/ai/prompts", handler.Prompts)
	router.Get("/ai/recommendations", handler.Recommendations)
}
