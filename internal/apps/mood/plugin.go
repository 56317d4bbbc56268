package mood

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/apps/insights"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"github.com/wellspringhq/wellspring-backend/internal/wellness"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the mood module.
type Plugin struct {
	coordinator *wellness.Coordinator
}

func New(coordinator *wellness.Coordinator) *Plugin {
	return &Plugin{coordinator: coordinator}
}

func (p *Plugin) ID() string { return "mood" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&Entry{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, insights.NewGatherer(db), p.coordinator)
	handler := NewHandler(svc)

	router.Get("/mood/today", handler.Today)
	router.Get("/mood/stats", handler.Stats)
	router.Get("/mood/trends", handler.Trends)
	router.Get("/mood/insights", handler.Insights)
	router.Post("/mood", handler.Save)
	router.Delete("/mood/:date", handler.Delete)
}
