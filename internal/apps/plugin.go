package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature module must implement.
type Plugin interface {
	// ID returns the unique module identifier used as the route prefix.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts module-specific routes on the given Fiber group.
	// The group is already prefixed with /api/p and has JWT middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
