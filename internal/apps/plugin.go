package apps

import (
	"github.com/gofiber/fiber/v2"
)

// Plugin is implemented by every feature app (donation, volunteer, content
// modules). Apps own their models, services, and routes; main wires them.
type Plugin interface {
	// ID returns the app identifier used in logs.
	ID() string

	// Models returns the GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the app's routes. public is the /api group;
	// admin is the same group with JWT, user-loading, and role middleware
	// already applied.
	RegisterRoutes(public fiber.Router, admin fiber.Router)
}
