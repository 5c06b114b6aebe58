package volunteer

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestApplicationRouteIsPublicAtApply(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	admin := api.Group("/admin")

	New(nil).RegisterRoutes(api, admin)

	var postPaths []string
	for _, r := range app.GetRoutes() {
		if r.Method == fiber.MethodPost {
			postPaths = append(postPaths, r.Path)
		}
	}

	// The public application endpoint lives at /apply; management posts
	// stay under the admin group.
	assert.Contains(t, postPaths, "/api/volunteer/apply")
	assert.Contains(t, postPaths, "/api/admin/volunteer/:id/certificates")
	assert.NotContains(t, postPaths, "/api/volunteer/")
}
