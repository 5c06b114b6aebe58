package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/dto"
)

// RequireRoles gates a route on the loaded user's role. Two escape hatches
// mirror operational reality:
//  1. a matching X-Admin-Token header (config), used by internal tooling
//  2. an ADMIN_EMAILS entry, so the first admin can be bootstrapped before
//     any role has been assigned in the database
//
// Must run after LoadUser.
func RequireRoles(cfg *config.Config, roles ...string) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		user := CurrentUser(c)
		if user == nil {
			return dto.Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if contains(adminEmails, user.Email) {
			return c.Next()
		}
		if contains(roles, user.Role) {
			return c.Next()
		}

		return dto.Error(c, fiber.StatusForbidden,
			"Access denied. Insufficient role.")
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
