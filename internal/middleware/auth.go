package middleware

import (
	"errors"
	"strconv"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/models"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// JWTProtected validates the bearer token signature and expiry. Expired
// tokens get a distinguished TOKEN_EXPIRED code so clients know to try the
// refresh endpoint instead of failing hard.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return dto.ErrorWithCode(c, fiber.StatusUnauthorized,
					"Access token has expired", "TOKEN_EXPIRED")
			}
			return dto.Error(c, fiber.StatusUnauthorized,
				"Access token is missing or invalid")
		},
	})
}

// LoadUser resolves the token subject to an active user row and stores it
// in locals. Must run after JWTProtected.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := TokenUserID(c)
		if err != nil {
			return dto.Error(c, fiber.StatusUnauthorized, "Invalid access token")
		}

		var user models.User
		if err := db.First(&user, "id = ? AND is_active = true", userID).Error; err != nil {
			return dto.Error(c, fiber.StatusUnauthorized, "User not found or inactive")
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// TokenUserID extracts the numeric subject from the validated JWT.
func TokenUserID(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid subject")
	}
	return uint(id), nil
}
