package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lolbd307-png/osamendibet25bd/config"
	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

// UserAuth verifies the bearer token and loads the caller's profile into
// c.Locals("profile"). Banned accounts are rejected here, before any game
// handler runs.
func UserAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}

		claims, err := helpers.ParseToken(parts[1], cfg.JWTSecret)
		if err != nil {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}

		var profile models.Profile
		if err := database.DB.First(&profile, claims.ProfileID).Error; err != nil {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}
		if profile.IsBanned {
			return helpers.JSONError(c, helpers.ErrForbidden)
		}

		c.Locals("profile", profile)
		return c.Next()
	}
}
