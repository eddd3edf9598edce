package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/lolbd307-png/osamendibet25bd/config"
	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

type RegisterRequest struct {
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	ReferredBy string `json:"referred_by"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func Register(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, helpers.ValidationError("Invalid JSON body"))
		}

		phone := strings.TrimSpace(req.Phone)
		if phone == "" || len(req.Password) < 6 {
			return helpers.JSONError(c, helpers.ValidationError("Phone and password required"))
		}

		var existing models.Profile
		if err := database.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
			return helpers.JSONError(c, helpers.ValidationError("Account already exists"))
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helpers.JSONError(c, err)
		}

		profile := models.Profile{
			Phone:        phone,
			PasswordHash: string(hash),
			ReferredBy:   strings.ToUpper(strings.TrimSpace(req.ReferredBy)),
		}
		if err := database.DB.Create(&profile).Error; err != nil {
			return helpers.JSONError(c, err)
		}

		token, err := helpers.GenerateToken(profile.ID, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			return helpers.JSONError(c, err)
		}

		return helpers.JSONSuccess(c, fiber.Map{
			"token":         token,
			"referral_code": profile.ReferralCode,
		})
	}
}

func Login(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, helpers.ValidationError("Invalid JSON body"))
		}

		var profile models.Profile
		if err := database.DB.Where("phone = ?", strings.TrimSpace(req.Phone)).First(&profile).Error; err != nil {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}
		if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
			return helpers.JSONError(c, helpers.ErrUnauthorized)
		}
		if profile.IsBanned {
			return helpers.JSONError(c, helpers.ErrForbidden)
		}

		token, err := helpers.GenerateToken(profile.ID, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			return helpers.JSONError(c, err)
		}

		return helpers.JSONSuccess(c, fiber.Map{"token": token})
	}
}
