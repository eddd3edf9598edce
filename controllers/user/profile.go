package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

func GetProfile(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.Profile)
	if !ok {
		return helpers.JSONError(c, helpers.ErrUnauthorized)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"phone":          profile.Phone,
		"balance":        profile.Balance,
		"turnover":       profile.Turnover,
		"total_earnings": profile.TotalEarnings,
		"total_loss":     profile.TotalLoss,
		"bonus_balance":  profile.BonusBalance,
		"referral_bonus": profile.ReferralBonus,
		"total_deposits": profile.TotalDeposits,
		"referral_code":  profile.ReferralCode,
	})
}

func GetBetHistory(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.Profile)
	if !ok {
		return helpers.JSONError(c, helpers.ErrUnauthorized)
	}

	var records []models.BetHistoryRecord
	if err := database.DB.
		Where("profile_id = ?", profile.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&records).Error; err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{"history": records})
}
