// Package bet implements the wager settlement engine: one authenticated
// endpoint that classifies the requested action, draws the outcome and
// settles the player's ledger, history and game session in one transaction.
package bet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolbd307-png/osamendibet25bd/games"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

var generator = games.NewGenerator()

// PlaceBet is the single settlement entry point. The auth middleware has
// already rejected unknown identities and banned profiles; everything else
// is routed here by the action discriminator.
func PlaceBet(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.Profile)
	if !ok {
		return helpers.JSONError(c, helpers.ErrUnauthorized)
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, helpers.ValidationError("Invalid JSON body"))
	}

	if err := req.Validate(); err != nil {
		return helpers.JSONError(c, err)
	}

	switch req.Action {
	case ActionCrashStart:
		return crashStart(c, &profile, &req)
	case ActionCrashCashout:
		return crashCashout(c, &profile, &req)
	case ActionCrashLost:
		return crashLost(c, &profile, &req)
	case ActionDice:
		return dice(c, &profile, &req)
	case ActionMinesStart:
		return minesStart(c, &profile, &req)
	case ActionMinesReveal:
		return minesReveal(c, &profile, &req)
	case ActionMinesCashout:
		return minesCashout(c, &profile, &req)
	case ActionDailyBonus:
		return dailyBonus(c, &profile)
	case ActionClaimReferral:
		return claimReferral(c, &profile)
	default:
		return helpers.JSONError(c, helpers.ErrInvalidAction)
	}
}
