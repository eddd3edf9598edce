package bet

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/games"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
	"github.com/lolbd307-png/osamendibet25bd/wallet"
)

// dice is the only instantaneous game: bet, outcome and settlement happen in
// a single request with no session.
func dice(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	target := *req.Target
	isOver := *req.IsOver

	var roll, winAmount, newBalance float64
	var didWin bool
	multiplier := games.DiceMultiplier(target, isOver)

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		if err := wallet.PlaceBet(tx, p, req.BetAmount); err != nil {
			return err
		}

		roll = generator.DiceRoll()
		didWin = games.DiceWins(roll, target, isOver)

		result := models.ResultLoss
		if didWin {
			result = models.ResultWin
			winAmount = games.WinAmount(req.BetAmount, multiplier)
			if err := wallet.SettleWin(tx, p, req.BetAmount, winAmount); err != nil {
				return err
			}
		} else {
			if err := wallet.SettleLoss(tx, p, req.BetAmount); err != nil {
				return err
			}
		}

		if err := wallet.RecordBet(tx, p, models.GameTypeDice, req.BetAmount, winAmount, result); err != nil {
			return err
		}

		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"roll":        roll,
		"did_win":     didWin,
		"multiplier":  multiplier,
		"win_amount":  winAmount,
		"new_balance": newBalance,
	})
}
