package bet

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/games"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
	"github.com/lolbd307-png/osamendibet25bd/store"
	"github.com/lolbd307-png/osamendibet25bd/wallet"
)

// crashStart debits the stake and commits the crash point server-side. The
// crash point is stored in the session, never returned at bet time.
func crashStart(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	var sessionID string
	var newBalance float64

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		if err := wallet.PlaceBet(tx, p, req.BetAmount); err != nil {
			return err
		}

		state := models.CrashState{CrashPoint: generator.CrashPoint()}
		session, err := store.CreateSession(tx, p.ID, models.GameTypeCrash, req.BetAmount, state)
		if err != nil {
			return err
		}

		sessionID = session.SID
		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"session_id":  sessionID,
		"new_balance": newBalance,
	})
}

func crashCashout(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	var winAmount, newBalance float64

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		session, err := store.FetchActive(tx, req.SessionID, p.ID, models.GameTypeCrash)
		if err != nil {
			return err
		}
		state, err := session.CrashState()
		if err != nil {
			return err
		}

		// The committed crash point is the hard ceiling: cashing out at or
		// above it means the round already crashed for this player.
		if req.Multiplier >= state.CrashPoint {
			return helpers.ValidationError("Cashout not available")
		}

		winAmount = games.WinAmount(session.BetAmount, req.Multiplier)
		state.CashoutMultiplier = req.Multiplier
		if err := store.Transition(tx, session, state, models.SessionCompleted); err != nil {
			return err
		}
		if err := wallet.SettleWin(tx, p, session.BetAmount, winAmount); err != nil {
			return err
		}
		if err := wallet.RecordBet(tx, p, models.GameTypeCrash, session.BetAmount, winAmount, models.ResultWin); err != nil {
			return err
		}

		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"win_amount":  winAmount,
		"new_balance": newBalance,
	})
}

func crashLost(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	var crashPoint, newBalance float64

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		session, err := store.FetchActive(tx, req.SessionID, p.ID, models.GameTypeCrash)
		if err != nil {
			return err
		}
		state, err := session.CrashState()
		if err != nil {
			return err
		}

		if err := store.Transition(tx, session, state, models.SessionCrashed); err != nil {
			return err
		}
		if err := wallet.SettleLoss(tx, p, session.BetAmount); err != nil {
			return err
		}
		if err := wallet.RecordBet(tx, p, models.GameTypeCrash, session.BetAmount, 0, models.ResultLoss); err != nil {
			return err
		}

		crashPoint = state.CrashPoint
		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"crash_point": crashPoint,
		"new_balance": newBalance,
	})
}
