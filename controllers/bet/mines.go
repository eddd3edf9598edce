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

func minesStart(c *fiber.Ctx, profile *models.Profile, req *Request) error {
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

		// Mine cells stay server-side until the round resolves.
		state := models.MinesState{
			MineCount: req.MineCount,
			Mines:     generator.MinePositions(req.MineCount),
			Revealed:  []int{},
		}
		session, err := store.CreateSession(tx, p.ID, models.GameTypeMines, req.BetAmount, state)
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
		"mine_count":  req.MineCount,
		"new_balance": newBalance,
	})
}

func minesReveal(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	cell := *req.CellIndex

	var isMine bool
	var mines []int
	var revealedCount int
	var multiplier float64

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		session, err := store.FetchActive(tx, req.SessionID, p.ID, models.GameTypeMines)
		if err != nil {
			return err
		}
		state, err := session.MinesState()
		if err != nil {
			return err
		}

		if state.AlreadyRevealed(cell) {
			return helpers.ValidationError("Cell already revealed")
		}

		if state.IsMine(cell) {
			isMine = true
			mines = state.Mines
			revealedCount = len(state.Revealed)
			if err := store.Transition(tx, session, state, models.SessionLost); err != nil {
				return err
			}
			if err := wallet.SettleLoss(tx, p, session.BetAmount); err != nil {
				return err
			}
			return wallet.RecordBet(tx, p, models.GameTypeMines, session.BetAmount, 0, models.ResultLoss)
		}

		state.Revealed = append(state.Revealed, cell)
		if err := store.Transition(tx, session, state, models.SessionActive); err != nil {
			return err
		}
		revealedCount = len(state.Revealed)
		multiplier = games.MinesMultiplier(state.MineCount, revealedCount)
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	resp := fiber.Map{
		"is_mine":        isMine,
		"revealed_count": revealedCount,
		"multiplier":     multiplier,
	}
	if isMine {
		resp["mines"] = mines
	}
	return helpers.JSONSuccess(c, resp)
}

func minesCashout(c *fiber.Ctx, profile *models.Profile, req *Request) error {
	var winAmount, multiplier, newBalance float64
	var mines []int

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		session, err := store.FetchActive(tx, req.SessionID, p.ID, models.GameTypeMines)
		if err != nil {
			return err
		}
		state, err := session.MinesState()
		if err != nil {
			return err
		}

		if len(state.Revealed) == 0 {
			return helpers.ValidationError("No cells revealed")
		}

		multiplier = games.MinesMultiplier(state.MineCount, len(state.Revealed))
		winAmount = games.WinAmount(session.BetAmount, multiplier)
		mines = state.Mines

		if err := store.Transition(tx, session, state, models.SessionCompleted); err != nil {
			return err
		}
		if err := wallet.SettleWin(tx, p, session.BetAmount, winAmount); err != nil {
			return err
		}
		if err := wallet.RecordBet(tx, p, models.GameTypeMines, session.BetAmount, winAmount, models.ResultWin); err != nil {
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
		"multiplier":  multiplier,
		"mines":       mines,
		"new_balance": newBalance,
	})
}
