package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
	"github.com/lolbd307-png/osamendibet25bd/wallet"
)

type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// Deposit credits the wallet and feeds the cumulative-deposit counter the
// referral rules check. Payment gateway confirmation happens upstream.
func Deposit(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.Profile)
	if !ok {
		return helpers.JSONError(c, helpers.ErrUnauthorized)
	}

	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, helpers.ValidationError("Invalid JSON body"))
	}
	if req.Amount <= 0 {
		return helpers.JSONError(c, helpers.ValidationError("Invalid amount"))
	}

	var newBalance float64
	refID := uuid.New().String()

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		before := p.Balance
		if err := wallet.CreditDeposit(tx, p, req.Amount); err != nil {
			return err
		}
		trx := models.WalletTransaction{
			ProfileID:     p.ID,
			TrxType:       models.TrxDeposit,
			Amount:        decimal.NewFromFloat(req.Amount),
			BalanceBefore: before,
			BalanceAfter:  p.Balance,
			RefID:         refID,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"new_balance": newBalance,
		"ref_id":      refID,
	})
}

func Withdraw(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.Profile)
	if !ok {
		return helpers.JSONError(c, helpers.ErrUnauthorized)
	}

	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, helpers.ValidationError("Invalid JSON body"))
	}
	if req.Amount <= 0 {
		return helpers.JSONError(c, helpers.ValidationError("Invalid amount"))
	}

	var newBalance float64
	refID := uuid.New().String()

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}
		before := p.Balance
		if err := wallet.Withdraw(tx, p, req.Amount); err != nil {
			return err
		}
		trx := models.WalletTransaction{
			ProfileID:     p.ID,
			TrxType:       models.TrxWithdraw,
			Amount:        decimal.NewFromFloat(req.Amount),
			BalanceBefore: before,
			BalanceAfter:  p.Balance,
			RefID:         refID,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"new_balance": newBalance,
		"ref_id":      refID,
	})
}
