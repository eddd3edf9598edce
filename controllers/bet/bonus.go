package bet

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
	"github.com/lolbd307-png/osamendibet25bd/wallet"
)

const (
	dailyBonusAmount   = 50.0
	referralBonus      = 100.0
	minReferralDeposit = 100.0
	maxReferralClaims  = 50
)

func dailyBonus(c *fiber.Ctx, profile *models.Profile) error {
	var newBalance float64

	err := database.WithTx(func(tx *gorm.DB) error {
		p, err := wallet.LockProfile(tx, profile.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		var existing models.DailyBonusClaim
		err = tx.Where("profile_id = ? AND created_at >= ?", p.ID, startOfDay).
			First(&existing).Error
		if err == nil {
			return helpers.ErrAlreadyClaimed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		claim := models.DailyBonusClaim{
			ProfileID: p.ID,
			Amount:    decimal.NewFromFloat(dailyBonusAmount),
		}
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}
		if err := wallet.CreditDailyBonus(tx, p, dailyBonusAmount); err != nil {
			return err
		}

		newBalance = p.Balance
		return nil
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{
		"bonus":       dailyBonusAmount,
		"new_balance": newBalance,
	})
}

// claimReferral pays the referrer of the calling user. The caller's own
// balance is untouched; the anti-abuse guards run in claim order so the
// cheapest rejections come first.
func claimReferral(c *fiber.Ctx, profile *models.Profile) error {
	err := database.WithTx(func(tx *gorm.DB) error {
		// resolve both parties before taking any row lock
		var claimer models.Profile
		if err := tx.First(&claimer, profile.ID).Error; err != nil {
			return err
		}

		if claimer.ReferredBy == "" {
			return helpers.ValidationError("No referral found")
		}
		if claimer.ReferredBy == claimer.ReferralCode {
			return helpers.ErrSelfReferral
		}

		var referrer models.Profile
		err := tx.Where("referral_code = ?", claimer.ReferredBy).First(&referrer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.ValidationError("Referrer not found")
		}
		if err != nil {
			return err
		}
		if referrer.ID == claimer.ID {
			return helpers.ErrSelfReferral
		}

		// Lock both profile rows in ascending id order so two users who
		// referred each other cannot deadlock by claiming concurrently.
		firstID, secondID := claimer.ID, referrer.ID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		lockedFirst, err := wallet.LockProfile(tx, firstID)
		if err != nil {
			return err
		}
		lockedSecond, err := wallet.LockProfile(tx, secondID)
		if err != nil {
			return err
		}
		lockedClaimer, lockedReferrer := lockedFirst, lockedSecond
		if lockedFirst.ID != claimer.ID {
			lockedClaimer, lockedReferrer = lockedSecond, lockedFirst
		}

		var existing models.ReferralClaim
		err = tx.Where("referrer_id = ? AND referred_id = ?", referrer.ID, claimer.ID).
			First(&existing).Error
		if err == nil {
			return helpers.ErrAlreadyClaimed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if lockedClaimer.TotalDeposits < minReferralDeposit {
			return helpers.ErrMinimumDeposit
		}

		var claimCount int64
		if err := tx.Model(&models.ReferralClaim{}).
			Where("referrer_id = ?", referrer.ID).Count(&claimCount).Error; err != nil {
			return err
		}
		if claimCount >= maxReferralClaims {
			return helpers.ErrReferralLimit
		}

		if err := wallet.CreditReferral(tx, lockedReferrer, referralBonus); err != nil {
			return err
		}

		claim := models.ReferralClaim{
			ReferrerID: referrer.ID,
			ReferredID: claimer.ID,
			Bonus:      decimal.NewFromFloat(referralBonus),
		}
		return tx.Create(&claim).Error
	})
	if err != nil {
		return helpers.JSONError(c, err)
	}

	return helpers.JSONSuccess(c, fiber.Map{"bonus": referralBonus})
}
