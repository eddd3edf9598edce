// Package wallet owns every mutation of a profile's monetary fields. All
// functions operate on a profile row already locked FOR UPDATE inside the
// caller's transaction, so a resolved wager (balance, stat fields, history
// row) commits or rolls back as one unit.
package wallet

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lolbd307-png/osamendibet25bd/helpers"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

// LockProfile fetches the profile row FOR UPDATE. Concurrent settlements for
// the same user serialize here.
func LockProfile(tx *gorm.DB, profileID uint) (*models.Profile, error) {
	var profile models.Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, profileID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// PlaceBet debits the stake and counts it toward turnover. Fails without
// writing when the stake exceeds the current balance.
func PlaceBet(tx *gorm.DB, p *models.Profile, bet float64) error {
	if bet > p.Balance {
		return helpers.ErrInsufficientBalance
	}
	p.Balance = round2(p.Balance - bet)
	p.Turnover = round2(p.Turnover + bet)
	return tx.Save(p).Error
}

// SettleWin credits the win amount and books the net profit.
func SettleWin(tx *gorm.DB, p *models.Profile, bet, win float64) error {
	p.Balance = round2(p.Balance + win)
	p.TotalEarnings = round2(p.TotalEarnings + (win - bet))
	return tx.Save(p).Error
}

// SettleLoss books the stake as a loss. The stake itself was already
// debited at bet placement.
func SettleLoss(tx *gorm.DB, p *models.Profile, bet float64) error {
	p.TotalLoss = round2(p.TotalLoss + bet)
	return tx.Save(p).Error
}

// CreditDailyBonus adds the daily bonus to both the balance and the
// lifetime bonus counter.
func CreditDailyBonus(tx *gorm.DB, p *models.Profile, amount float64) error {
	p.Balance = round2(p.Balance + amount)
	p.BonusBalance = round2(p.BonusBalance + amount)
	return tx.Save(p).Error
}

// CreditReferral pays a referral bonus to the referrer's profile.
func CreditReferral(tx *gorm.DB, p *models.Profile, amount float64) error {
	p.Balance = round2(p.Balance + amount)
	p.ReferralBonus = round2(p.ReferralBonus + amount)
	return tx.Save(p).Error
}

// CreditDeposit adds a confirmed deposit and tracks the cumulative total
// the referral rules check against.
func CreditDeposit(tx *gorm.DB, p *models.Profile, amount float64) error {
	p.Balance = round2(p.Balance + amount)
	p.TotalDeposits = round2(p.TotalDeposits + amount)
	return tx.Save(p).Error
}

// Withdraw is a conditional debit with no turnover side effect.
func Withdraw(tx *gorm.DB, p *models.Profile, amount float64) error {
	if amount > p.Balance {
		return helpers.ErrInsufficientBalance
	}
	p.Balance = round2(p.Balance - amount)
	return tx.Save(p).Error
}

// RecordBet appends the history row for a resolved wager.
func RecordBet(tx *gorm.DB, p *models.Profile, gameType string, bet, win float64, result string) error {
	record := models.BetHistoryRecord{
		ProfileID: p.ID,
		GameType:  gameType,
		BetAmount: decimal.NewFromFloat(bet),
		WinAmount: decimal.NewFromFloat(win),
		Result:    result,
	}
	return tx.Create(&record).Error
}

func round2(v float64) float64 {
	return helpers.FormatFloat(v, 2)
}
