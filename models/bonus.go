package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DailyBonusClaim struct {
	gorm.Model

	ProfileID uint            `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
}

// ReferralClaim records a paid-out referral. The unique index on
// (referrer_id, referred_id) is what makes a pair claimable at most once.
type ReferralClaim struct {
	gorm.Model

	ReferrerID uint            `gorm:"index;uniqueIndex:idx_referrer_referred"`
	ReferredID uint            `gorm:"uniqueIndex:idx_referrer_referred"`
	Bonus      decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
}
