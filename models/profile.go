package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	gorm.Model

	Phone        string `gorm:"uniqueIndex;size:32" json:"phone"`
	PasswordHash string `gorm:"size:128" json:"-"`

	Balance       float64 `json:"balance"`
	Turnover      float64 `json:"turnover"`
	TotalEarnings float64 `json:"total_earnings"`
	TotalLoss     float64 `json:"total_loss"`
	BonusBalance  float64 `json:"bonus_balance"`
	ReferralBonus float64 `json:"referral_bonus"`
	TotalDeposits float64 `json:"total_deposits"`

	ReferralCode string `gorm:"uniqueIndex;size:12" json:"referral_code"`
	ReferredBy   string `gorm:"index;size:12" json:"referred_by"`
	IsBanned     bool   `gorm:"default:false" json:"is_banned"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ReferralCode == "" {
		p.ReferralCode = NewReferralCode()
	}
	return nil
}

// NewReferralCode returns a short uppercase code handed out at registration.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
