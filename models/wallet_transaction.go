package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TrxDeposit  = "deposit"
	TrxWithdraw = "withdraw"
)

type WalletTransaction struct {
	gorm.Model

	ProfileID     uint            `gorm:"index"`
	TrxType       string          `gorm:"size:16"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	RefID         string          `gorm:"size:64"`
}
