package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// BetHistoryRecord is append-only: one row per resolved wager, written in the
// same transaction as the balance update.
type BetHistoryRecord struct {
	gorm.Model

	ProfileID uint            `gorm:"index" json:"-"`
	GameType  string          `gorm:"size:16;index" json:"game_type"`
	BetAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"bet_amount"`
	WinAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"win_amount"`
	Result    string          `gorm:"size:8;index" json:"result"`
}
