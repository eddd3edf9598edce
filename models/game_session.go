package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	GameTypeCrash = "crash"
	GameTypeMines = "mines"
	GameTypeDice  = "dice"
)

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionCrashed   = "crashed"
	SessionLost      = "lost"
)

type GameSession struct {
	gorm.Model

	SID       string         `gorm:"size:36;uniqueIndex;not null" json:"session_id"`
	ProfileID uint           `gorm:"index" json:"-"`
	GameType  string         `gorm:"size:16;index" json:"game_type"`
	BetAmount float64        `json:"bet_amount"`
	State     datatypes.JSON `json:"-"`
	Status    string         `gorm:"size:16;index;default:active" json:"status"`
}

func (s *GameSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.SID == "" {
		s.SID = strings.ToLower(uuid.New().String())
	}
	return nil
}

// CrashState is the server-held outcome of a crash round. The crash point is
// committed at bet time and never sent to the client until the round resolves.
type CrashState struct {
	CrashPoint        float64 `json:"crash_point"`
	CashoutMultiplier float64 `json:"cashout_multiplier,omitempty"`
}

type MinesState struct {
	MineCount int   `json:"mine_count"`
	Mines     []int `json:"mines"`
	Revealed  []int `json:"revealed"`
}

func (s *MinesState) IsMine(cell int) bool {
	for _, m := range s.Mines {
		if m == cell {
			return true
		}
	}
	return false
}

func (s *MinesState) AlreadyRevealed(cell int) bool {
	for _, r := range s.Revealed {
		if r == cell {
			return true
		}
	}
	return false
}

func (s *GameSession) SetState(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.State = datatypes.JSON(raw)
	return nil
}

func (s *GameSession) CrashState() (CrashState, error) {
	var st CrashState
	err := json.Unmarshal(s.State, &st)
	return st, err
}

func (s *GameSession) MinesState() (MinesState, error) {
	var st MinesState
	err := json.Unmarshal(s.State, &st)
	return st, err
}
