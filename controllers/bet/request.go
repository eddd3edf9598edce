package bet

import "github.com/lolbd307-png/osamendibet25bd/helpers"

const (
	ActionCrashStart    = "crash_start"
	ActionCrashCashout  = "crash_cashout"
	ActionCrashLost     = "crash_lost"
	ActionDice          = "dice"
	ActionMinesStart    = "mines_start"
	ActionMinesReveal   = "mines_reveal"
	ActionMinesCashout  = "mines_cashout"
	ActionDailyBonus    = "daily_bonus"
	ActionClaimReferral = "claim_referral"
)

const (
	MinBet = 10.0
	MaxBet = 50000.0

	MinDiceTarget = 5.0
	MaxDiceTarget = 95.0

	MinMines = 1
	MaxMines = 24
)

// Request is the dynamically shaped place-bet body. Fields beyond Action are
// only meaningful for the actions that require them; Validate enforces that
// per action before anything touches the ledger or a session.
type Request struct {
	Action     string   `json:"action"`
	BetAmount  float64  `json:"bet_amount"`
	SessionID  string   `json:"session_id"`
	Multiplier float64  `json:"multiplier"`
	MineCount  int      `json:"mine_count"`
	CellIndex  *int     `json:"cell_index"`
	Target     *float64 `json:"target"`
	IsOver     *bool    `json:"is_over"`
}

func (r *Request) Validate() error {
	switch r.Action {
	case ActionCrashStart:
		return r.validateBetAmount()
	case ActionCrashCashout:
		if err := r.validateSessionID(); err != nil {
			return err
		}
		if r.Multiplier < 1.0 {
			return helpers.ValidationError("Invalid multiplier")
		}
		return nil
	case ActionCrashLost:
		return r.validateSessionID()
	case ActionDice:
		if err := r.validateBetAmount(); err != nil {
			return err
		}
		if r.Target == nil || *r.Target < MinDiceTarget || *r.Target > MaxDiceTarget {
			return helpers.ValidationError("Invalid target")
		}
		if r.IsOver == nil {
			return helpers.ValidationError("Missing is_over")
		}
		return nil
	case ActionMinesStart:
		if err := r.validateBetAmount(); err != nil {
			return err
		}
		if r.MineCount < MinMines || r.MineCount > MaxMines {
			return helpers.ValidationError("Invalid mine count")
		}
		return nil
	case ActionMinesReveal:
		if err := r.validateSessionID(); err != nil {
			return err
		}
		if r.CellIndex == nil || *r.CellIndex < 0 || *r.CellIndex > 24 {
			return helpers.ValidationError("Invalid cell index")
		}
		return nil
	case ActionMinesCashout:
		return r.validateSessionID()
	case ActionDailyBonus, ActionClaimReferral:
		return nil
	default:
		return helpers.ErrInvalidAction
	}
}

func (r *Request) validateBetAmount() error {
	if r.BetAmount < MinBet || r.BetAmount > MaxBet {
		return helpers.ValidationError("Invalid bet amount")
	}
	return nil
}

func (r *Request) validateSessionID() error {
	if r.SessionID == "" {
		return helpers.ValidationError("Session ID required")
	}
	return nil
}
