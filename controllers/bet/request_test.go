package bet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolbd307-png/osamendibet25bd/helpers"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestValidate_UnknownAction(t *testing.T) {
	req := Request{Action: "jackpot_spin"}
	assert.ErrorIs(t, req.Validate(), error(helpers.ErrInvalidAction))
}

func TestValidate_BetAmountBounds(t *testing.T) {
	for _, action := range []string{ActionCrashStart, ActionDice, ActionMinesStart} {
		t.Run(action, func(t *testing.T) {
			for _, amount := range []float64{0, 9.99, -5, 50000.01, 1e9} {
				req := Request{
					Action:    action,
					BetAmount: amount,
					MineCount: 5,
					Target:    floatPtr(50),
					IsOver:    boolPtr(true),
				}
				assert.Error(t, req.Validate(), "amount %v must be rejected", amount)
			}
			req := Request{
				Action:    action,
				BetAmount: 10,
				MineCount: 5,
				Target:    floatPtr(50),
				IsOver:    boolPtr(true),
			}
			assert.NoError(t, req.Validate())
		})
	}
}

func TestValidate_Dice(t *testing.T) {
	base := Request{Action: ActionDice, BetAmount: 100}

	t.Run("missing target", func(t *testing.T) {
		req := base
		req.IsOver = boolPtr(true)
		assert.Error(t, req.Validate())
	})

	t.Run("target bounds", func(t *testing.T) {
		for _, target := range []float64{4.99, 95.01, 0, 100} {
			req := base
			req.Target = floatPtr(target)
			req.IsOver = boolPtr(false)
			assert.Error(t, req.Validate(), "target %v must be rejected", target)
		}
	})

	t.Run("missing is_over", func(t *testing.T) {
		req := base
		req.Target = floatPtr(50)
		assert.Error(t, req.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		req := base
		req.Target = floatPtr(5)
		req.IsOver = boolPtr(true)
		require.NoError(t, req.Validate())
	})
}

func TestValidate_Mines(t *testing.T) {
	t.Run("mine count bounds", func(t *testing.T) {
		for _, count := range []int{0, -1, 25, 100} {
			req := Request{Action: ActionMinesStart, BetAmount: 100, MineCount: count}
			assert.Error(t, req.Validate(), "mine count %d must be rejected", count)
		}
	})

	t.Run("reveal needs session and cell", func(t *testing.T) {
		req := Request{Action: ActionMinesReveal}
		assert.Error(t, req.Validate())

		req.SessionID = "abc"
		assert.Error(t, req.Validate())

		req.CellIndex = intPtr(25)
		assert.Error(t, req.Validate())

		req.CellIndex = intPtr(0)
		assert.NoError(t, req.Validate())
	})

	t.Run("cashout needs session", func(t *testing.T) {
		req := Request{Action: ActionMinesCashout}
		assert.Error(t, req.Validate())
		req.SessionID = "abc"
		assert.NoError(t, req.Validate())
	})
}

func TestValidate_Crash(t *testing.T) {
	t.Run("cashout needs session and multiplier", func(t *testing.T) {
		req := Request{Action: ActionCrashCashout}
		assert.Error(t, req.Validate())

		req.SessionID = "abc"
		assert.Error(t, req.Validate(), "multiplier below 1.0 must be rejected")

		req.Multiplier = 1.5
		assert.NoError(t, req.Validate())
	})

	t.Run("lost needs session", func(t *testing.T) {
		req := Request{Action: ActionCrashLost}
		assert.Error(t, req.Validate())
		req.SessionID = "abc"
		assert.NoError(t, req.Validate())
	})
}

func TestValidate_BonusActionsNeedNothing(t *testing.T) {
	assert.NoError(t, (&Request{Action: ActionDailyBonus}).Validate())
	assert.NoError(t, (&Request{Action: ActionClaimReferral}).Validate())
}
