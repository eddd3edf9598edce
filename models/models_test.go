package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferralCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewReferralCode()
		assert.Len(t, code, 8)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.NotContains(t, code, "-")
	}
}

func TestGameSessionStateRoundTrip(t *testing.T) {
	t.Run("crash", func(t *testing.T) {
		var s GameSession
		require.NoError(t, s.SetState(CrashState{CrashPoint: 2.37}))

		state, err := s.CrashState()
		require.NoError(t, err)
		assert.Equal(t, 2.37, state.CrashPoint)
		assert.Zero(t, state.CashoutMultiplier)
	})

	t.Run("mines", func(t *testing.T) {
		var s GameSession
		require.NoError(t, s.SetState(MinesState{
			MineCount: 3,
			Mines:     []int{1, 7, 23},
			Revealed:  []int{0, 4},
		}))

		state, err := s.MinesState()
		require.NoError(t, err)
		assert.Equal(t, 3, state.MineCount)
		assert.True(t, state.IsMine(7))
		assert.False(t, state.IsMine(8))
		assert.True(t, state.AlreadyRevealed(4))
		assert.False(t, state.AlreadyRevealed(1))
	})
}
