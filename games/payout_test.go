package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceMultiplier(t *testing.T) {
	t.Run("even chance", func(t *testing.T) {
		// target 50 over: winChance 50 -> floor(98/50*100)/100
		assert.Equal(t, 1.96, DiceMultiplier(50, true))
		assert.Equal(t, 1.96, DiceMultiplier(50, false))
	})

	t.Run("high chance clamps at 1.01", func(t *testing.T) {
		// target 95 under: winChance 95 -> 1.03, target 5 over: same
		assert.Equal(t, 1.03, DiceMultiplier(95, false))
		// winChance 97 would floor to 1.01 exactly; clamp never lowers it
		assert.GreaterOrEqual(t, DiceMultiplier(95, true), 19.0)
	})

	t.Run("low chance", func(t *testing.T) {
		// target 5 under: winChance 5 -> floor(98/5*100)/100 = 19.6
		assert.Equal(t, 19.6, DiceMultiplier(5, false))
	})
}

func TestMinesMultiplier(t *testing.T) {
	t.Run("five mines three reveals", func(t *testing.T) {
		// (25/20)^3 * 0.97 = 1.89453.. -> 1.89
		assert.Equal(t, 1.89, MinesMultiplier(5, 3))
	})

	t.Run("single reveal", func(t *testing.T) {
		// (25/24) * 0.97 = 1.01041.. -> 1.01
		assert.Equal(t, 1.01, MinesMultiplier(1, 1))
	})

	t.Run("monotonic in reveals", func(t *testing.T) {
		prev := 0.0
		for k := 1; k <= 10; k++ {
			m := MinesMultiplier(5, k)
			assert.Greater(t, m, prev)
			prev = m
		}
	})
}

func TestWinAmount(t *testing.T) {
	assert.Equal(t, 196.0, WinAmount(100, 1.96))
	assert.Equal(t, 189.0, WinAmount(100, 1.89))
	// fractional products floor down
	assert.Equal(t, 98.0, WinAmount(50, 1.96))
	assert.Equal(t, 18.0, WinAmount(10, 1.89))
}
