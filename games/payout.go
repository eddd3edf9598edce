package games

import "math"

// DiceMultiplier returns the payout multiplier for a dice bet. winChance is
// in percentage points; the formula fixes the theoretical return at 98%.
func DiceMultiplier(target float64, isOver bool) float64 {
	winChance := target
	if isOver {
		winChance = 100 - target
	}
	mult := math.Floor(98/winChance*100) / 100
	if mult < 1.01 {
		mult = 1.01
	}
	return mult
}

// MinesMultiplier returns the payout multiplier after k safe reveals with m
// mines on the 25-cell grid. This is the operator's simplified approximation
// of the hypergeometric odds, kept bit-for-bit compatible with the live
// payout tables: floor(pow(25/(25-m), k) * 0.97 * 100) / 100.
func MinesMultiplier(mineCount, revealed int) float64 {
	mult := math.Pow(float64(GridSize)/float64(GridSize-mineCount), float64(revealed))
	return math.Floor(mult*0.97*100) / 100
}

// WinAmount converts a bet and multiplier into the credited win, floored to
// a whole unit.
func WinAmount(bet, multiplier float64) float64 {
	return math.Floor(bet * multiplier)
}
