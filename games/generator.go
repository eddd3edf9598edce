package games

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const GridSize = 25

// Generator draws all game outcomes from a single uniform source. One
// Generator is shared by every request handler goroutine; the mutex
// serializes access to the underlying Rand, which is not safe for
// concurrent use. Seeded construction is only used by tests.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// CrashPoint draws the committed multiplier for a crash round:
// max(1.0, floor(100/(1-r))/100) for r uniform in [0,1). Heavy-tailed with
// an implicit house edge of about 3%.
func (g *Generator) CrashPoint() float64 {
	g.mu.Lock()
	r := g.rnd.Float64()
	g.mu.Unlock()
	cp := math.Floor(100/(1-r)) / 100
	if cp < 1.0 {
		cp = 1.0
	}
	return cp
}

// DiceRoll draws one of the 10001 equally likely values 0.00 .. 100.00.
func (g *Generator) DiceRoll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return float64(g.rnd.Intn(10001)) / 100
}

// MinePositions picks count distinct cells of the 25-cell grid.
func (g *Generator) MinePositions(count int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	picked := make(map[int]struct{}, count)
	mines := make([]int, 0, count)
	for len(mines) < count {
		cell := g.rnd.Intn(GridSize)
		if _, ok := picked[cell]; ok {
			continue
		}
		picked[cell] = struct{}{}
		mines = append(mines, cell)
	}
	return mines
}

// DiceWins reports whether a roll beats the target on the chosen side.
func DiceWins(roll, target float64, isOver bool) bool {
	if isOver {
		return roll > target
	}
	return roll < target
}
