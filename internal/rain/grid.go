// Package rain simulates the falling-character background: a grid of aging
// cells shifted down one row per tick, with probabilistic spawns in the top
// row.
package rain

import "math/rand/v2"

// Charset is the pool new rain characters are drawn from.
var Charset = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*()")

const (
	baseSpawnChance = 0.3
	baseSpeed       = 5
	maxSpawnChance  = 0.9

	// MaxSpeed is the highest accepted scroll-speed level; 0 freezes the rain.
	MaxSpeed = 10
)

// SpawnChance maps a scroll-speed level (0..MaxSpeed) to the per-column
// probability of a new drop per tick. Linear in speed, 30% at the default
// level, 0 at speed 0, clamped so dense palettes still show gaps.
func SpawnChance(speed int) float64 {
	if speed <= 0 {
		return 0
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	c := baseSpawnChance * float64(speed) / baseSpeed
	if c > maxSpawnChance {
		c = maxSpawnChance
	}
	return c
}

// Cell is one grid position. The zero value is empty; an occupied cell holds
// the spawned rune and its age in ticks.
type Cell struct {
	Rune rune
	Age  int
}

func (c Cell) Empty() bool { return c.Rune == 0 }

// Grid owns the simulation surface. It is not safe for concurrent use; the
// frame driver is its only mutator.
type Grid struct {
	w, h  int
	cells [][]Cell // [row][col]
	rng   *rand.Rand
}

// NewGrid allocates an empty w x h grid drawing randomness from rng.
func NewGrid(w, h int, rng *rand.Rand) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
	}
	return &Grid{w: w, h: h, cells: cells, rng: rng}
}

// Size returns the grid dimensions in (columns, rows).
func (g *Grid) Size() (int, int) { return g.w, g.h }

// At returns the cell at (x, y). Out-of-bounds coordinates are empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return Cell{}
	}
	return g.cells[y][x]
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation one tick: every column shifts down one row
// (the bottom row falls off), surviving cells age by one, and each top-row
// slot spawns a fresh random character with probability spawnChance.
func (g *Grid) Step(spawnChance float64) {
	if g.w == 0 || g.h == 0 {
		return
	}
	for x := 0; x < g.w; x++ {
		for y := g.h - 1; y >= 1; y-- {
			c := g.cells[y-1][x]
			if !c.Empty() {
				c.Age++
			}
			g.cells[y][x] = c
		}
		if g.rng.Float64() < spawnChance {
			g.cells[0][x] = Cell{Rune: Charset[g.rng.IntN(len(Charset))]}
		} else {
			g.cells[0][x] = Cell{}
		}
	}
}
