// Package engine selects the next move: positional scoring, the corner
// pivot check, and a bounded-depth lookahead over the transforms.
package engine

import (
	"math"

	"github.com/Simba256/2048/game"
)

// Config holds the tunable heuristic constants. The defaults reproduce
// the reference strategy; change them only together with the fixtures
// in the tests.
type Config struct {
	// SnakeBase is the exponent base for cells inside the monotonic
	// snake prefix. Must exceed RawBase so arrangement dominates raw
	// tile growth.
	SnakeBase float64
	// RawBase is the exponent base applied to every cell regardless of
	// arrangement.
	RawBase float64
	// PivotFloor is the tile value at or below which the pivot check
	// stands down and leaves placement to the lookahead.
	PivotFloor int
	// Depth is the number of plies the lookahead expands.
	Depth int
}

func DefaultConfig() Config {
	return Config{SnakeBase: 4, RawBase: 3, PivotFloor: 64, Depth: 3}
}

// Evaluator scores a board; higher is better. The lookahead uses it
// purely as a comparator.
type Evaluator interface {
	Score(game.Board) float64
}

// Heuristic is the positional Evaluator: a monotonic-snake bonus plus
// a raw-value bonus.
type Heuristic struct {
	SnakeBase float64
	RawBase   float64
}

// snakeOrder returns the cells in the boustrophedon traversal that
// anchors the build corner at bottom-right: row 3 right to left, row 2
// left to right, and so on up the board. Consecutive cells are always
// grid-adjacent.
func snakeOrder(b game.Board) [game.Size * game.Size]int {
	var out [game.Size * game.Size]int
	i := 0
	for r := game.Size - 1; r >= 0; r-- {
		if (game.Size-1-r)%2 == 0 {
			for c := game.Size - 1; c >= 0; c-- {
				out[i] = b[r][c]
				i++
			}
		} else {
			for c := 0; c < game.Size; c++ {
				out[i] = b[r][c]
				i++
			}
		}
	}
	return out
}

// MonotonicRun returns the longest non-increasing prefix of the snake
// traversal: the stretch of board already arranged largest-to-smallest
// from the build corner. It stops at the first increase.
func MonotonicRun(b game.Board) []int {
	order := snakeOrder(b)
	run := make([]int, 0, len(order))
	last := order[0]
	for _, v := range order {
		if v > last {
			break
		}
		run = append(run, v)
		last = v
	}
	return run
}

// Score is SnakeBase^log2(v) summed over the monotonic prefix plus
// RawBase^log2(v) summed over every cell. Empty cells contribute the
// base^0 = 1 floor. Exponential in tile value, so a deep prefix of
// large tiles dwarfs everything else.
func (h Heuristic) Score(b game.Board) float64 {
	s := 0.0
	for _, v := range MonotonicRun(b) {
		s += math.Pow(h.SnakeBase, math.Log2(float64(v)))
	}
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			s += math.Pow(h.RawBase, math.Log2(float64(b[r][c])))
		}
	}
	return s
}
