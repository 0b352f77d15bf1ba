// Package sim is a local 2048 environment for exercising the agent
// without a live game: apply a move, spawn the reply tile, detect the
// end of the game.
package sim

import (
	"context"
	"math/rand"

	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/game"
	"github.com/Simba256/2048/rules"
)

// fourChance is the probability a spawned tile is a 4 instead of a 2,
// matching the real game.
const fourChance = 0.1

// Game holds a board being played plus the rng driving tile spawns.
type Game struct {
	Board game.Board
	Turns int
	rng   *rand.Rand
}

// New seeds a game with two spawned tiles, the way the real game
// starts.
func New(seed int64) *Game {
	g := &Game{Board: game.EmptyBoard(), rng: rand.New(rand.NewSource(seed))}
	g.spawn()
	g.spawn()
	return g
}

// spawn places a 2 (or occasionally a 4) in a uniformly random empty
// cell. Returns false when the board is full.
func (g *Game) spawn() bool {
	type cell struct{ r, c int }
	empties := make([]cell, 0, game.Size*game.Size)
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			if g.Board[r][c] == game.Empty {
				empties = append(empties, cell{r, c})
			}
		}
	}
	if len(empties) == 0 {
		return false
	}
	v := 2
	if g.rng.Float64() < fourChance {
		v = 4
	}
	pick := empties[g.rng.Intn(len(empties))]
	g.Board[pick.r][pick.c] = v
	return true
}

// Step applies a directional move and spawns the reply tile. A no-op
// move is rejected: the board stays put and no tile spawns, as in the
// real game.
func (g *Game) Step(m game.Move) bool {
	next := rules.Apply(g.Board, m)
	if next == g.Board {
		return false
	}
	g.Board = next
	g.Turns++
	g.spawn()
	return true
}

// Over reports whether no search move can change the board. The agent
// never slides up, so a board that only an upward slide could unstick
// counts as over here.
func (g *Game) Over() bool {
	for _, m := range rules.SearchMoves {
		if rules.Apply(g.Board, m) != g.Board {
			return false
		}
	}
	return true
}

// Result summarises one finished self-play game.
type Result struct {
	Turns   int
	MaxTile int
	Undo    bool
}

// Play runs the engine against a fresh game until no move makes
// progress or ctx is cancelled. Undo has no meaning offline, so an
// undo verdict ends the game too. onStep, if non-nil, fires once per
// applied move.
func Play(ctx context.Context, e *engine.Engine, seed int64, onStep func()) Result {
	g := New(seed)
	undo := false
	for !g.Over() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return Result{Turns: g.Turns, MaxTile: g.Board.MaxTile(), Undo: undo}
			default:
			}
		}

		m := e.NextMove(g.Board)
		if m == game.MoveUndo {
			undo = true
			break
		}
		// Over() was false, so rotating covers a no-op pick.
		for tries := 0; tries < 3 && !g.Step(m); tries++ {
			m = rules.Rotate(m)
		}
		if onStep != nil {
			onStep()
		}
	}
	return Result{Turns: g.Turns, MaxTile: g.Board.MaxTile(), Undo: undo}
}
