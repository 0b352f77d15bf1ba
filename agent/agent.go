// Package agent drives one decision cycle: decide a move for the
// observed board, resolve no-ops, and fire the key press.
package agent

import (
	"io"
	"log/slog"

	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/game"
	"github.com/Simba256/2048/logging"
	"github.com/Simba256/2048/rules"
)

// Actuator delivers a key press to the game. Implementations are fire
// and forget: the agent never waits on or retries a press.
type Actuator interface {
	Press(key string)
}

// ActuatorFunc adapts a function to the Actuator interface.
type ActuatorFunc func(key string)

func (f ActuatorFunc) Press(key string) { f(key) }

// Agent composes the decision engine with an actuator.
type Agent struct {
	engine *engine.Engine
	act    Actuator
	log    *slog.Logger
}

// New wires an agent. A nil logger discards decision logs.
func New(e *engine.Engine, act Actuator, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.New(logging.NewHandler(io.Discard, nil))
	}
	return &Agent{engine: e, act: act, log: logger}
}

// Advance decides and issues one move for the observed board,
// returning the board the engine expects next and the move actually
// pressed.
//
// Undo resets the cycle: the corrective key goes out and the caller
// gets an all-empty board, telling the perception side a fresh
// observation is required.
//
// A chosen move that would not change the board is swapped for the
// next direction in the rotation until one makes progress or all three
// have been tried. A board where all three are no-ops comes back
// unchanged with the last direction tried; the caller may treat
// repeats of that as game over.
func (a *Agent) Advance(b game.Board) (game.Board, game.Move) {
	move := a.engine.NextMove(b)
	if move == game.MoveUndo {
		a.log.Info("undo requested, resetting cycle", "key", move.Key())
		a.act.Press(move.Key())
		return game.EmptyBoard(), move
	}

	next := rules.Apply(b, move)
	for tries := 1; tries < 3 && next == b; tries++ {
		move = rules.Rotate(move)
		next = rules.Apply(b, move)
	}

	a.log.Info("move issued",
		slog.String("move", move.String()),
		slog.Bool("progress", next != b),
		logging.Board("board", next),
	)
	a.act.Press(move.Key())
	return next, move
}
