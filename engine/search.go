package engine

import (
	"github.com/Simba256/2048/game"
	"github.com/Simba256/2048/rules"
)

// Engine owns the move decision: pivot override first, lookahead
// otherwise. It is stateless between calls and safe to reuse across
// decision cycles.
type Engine struct {
	cfg  Config
	eval Evaluator
}

// New builds an engine with the heuristic evaluator derived from cfg.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:  cfg,
		eval: Heuristic{SnakeBase: cfg.SnakeBase, RawBase: cfg.RawBase},
	}
}

// NewWithEvaluator substitutes the evaluator. The lookahead only ever
// compares scores, so any consistent ordering works.
func NewWithEvaluator(cfg Config, eval Evaluator) *Engine {
	return &Engine{cfg: cfg, eval: eval}
}

// candidate pairs a simulated board with the first-ply move that leads
// toward it. root marks the single unexpanded starting state, which
// has no first ply yet.
type candidate struct {
	board game.Board
	first game.Move
	root  bool
}

// NextMove picks the move to issue for the observed board.
//
// The pivot check short-circuits everything: a misplaced pivot means
// the arrangement is being lost and no leaf score should outvote
// fixing it.
//
// Otherwise every sequence of Depth plies over {down, left, right} is
// expanded breadth first, each leaf board is scored, and the first ply
// of the best leaf wins. Leaves are generated down, left, right at
// every level and only a strictly better score displaces the
// incumbent, so ties resolve to Down, then Left, then Right.
func (e *Engine) NextMove(b game.Board) game.Move {
	if m, ok := e.CheckPivot(b); ok {
		return m
	}

	level := []candidate{{board: b, root: true}}
	for d := 0; d < e.cfg.Depth; d++ {
		next := make([]candidate, 0, len(level)*len(rules.SearchMoves))
		for _, cand := range level {
			for _, m := range rules.SearchMoves {
				child := candidate{board: rules.Apply(cand.board, m), first: cand.first}
				if cand.root {
					child.first = m
				}
				next = append(next, child)
			}
		}
		level = next
	}

	// Depth <= 0 leaves only the unexpanded root, which carries no
	// move to recommend.
	if len(level) == 0 || level[0].root {
		return game.MoveUndo
	}

	best := level[0]
	bestScore := e.eval.Score(best.board)
	for _, cand := range level[1:] {
		if s := e.eval.Score(cand.board); s > bestScore {
			best, bestScore = cand, s
		}
	}
	return best.first
}
