package engine

import (
	"sort"

	"github.com/Simba256/2048/game"
)

// CheckPivot verifies that the largest tiles are seated in the
// corner-anchored snake arrangement: ranks 0..3 fill the bottom row
// ending at the right edge, ranks 4..7 the row above starting at the
// left edge, alternating row by row up the board. If a rank's tile is
// missing from its boundary cell while the previous rank is already
// seated, the lookahead would only churn the small tiles, so a forced
// corrective move comes back instead: Right or Left when the wanted
// tile is elsewhere in its row, Undo when another tile blocks the edge
// and only an external reset can recover.
//
// Ranks valued at or below PivotFloor are not enforced; ok=false means
// no override and the lookahead decides.
func (e *Engine) CheckPivot(b game.Board) (game.Move, bool) {
	ranked := make([]int, 0, game.Size*game.Size)
	for r := 0; r < game.Size; r++ {
		ranked = append(ranked, b[r][:]...)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranked)))

	for row := game.Size - 1; row >= 0; row-- {
		rank := game.Size - 1 - row // 0 for the bottom row
		want := ranked[rank*game.Size]
		if want <= e.cfg.PivotFloor {
			return 0, false
		}
		// Even-rank rows anchor at the right edge, odd-rank rows at
		// the left. The previous rank's tile must already sit at its
		// own anchor; otherwise this row is not yet in play.
		if rank%2 == 0 && b[row][game.Size-1] != want &&
			(rank == 0 || b[row+1][game.Size-1] == ranked[rank*game.Size-1]) {
			if m, ok := forcedMove(b[row], want, game.MoveRight); ok {
				return m, true
			}
		}
		if rank%2 == 1 && b[row][0] != want &&
			b[row+1][0] == ranked[rank*game.Size-1] {
			if m, ok := forcedMove(b[row], want, game.MoveLeft); ok {
				return m, true
			}
		}
	}
	return 0, false
}

// forcedMove scans the row from the anchored edge for the first
// occupied cell. If it already holds the wanted tile, sliding toward
// the edge seats it; anything else in the way means the tile is stuck
// outside the row. An all-empty row forces nothing.
func forcedMove(row [game.Size]int, want int, toward game.Move) (game.Move, bool) {
	for i := 0; i < game.Size; i++ {
		c := i
		if toward == game.MoveRight {
			c = game.Size - 1 - i
		}
		v := row[c]
		if v == game.Empty {
			continue
		}
		if v == want {
			return toward, true
		}
		return game.MoveUndo, true
	}
	return 0, false
}
