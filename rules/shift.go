// Package rules implements the pure board transforms: sliding and
// merging tiles toward an edge.
//
// Only Down, Left and Right exist. The decision logic never issues Up:
// the agent builds its snake from the bottom-right corner and an upward
// slide would tear the anchored rows apart. The input-injection
// vocabulary still knows the up key, but no transform backs it.
package rules

import "github.com/Simba256/2048/game"

// SearchMoves is the fixed candidate order used by the lookahead.
// Generation order matters: score ties resolve to the earliest
// generated leaf, so Down beats Left beats Right.
var SearchMoves = [3]game.Move{game.MoveDown, game.MoveLeft, game.MoveRight}

// compact pushes occupied cells toward index 0, padding with Empty.
func compact(line [game.Size]int) [game.Size]int {
	var out [game.Size]int
	n := 0
	for _, v := range line {
		if v != game.Empty {
			out[n] = v
			n++
		}
	}
	for ; n < game.Size; n++ {
		out[n] = game.Empty
	}
	return out
}

// shiftLine compacts a line toward index 0, merges equal neighbours
// scanning from index 0, then compacts again. A tile produced by a
// merge never merges again in the same call.
func shiftLine(line [game.Size]int) [game.Size]int {
	out := compact(line)
	for i := 0; i < game.Size-1; i++ {
		if out[i] != game.Empty && out[i] == out[i+1] {
			out[i] *= 2
			out[i+1] = game.Empty
			i++ // the vacated slot cannot start another merge
		}
	}
	return compact(out)
}

func reverse(line [game.Size]int) [game.Size]int {
	var out [game.Size]int
	for i, v := range line {
		out[game.Size-1-i] = v
	}
	return out
}

// Left slides every row toward column 0.
func Left(b game.Board) game.Board {
	var out game.Board
	for r := 0; r < game.Size; r++ {
		out[r] = shiftLine(b[r])
	}
	return out
}

// Right slides every row toward column Size-1.
func Right(b game.Board) game.Board {
	var out game.Board
	for r := 0; r < game.Size; r++ {
		out[r] = reverse(shiftLine(reverse(b[r])))
	}
	return out
}

// Down slides every column toward row Size-1.
func Down(b game.Board) game.Board {
	var out game.Board
	for c := 0; c < game.Size; c++ {
		var col [game.Size]int
		for r := 0; r < game.Size; r++ {
			col[r] = b[game.Size-1-r][c]
		}
		col = shiftLine(col)
		for r := 0; r < game.Size; r++ {
			out[game.Size-1-r][c] = col[r]
		}
	}
	return out
}

// Apply dispatches a directional move. Up and Undo have no transform;
// the board comes back untouched.
func Apply(b game.Board, m game.Move) game.Board {
	switch m {
	case game.MoveDown:
		return Down(b)
	case game.MoveLeft:
		return Left(b)
	case game.MoveRight:
		return Right(b)
	default:
		return b
	}
}

// Rotate is the fixed no-op resolution order: down, left, right and
// back to down.
func Rotate(m game.Move) game.Move {
	switch m {
	case game.MoveDown:
		return game.MoveLeft
	case game.MoveLeft:
		return game.MoveRight
	default:
		return game.MoveDown
	}
}
