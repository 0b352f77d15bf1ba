// Package game defines the core board and move types for the 2048 agent.
//
// A Board is a small immutable value: transforms and the lookahead
// operate on copies, never in place, so candidate states can be fanned
// out freely without aliasing hazards.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board edge length. The heuristics assume this exact
// geometry; other sizes are not supported.
const Size = 4

// Empty marks an unoccupied cell. Occupied cells are always powers of
// two >= 2, so 1 can never collide with a real tile value.
const Empty = 1

// Board is a 4x4 grid of tile values. The zero value is not a valid
// board; use EmptyBoard or FromRows.
type Board [Size][Size]int

// Move is a direction to slide the board, or Undo to request a
// corrective input instead of a slide.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveUndo
)

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUndo:
		return "undo"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// Key is the literal key the injection side presses for this move.
// Undo maps to the game's undo shortcut.
func (m Move) Key() string {
	if m == MoveUndo {
		return "u"
	}
	return m.String()
}

// ErrMalformed reports a board matrix that cannot have come from a
// correct perception pipeline. It is an integration error, never a
// condition to recover from mid-game.
var ErrMalformed = errors.New("malformed board")

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Empty
		}
	}
	return b
}

// FromRows validates an observed board matrix and converts it to a
// Board. The matrix must be exactly 4x4 and every cell must be Empty
// or a power of two >= 2.
func FromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) == 0 {
		return b, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	if len(rows) != Size {
		return b, fmt.Errorf("%w: %d rows, want %d", ErrMalformed, len(rows), Size)
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, r, len(row), Size)
		}
		for c, v := range row {
			if !validCell(v) {
				return b, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformed, r, c, v)
			}
			b[r][c] = v
		}
	}
	return b, nil
}

func validCell(v int) bool {
	if v == Empty {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Parse reads the compact text form used by the CLI and tests: rows
// separated by ';', cells by ','. Example:
// "2,2,2,1;4,16,2,2;8,64,32,8;32,128,512,16384".
func Parse(s string) (Board, error) {
	rowStrs := strings.Split(strings.TrimSpace(s), ";")
	rows := make([][]int, 0, len(rowStrs))
	for _, rs := range rowStrs {
		cells := strings.Split(rs, ",")
		row := make([]int, 0, len(cells))
		for _, cs := range cells {
			cs = strings.TrimSpace(cs)
			v, err := strconv.Atoi(cs)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %q is not a number", ErrMalformed, cs)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Rows copies the board back out as a plain matrix for callers that
// speak JSON.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range b {
		rows[r] = make([]int, Size)
		copy(rows[r], b[r][:])
	}
	return rows
}

// MaxTile returns the largest tile on the board, or Empty if none.
func (b Board) MaxTile() int {
	max := Empty
	for r := range b {
		for _, v := range b[r] {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// String renders the board row by row with aligned columns, empty
// cells as dots.
func (b Board) String() string {
	width := 1
	for r := range b {
		for _, v := range b[r] {
			if v != Empty {
				if l := len(strconv.Itoa(v)); l > width {
					width = l
				}
			}
		}
	}
	var sb strings.Builder
	for r := range b {
		for c, v := range b[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != Empty {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
