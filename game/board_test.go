package game

import (
	"errors"
	"testing"
)

func TestFromRows_Valid(t *testing.T) {
	rows := [][]int{
		{2, 2, 2, 1},
		{4, 16, 2, 2},
		{8, 64, 32, 8},
		{32, 128, 512, 16384},
	}
	b, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if b[3][3] != 16384 || b[0][3] != Empty {
		t.Fatalf("cells not preserved:\n%s", b)
	}
}

func TestFromRows_Malformed(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
	}{
		{"empty", nil},
		{"too few rows", [][]int{{1, 1, 1, 1}}},
		{"ragged row", [][]int{{1, 1, 1, 1}, {1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}},
		{"not a power of two", [][]int{{1, 1, 1, 1}, {1, 3, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}},
		{"zero cell", [][]int{{1, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}},
		{"negative cell", [][]int{{1, 1, 1, 1}, {1, -2, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromRows(tc.rows); !errors.Is(err, ErrMalformed) {
				t.Fatalf("err=%v, want ErrMalformed", err)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	b, err := Parse("2,2,2,1;4,16,2,2;8,64,32,8;32,128,512,16384")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := b.Rows()
	want := [][]int{
		{2, 2, 2, 1},
		{4, 16, 2, 2},
		{8, 64, 32, 8},
		{32, 128, 512, 16384},
	}
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("cell (%d,%d)=%d want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestParse_BadToken(t *testing.T) {
	if _, err := Parse("2,2,2,x;1,1,1,1;1,1,1,1;1,1,1,1"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v, want ErrMalformed", err)
	}
}

func TestMove_Key(t *testing.T) {
	cases := []struct {
		move Move
		key  string
	}{
		{MoveUp, "up"},
		{MoveDown, "down"},
		{MoveLeft, "left"},
		{MoveRight, "right"},
		{MoveUndo, "u"},
	}
	for _, tc := range cases {
		if got := tc.move.Key(); got != tc.key {
			t.Fatalf("%s.Key()=%q want %q", tc.move, got, tc.key)
		}
	}
}

func TestEmptyBoard(t *testing.T) {
	b := EmptyBoard()
	for r := range b {
		for c := range b[r] {
			if b[r][c] != Empty {
				t.Fatalf("cell (%d,%d)=%d want Empty", r, c, b[r][c])
			}
		}
	}
	if b.MaxTile() != Empty {
		t.Fatalf("MaxTile=%d want Empty", b.MaxTile())
	}
}
