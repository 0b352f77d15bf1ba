package sim

import (
	"context"
	"testing"

	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/game"
)

func mustBoard(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.Parse(s)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", s, err)
	}
	return b
}

func TestNew_SpawnsTwoTiles(t *testing.T) {
	g := New(1)
	n := 0
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			v := g.Board[r][c]
			if v == game.Empty {
				continue
			}
			if v != 2 && v != 4 {
				t.Fatalf("spawned %d, want 2 or 4:\n%s", v, g.Board)
			}
			n++
		}
	}
	if n != 2 {
		t.Fatalf("spawned %d tiles, want 2:\n%s", n, g.Board)
	}
}

func TestStep_RejectsNoOp(t *testing.T) {
	g := New(1)
	g.Board = mustBoard(t, "1,1,1,1;1,1,1,1;1,1,1,1;2,4,8,16")

	if g.Step(game.MoveDown) {
		t.Fatal("down is a no-op here and must be rejected")
	}
	if g.Turns != 0 {
		t.Fatalf("rejected step advanced Turns to %d", g.Turns)
	}
	if g.Board != mustBoard(t, "1,1,1,1;1,1,1,1;1,1,1,1;2,4,8,16") {
		t.Fatalf("rejected step changed the board:\n%s", g.Board)
	}
}

func TestStep_AppliesAndSpawns(t *testing.T) {
	g := New(1)
	g.Board = mustBoard(t, "2,1,1,1;1,1,1,1;1,1,1,1;2,4,8,16")

	if !g.Step(game.MoveDown) {
		t.Fatal("down should make progress")
	}
	if g.Turns != 1 {
		t.Fatalf("Turns=%d want 1", g.Turns)
	}
	// The two 2s merged; the spawn adds one tile back.
	if n := occupied(g.Board); n != 5 {
		t.Fatalf("occupied=%d want 5 after merge plus spawn:\n%s", n, g.Board)
	}
	if g.Board[3][0] != 4 {
		t.Fatalf("merge result missing at bottom-left:\n%s", g.Board)
	}
}

func occupied(b game.Board) int {
	n := 0
	for r := range b {
		for _, v := range b[r] {
			if v != game.Empty {
				n++
			}
		}
	}
	return n
}

func TestOver(t *testing.T) {
	g := New(1)

	g.Board = mustBoard(t, "2,4,8,16;16,8,4,2;2,4,8,16;16,8,4,2")
	if !g.Over() {
		t.Fatalf("full board with no merges must be over:\n%s", g.Board)
	}

	g.Board = mustBoard(t, "2,4,8,16;16,8,4,2;2,4,8,16;16,8,4,4")
	if g.Over() {
		t.Fatalf("board with a merge available must not be over:\n%s", g.Board)
	}

	g.Board = game.EmptyBoard()
	if !g.Over() {
		t.Fatal("an empty board cannot change and must be over")
	}
}

func TestPlay_RunsToCompletion(t *testing.T) {
	e := engine.New(engine.DefaultConfig())
	steps := 0
	res := Play(context.Background(), e, 42, func() { steps++ })
	t.Logf("turns=%d maxTile=%d undo=%v steps=%d", res.Turns, res.MaxTile, res.Undo, steps)

	if res.Turns == 0 {
		t.Fatal("game ended without a single move")
	}
	if res.MaxTile < 4 {
		t.Fatalf("maxTile=%d, expected at least one merge", res.MaxTile)
	}
	if steps != res.Turns {
		t.Fatalf("onStep fired %d times for %d turns", steps, res.Turns)
	}
}

func TestPlay_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := engine.New(engine.DefaultConfig())
	res := Play(ctx, e, 42, nil)
	if res.Turns != 0 {
		t.Fatalf("cancelled game still played %d turns", res.Turns)
	}
}
