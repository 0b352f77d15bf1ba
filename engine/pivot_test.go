package engine

import (
	"testing"

	"github.com/Simba256/2048/game"
)

func TestCheckPivot_BelowFloorStandsDown(t *testing.T) {
	e := New(DefaultConfig())
	// Largest tile is exactly the floor; no rank is enforced.
	b := mustBoard(t, "2,1,1,1;1,1,1,1;1,1,1,1;1,64,1,1")
	if m, ok := e.CheckPivot(b); ok {
		t.Fatalf("pivot forced %s below the floor on:\n%s", m, b)
	}
}

func TestCheckPivot_SlideRightSeatsCorner(t *testing.T) {
	e := New(DefaultConfig())
	// The 128 belongs at the bottom-right corner and is the first
	// occupied cell scanning in from that edge: sliding right seats it.
	b := mustBoard(t, "2,1,1,1;1,1,1,1;1,1,1,1;1,128,1,1")
	m, ok := e.CheckPivot(b)
	if !ok || m != game.MoveRight {
		t.Fatalf("got (%v,%v), want (right,true) on:\n%s", m, ok, b)
	}
}

func TestCheckPivot_BlockedCornerForcesUndo(t *testing.T) {
	e := New(DefaultConfig())
	// A 2 sits between the 128 and its corner; only a reset recovers.
	b := mustBoard(t, "2,1,1,1;1,1,1,1;1,1,1,1;1,128,2,1")
	m, ok := e.CheckPivot(b)
	if !ok || m != game.MoveUndo {
		t.Fatalf("got (%v,%v), want (undo,true) on:\n%s", m, ok, b)
	}
}

func TestCheckPivot_SlideLeftSeatsSecondRow(t *testing.T) {
	e := New(DefaultConfig())
	// Bottom row is fully seated; the 128 heading rank 4 belongs at
	// the left edge of the row above and a left slide seats it.
	b := mustBoard(t, "1,1,1,1;1,1,1,1;1,1,128,1;256,512,1024,2048")
	m, ok := e.CheckPivot(b)
	if !ok || m != game.MoveLeft {
		t.Fatalf("got (%v,%v), want (left,true) on:\n%s", m, ok, b)
	}
}

func TestCheckPivot_SeatedBoardStandsDown(t *testing.T) {
	e := New(DefaultConfig())
	b := mustBoard(t, "1,1,1,1;1,1,1,1;128,1,1,1;256,512,1024,2048")
	if m, ok := e.CheckPivot(b); ok {
		t.Fatalf("pivot forced %s on a seated board:\n%s", m, b)
	}
}

func TestCheckPivot_UnseatedPredecessorStandsDown(t *testing.T) {
	e := New(DefaultConfig())
	// Rank 4's 128 is misplaced, but rank 3 (the 256) is not at the
	// bottom-left anchor yet, so the row above is not in play.
	b := mustBoard(t, "1,1,1,1;1,1,1,1;1,1,128,1;512,256,1024,2048")
	m, ok := e.CheckPivot(b)
	if ok {
		t.Fatalf("pivot forced %s before the predecessor was seated:\n%s", m, b)
	}
}

func TestCheckPivot_FloorIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PivotFloor = 16
	e := New(cfg)
	// With the floor lowered, a misplaced 32 is enforced too.
	b := mustBoard(t, "2,1,1,1;1,1,1,1;1,1,1,1;1,32,1,1")
	m, ok := e.CheckPivot(b)
	if !ok || m != game.MoveRight {
		t.Fatalf("got (%v,%v), want (right,true) with floor 16 on:\n%s", m, ok, b)
	}
}
