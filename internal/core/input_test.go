package core

import "testing"

func TestInputFrameLastMoveWins(t *testing.T) {
	var f InputFrame

	if _, ok := f.Move(); ok {
		t.Error("Empty frame should have no move")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	move, ok := f.Move()
	if !ok || move != ActionLeft {
		t.Errorf("Move() = %v, %v; expected Left, true", move, ok)
	}
}

func TestInputFrameIgnoresQuit(t *testing.T) {
	var f InputFrame
	f.Set(ActionDown)
	f.Set(ActionQuit)

	move, ok := f.Move()
	if !ok || move != ActionDown {
		t.Errorf("Move() = %v, %v; expected Down, true", move, ok)
	}

	f.Clear()
	if _, ok := f.Move(); ok {
		t.Error("Clear should reset move")
	}
}

func TestActionIsMove(t *testing.T) {
	tests := []struct {
		action Action
		move   bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		if got := tc.action.IsMove(); got != tc.move {
			t.Errorf("%s.IsMove() = %v, expected %v", tc.action, got, tc.move)
		}
	}
}
