package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	if m.runtime.TickRate != 4 {
		t.Errorf("TickRate = %d, expected config default 4", m.runtime.TickRate)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
	if m.Ended() {
		t.Error("New model should not be ended")
	}
}

func TestNewModelRejectsBadStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Apple = "nope"

	if _, err := NewModel(cfg, core.DefaultConfig()); err == nil {
		t.Error("Expected error for an invalid color")
	}
}

func TestDirectionAppliedOnTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if _, ok := m.game.Direction(); ok {
		t.Fatal("Direction should be buffered until the next tick")
	}

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("Tick should schedule the next tick while playing")
	}
	if dir, ok := m.game.Direction(); !ok || dir != snake.Right {
		t.Errorf("Direction = %v, %v; expected right", dir, ok)
	}
	if m.game.HeadPosition() != (snake.Position{Row: 0, Col: 1}) {
		t.Errorf("Head = %v, expected (0,1)", m.game.HeadPosition())
	}
}

func TestLastDirectionKeyWins(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)

	if dir, _ := m.game.Direction(); dir != snake.Left {
		t.Errorf("Direction = %v, expected left", dir)
	}
}

func TestTickWithoutInput(t *testing.T) {
	m := newTestModel(t)

	for range 3 {
		m, _ = tick(t, m)
	}

	if m.game.Ticks() != 3 {
		t.Errorf("Ticks = %d, expected 3", m.game.Ticks())
	}
	if m.game.HeadPosition() != (snake.Position{}) {
		t.Errorf("Head moved to %v without input", m.game.HeadPosition())
	}
}

func TestQuitIsImmediate(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := newTestModel(t)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, cmd := update(t, m, msg)

		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}

		m, _ = tick(t, m)
		if m.game.Ticks() != 0 {
			t.Errorf("%s: no tick should run after quit", msg)
		}
		if m.View() != "" {
			t.Errorf("%s: View should be empty after quit", msg)
		}
	}
}

func TestGameOverStopsTicking(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	var cmd tea.Cmd
	for range 6 {
		m, cmd = tick(t, m)
	}

	if !m.Ended() {
		t.Fatalf("Expected game over, head at %v", m.game.HeadPosition())
	}
	if cmd != nil {
		t.Error("Tick loop should stop after game over")
	}
	if m.Result().End != snake.EndOutOfBounds {
		t.Errorf("End = %s, expected out_of_bounds", m.Result().End)
	}

	// Await-quit phase: no more ticks or direction changes.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)
	if m.game.Ticks() != 6 {
		t.Errorf("Ticks = %d, expected 6", m.game.Ticks())
	}
	if dir, _ := m.game.Direction(); dir != snake.Up {
		t.Errorf("Direction changed after game over to %v", dir)
	}

	view := m.View()
	if !strings.Contains(view, "Game Over") {
		t.Error("Ended view should show the game over overlay")
	}
	if !strings.Contains(view, "Hit the wall") {
		t.Error("Ended view should show the end reason")
	}
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("View should show the score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View should show the help line")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("Expected resize notice for a small window")
	}
	if m.game.Ticks() != 0 {
		t.Error("Resizing should not advance the game")
	}
}

func TestTooSmallWindowFreezesGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	for i := range 6 {
		var cmd tea.Cmd
		m, cmd = tick(t, m)
		if cmd == nil {
			t.Fatalf("tick %d: tick loop should keep running while frozen", i)
		}
	}
	if m.game.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0 while the window is too small", m.game.Ticks())
	}
	if m.Ended() {
		t.Error("Game should not end while the window is too small")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = tick(t, m)

	if m.game.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1 after resize", m.game.Ticks())
	}
	if got := m.game.HeadPosition(); got != (snake.Position{Row: -1, Col: 0}) {
		t.Errorf("Head = %v, expected the buffered Up to apply after resize", got)
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%s) = %s, expected %s", tc.msg, got, tc.want)
		}
	}

	km.SetMovementEnabled(false)
	if got := km.Action(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionNone {
		t.Errorf("Disabled movement should not match, got %s", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionQuit {
		t.Errorf("Quit should stay enabled, got %s", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetCell(0, 0, core.Cell{Rune: 'A', Color: core.ColorRed})
	s.SetCell(1, 1, core.Cell{Rune: 'B'})

	out := RenderScreen(s)
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}
