package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// phase is the stage of a game session.
type phase int

const (
	phasePlaying phase = iota
	phaseEnded         // game over, waiting for quit
)

// Model is the Bubble Tea model running a single snake game.
type Model struct {
	game     *snake.Game
	cfg      config.Config
	runtime  core.RuntimeConfig
	style    render.Style
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	phase    phase
	quitting bool
}

// NewModel creates a model for a fresh game.
// A zero TickRate in rc falls back to cfg; a zero Seed uses the current time.
func NewModel(cfg config.Config, rc core.RuntimeConfig) (Model, error) {
	style, err := cfg.Style()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	if rc.TickRate <= 0 {
		rc.TickRate = cfg.TickRate
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    snake.New(rand.New(rand.NewSource(rc.Seed))),
		cfg:     cfg,
		runtime: rc,
		style:   style,
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers direction keys until the next tick; quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.phase == phasePlaying {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick applies at most one direction change, advances the engine and
// stops the tick loop once the game is over. While the board does not fit
// the window the game is frozen and buffered input waits for the resize.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || m.quitting {
		return m, nil
	}
	if !m.fits() {
		return m, tickCmd(m.runtime.TickRate)
	}

	if action, ok := m.input.Move(); ok {
		if dir, ok := directionFor(action); ok {
			m.game.SetDirection(dir)
		}
	}
	m.input.Clear()

	m.game.Tick()

	if m.game.IsEnd() {
		m.phase = phaseEnded
		m.keys.SetMovementEnabled(false)
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if !m.fits() {
		render.TooSmall(m.screen)
		return RenderScreen(m.screen)
	}

	layout := render.Centered(m.screen.Width(), m.screen.Height(), m.cfg.Cell.Width, m.cfg.Cell.Height)
	render.Draw(m.screen, layout, m.game, m.style)

	if m.phase == phaseEnded {
		render.Overlay(m.screen, "Game Over", endLine(m.game))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) fits() bool {
	return render.Fits(m.runtime.ScreenW, m.runtime.ScreenH, m.cfg.Cell.Width, m.cfg.Cell.Height)
}

func endLine(g *snake.Game) string {
	switch g.EndReason() {
	case snake.EndOutOfBounds:
		return fmt.Sprintf("Hit the wall. Score: %d", g.Score())
	case snake.EndSuicide:
		return fmt.Sprintf("Bit yourself. Score: %d", g.Score())
	case snake.EndScoreLimit:
		return fmt.Sprintf("Board cleared! Score: %d", g.Score())
	default:
		return fmt.Sprintf("Score: %d", g.Score())
	}
}

// Ended reports whether the game is over.
func (m Model) Ended() bool {
	return m.phase == phaseEnded
}

// Result returns the snapshot of the session's game.
func (m Model) Result() snake.Snapshot {
	return m.game.Snapshot()
}

// Run starts a local Bubble Tea program and returns the final game snapshot.
func Run(cfg config.Config, rc core.RuntimeConfig) (snake.Snapshot, error) {
	model, err := NewModel(cfg, rc)
	if err != nil {
		return snake.Snapshot{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}
