// Package snake implements the snake game state engine: snake geometry,
// apple placement, turn validation, tick advancement and end detection.
// It has no knowledge of terminals, timing or input devices.
package snake

import (
	"math/rand"
	"slices"
	"time"
)

// Rand is the randomness source used for apple placement.
// *rand.Rand satisfies it; tests inject deterministic implementations.
type Rand interface {
	Intn(n int) int
}

// EndReason describes why a game has ended.
type EndReason string

const (
	EndNone        EndReason = "none"
	EndScoreLimit  EndReason = "score_limit"
	EndOutOfBounds EndReason = "out_of_bounds"
	EndSuicide     EndReason = "suicide"
)

// Game holds the state of a single snake session.
type Game struct {
	rng   Rand
	ticks uint64

	direction    Direction
	hasDirection bool // false until the first accepted SetDirection

	head  Position
	tail  []Position // oldest segment first, head excluded
	apple Position
}

// New creates a game with the head at (0,0), an empty tail and the apple at
// (-1,-1). The snake does not move until a direction is set.
// A nil rng falls back to a time-seeded source.
func New(rng Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		rng:   rng,
		head:  Position{Row: 0, Col: 0},
		apple: Position{Row: -1, Col: -1},
	}
}

// IsEnd reports whether the game is over.
func (g *Game) IsEnd() bool {
	return g.Score() >= ScoreLimit || g.IsOutOfBound() || g.IsSuicide()
}

// EndReason returns the first end condition that holds, in IsEnd order.
func (g *Game) EndReason() EndReason {
	switch {
	case g.Score() >= ScoreLimit:
		return EndScoreLimit
	case g.IsOutOfBound():
		return EndOutOfBounds
	case g.IsSuicide():
		return EndSuicide
	default:
		return EndNone
	}
}

// Score is the number of body segments, head excluded.
func (g *Game) Score() int {
	return len(g.tail)
}

// IsOutOfBound reports whether the head has left the board.
func (g *Game) IsOutOfBound() bool {
	return !InBounds(g.head)
}

// IsSuicide reports whether the head sits on a body segment.
func (g *Game) IsSuicide() bool {
	return slices.Contains(g.tail, g.head)
}

// ApplePosition returns the current apple cell.
func (g *Game) ApplePosition() Position {
	return g.apple
}

// HeadPosition returns the current head cell.
func (g *Game) HeadPosition() Position {
	return g.head
}

// SnakePositions returns the body segments oldest first, followed by the head.
// The returned slice is a copy.
func (g *Game) SnakePositions() []Position {
	positions := make([]Position, 0, len(g.tail)+1)
	positions = append(positions, g.tail...)
	return append(positions, g.head)
}

// Direction returns the current direction and whether one has been set.
func (g *Game) Direction() (Direction, bool) {
	return g.direction, g.hasDirection
}

// Ticks returns the number of Tick calls so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// SetDirection changes direction when no direction is set yet or d lies on
// the other axis. Otherwise the request is ignored, so both reversing and
// repeating the current direction are no-ops.
func (g *Game) SetDirection(d Direction) {
	if g.canTurnTo(d) {
		g.direction = d
		g.hasDirection = true
	}
}

func (g *Game) canTurnTo(d Direction) bool {
	if !g.hasDirection {
		return true
	}
	return g.direction.Axis() != d.Axis()
}

// RegenerateApple moves the apple to a uniformly chosen cell not occupied by
// the snake. When the snake covers the whole board the apple stays put.
func (g *Game) RegenerateApple() {
	occupied := g.SnakePositions()

	var free []Position
	for _, cell := range Cells() {
		if !slices.Contains(occupied, cell) {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return
	}
	g.apple = free[g.rng.Intn(len(free))]
}

// Tick advances the game by one step.
//
// The apple check and the tail update use the head from before the move: the
// old head joins the body, the oldest segment is dropped unless the apple was
// eaten, and only then does the head step forward.
func (g *Game) Tick() {
	g.ticks++

	head := g.head
	appleEaten := head == g.apple

	g.tail = append(g.tail, head)
	if appleEaten {
		g.RegenerateApple()
	} else {
		g.tail = g.tail[1:]
	}

	if g.hasDirection {
		g.head = head.Move(g.direction)
	}
}
