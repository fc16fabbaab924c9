package snake

import "fmt"

// Board geometry. Rows and columns both span [MinCoord, MaxCoord].
const (
	MinCoord  = -5
	MaxCoord  = 4
	BoardSize = MaxCoord - MinCoord + 1

	// ScoreLimit ends the game once reached. A 10x10 board fills up at 99.
	ScoreLimit = 100
)

// Position identifies a board cell.
type Position struct {
	Row int
	Col int
}

// Move returns the neighbouring cell one step in direction d.
func (p Position) Move(d Direction) Position {
	switch d {
	case Up:
		return Position{Row: p.Row - 1, Col: p.Col}
	case Down:
		return Position{Row: p.Row + 1, Col: p.Col}
	case Left:
		return Position{Row: p.Row, Col: p.Col - 1}
	case Right:
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds reports whether p lies on the board.
func InBounds(p Position) bool {
	return p.Row >= MinCoord && p.Row <= MaxCoord &&
		p.Col >= MinCoord && p.Col <= MaxCoord
}

// Cells enumerates every board cell in row-major order.
func Cells() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for row := MinCoord; row <= MaxCoord; row++ {
		for col := MinCoord; col <= MaxCoord; col++ {
			cells = append(cells, Position{Row: row, Col: col})
		}
	}
	return cells
}
