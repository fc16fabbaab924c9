package snake

// Axis groups directions into two classes. A turn is only accepted onto the
// other axis.
//
// Up and Down are labelled Horizontal and Left and Right Vertical. The labels
// are kept as they are: only their inequality matters for turn validation.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Axis returns the axis d belongs to.
func (d Direction) Axis() Axis {
	switch d {
	case Up, Down:
		return Horizontal
	default:
		return Vertical
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
