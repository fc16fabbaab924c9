package snake

// Snapshot captures the observable game state for determinism testing and
// logging.
type Snapshot struct {
	Tick         uint64
	Score        int
	SnakeLen     int
	Head         Position
	Apple        Position
	Dir          Direction
	HasDirection bool
	End          EndReason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.ticks,
		Score:        g.Score(),
		SnakeLen:     len(g.tail) + 1,
		Head:         g.head,
		Apple:        g.apple,
		Dir:          g.direction,
		HasDirection: g.hasDirection,
		End:          g.EndReason(),
	}
}
