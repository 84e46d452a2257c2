package labyrinth

// Gameplay tuning for the labyrinth. Everything time-based is in
// milliseconds of the wraparound clock.
const (
	// One minute on the clock per level. The countdown starts after the
	// reveal so the player never loses time to the fade-in.
	levelTimeMillis = 60 * 1000

	// Transition durations.
	fadeInMillis       = 1000
	clearAnimMillis    = 1000
	completeTextMillis = 750

	// Logic tick budget. Frames arriving faster than this are skipped.
	tickMillis = 16

	// Clearing a level is worth the seconds left on the clock plus this.
	levelClearBonus = 10

	// Speed cap in px/s regardless of level scaling.
	maxSpeedPxPerS = 42
)

// CellSizeForLevel maps difficulty to the cell edge in pixels. Smaller
// cells mean a bigger maze on the same panel. Exported so tooling renders
// the same tiers the console plays.
func CellSizeForLevel(level int) int {
	switch {
	case level > 20:
		return 1
	case level > 10:
		return 2
	default:
		return 4
	}
}

// baseSpeedForCell keeps the small-cell tiers playable: tighter corridors
// get a slower agent so precision stays possible.
func baseSpeedForCell(cellSize int) int {
	switch cellSize {
	case 4:
		return 34
	case 2:
		return 28
	default:
		return 22
	}
}

// agentSizeForCell matches the footprint to the corridor width in the
// small tiers; the 4px tier uses a 2px agent for breathing room.
func agentSizeForCell(cellSize int) int {
	if cellSize <= 2 {
		return cellSize
	}
	return 2
}
