// Package maze generates the labyrinth levels: a perfect-maze carve with
// difficulty shaping on top (dead-end extension and loop injection), and a
// breadth-first pass that places the exit at the farthest reachable cell
// from the start. Generation is deterministic for a given random stream.
package maze

// Tile is the content of one maze cell.
type Tile uint8

const (
	TileWall Tile = iota
	TilePath
	TileStart
	TileExit
)

// Walkable reports whether an agent may occupy this tile.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// Maximum grid size, matching the largest supported panel (1px cells over
// the full display). Scratch buffers are sized to this once and reused.
const (
	MaxWidth  = 64
	MaxHeight = 64
	MaxCells  = MaxWidth * MaxHeight
)

// MinDim is the hard floor for maze dimensions; anything smaller is not a
// playable maze for the 2-cell carve.
const MinDim = 7

// Layout describes the pixel area the maze must fit into.
type Layout struct {
	ScreenW   int // full panel width in pixels
	ScreenH   int // full panel height in pixels
	HUDHeight int // reserved status band at the top, excluded from play
	CellSize  int // cell edge in pixels for this difficulty tier
}

// Grid is one generated maze plus the screen layout it was generated for.
// It is immutable after Generate returns, until the next level replaces it.
type Grid struct {
	Width  int
	Height int

	// CellSize, OriginX and OriginY position the maze on screen; the
	// collision mask and the draw routine both derive from these, which
	// is what keeps physics and visuals in lockstep.
	CellSize int
	OriginX  int
	OriginY  int

	StartX, StartY int
	ExitX, ExitY   int

	tiles []Tile // row-major, Width*Height
}

// At returns the tile at cell (x, y). Out-of-range cells read as Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.Width+x]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellToScreen returns the top-left screen pixel of cell (x, y).
func (g *Grid) CellToScreen(x, y int) (sx, sy int) {
	return g.OriginX + x*g.CellSize, g.OriginY + y*g.CellSize
}

// ScreenToCell maps a screen pixel back to cell coordinates. ok is false
// when the pixel lies outside the maze rectangle.
func (g *Grid) ScreenToCell(sx, sy int) (x, y int, ok bool) {
	lx := sx - g.OriginX
	ly := sy - g.OriginY
	if lx < 0 || ly < 0 {
		return 0, 0, false
	}
	x = lx / g.CellSize
	y = ly / g.CellSize
	if !g.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Grid) set(x, y int, t Tile) {
	g.tiles[y*g.Width+x] = t
}

// openNeighbors counts the orthogonal non-wall neighbors of (x, y).
func (g *Grid) openNeighbors(x, y int) int {
	n := 0
	if g.At(x, y-1).Walkable() {
		n++
	}
	if g.At(x, y+1).Walkable() {
		n++
	}
	if g.At(x-1, y).Walkable() {
		n++
	}
	if g.At(x+1, y).Walkable() {
		n++
	}
	return n
}
