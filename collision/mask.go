// Package collision builds the per-pixel walkability mask for a maze. The
// mask is derived from the same grid and layout constants the renderer
// paints from, so what the player sees is exactly what they collide with.
package collision

import "glowgrid.dev/glowgrid/maze"

// Mask is a screen-sized walkability bitmap. A pixel is solid when it is
// a wall, outside the maze rectangle, inside the HUD band, or off screen.
// Read-only once built; rebuilt whenever the maze changes.
type Mask struct {
	width  int
	height int
	solid  []bool // row-major, width*height
}

// Build constructs the mask for grid over a screenW x screenH display.
// Every pixel starts solid; each non-wall cell then carves its
// CellSize x CellSize pixel block, clipped to the screen.
func Build(grid *maze.Grid, screenW, screenH int) *Mask {
	m := &Mask{
		width:  screenW,
		height: screenH,
		solid:  make([]bool, screenW*screenH),
	}
	for i := range m.solid {
		m.solid[i] = true
	}

	for cy := 0; cy < grid.Height; cy++ {
		for cx := 0; cx < grid.Width; cx++ {
			if !grid.At(cx, cy).Walkable() {
				continue
			}
			sx0, sy0 := grid.CellToScreen(cx, cy)
			for dy := 0; dy < grid.CellSize; dy++ {
				sy := sy0 + dy
				if sy < 0 || sy >= screenH {
					continue
				}
				for dx := 0; dx < grid.CellSize; dx++ {
					sx := sx0 + dx
					if sx < 0 || sx >= screenW {
						continue
					}
					m.solid[sy*screenW+sx] = false
				}
			}
		}
	}
	return m
}

// Size returns the mask dimensions in pixels.
func (m *Mask) Size() (w, h int) {
	return m.width, m.height
}

// Solid reports whether the pixel at (x, y) is solid. Out-of-bounds
// pixels are solid.
func (m *Mask) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return true
	}
	return m.solid[y*m.width+x]
}

// RectSolid reports whether any pixel of the size x size square with
// top-left corner (x, y) is solid, including any part off screen. This is
// the footprint test the motion integrator runs after every sub-step.
func (m *Mask) RectSolid(x, y, size int) bool {
	maxX := x + size - 1
	maxY := y + size - 1
	if x < 0 || y < 0 || maxX >= m.width || maxY >= m.height {
		return true
	}
	for py := y; py <= maxY; py++ {
		for px := x; px <= maxX; px++ {
			if m.solid[py*m.width+px] {
				return true
			}
		}
	}
	return false
}
