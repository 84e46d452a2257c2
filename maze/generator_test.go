package maze

import (
	"math/rand"
	"testing"
)

func panelLayout(cellSize int) Layout {
	return Layout{ScreenW: 64, ScreenH: 64, HUDHeight: 8, CellSize: cellSize}
}

func generate(t *testing.T, seed int64, level, cellSize int) *Grid {
	t.Helper()
	gen := NewGenerator(rand.New(rand.NewSource(seed)))
	return gen.Generate(level, panelLayout(cellSize))
}

func TestGenerateDimensions(t *testing.T) {
	for _, cellSize := range []int{4, 2, 1} {
		g := generate(t, 1, 1, cellSize)

		if g.Width%2 == 0 || g.Height%2 == 0 {
			t.Errorf("cell size %d: dimensions %dx%d, want both odd", cellSize, g.Width, g.Height)
		}
		if g.Width < MinDim || g.Height < MinDim {
			t.Errorf("cell size %d: dimensions %dx%d, want >= %d", cellSize, g.Width, g.Height, MinDim)
		}
		if g.Width*cellSize > 64 {
			t.Errorf("cell size %d: maze width %d px overflows the panel", cellSize, g.Width*cellSize)
		}
		if g.OriginY < 8 {
			t.Errorf("cell size %d: OriginY %d overlaps the HUD band", cellSize, g.OriginY)
		}
		if g.OriginY+g.Height*cellSize > 64 {
			t.Errorf("cell size %d: maze bottom %d px overflows the panel", cellSize, g.OriginY+g.Height*cellSize)
		}
	}
}

func TestGenerateStartAndExit(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := generate(t, seed, 5, 2)

		if g.StartX != 1 || g.StartY != 1 {
			t.Errorf("seed %d: start at (%d,%d), want (1,1)", seed, g.StartX, g.StartY)
		}
		if g.ExitX == g.StartX && g.ExitY == g.StartY {
			t.Errorf("seed %d: exit coincides with start", seed)
		}

		starts, exits := 0, 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				switch g.At(x, y) {
				case TileStart:
					starts++
				case TileExit:
					exits++
				}
			}
		}
		if starts != 1 || exits != 1 {
			t.Errorf("seed %d: %d starts and %d exits, want exactly 1 of each", seed, starts, exits)
		}
	}
}

// Every walkable cell, the exit included, must be reachable from the
// start: the shaping passes only ever open walls next to corridor, so a
// disconnected pocket means a generation bug.
func TestGenerateConnectivity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := generate(t, seed, 12, 2)

		seen := make([]bool, g.Width*g.Height)
		queue := []int{g.StartY*g.Width + g.StartX}
		seen[queue[0]] = true
		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			x, y := idx%g.Width, idx/g.Width
			for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) || !g.At(nx, ny).Walkable() {
					continue
				}
				ni := ny*g.Width + nx
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}

		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(x, y).Walkable() && !seen[y*g.Width+x] {
					t.Fatalf("seed %d: walkable cell (%d,%d) unreachable from start", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateBorderStaysWalled(t *testing.T) {
	g := generate(t, 7, 25, 1)
	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) != TileWall || g.At(x, g.Height-1) != TileWall {
			t.Fatalf("border cell in column %d is not wall", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) != TileWall || g.At(g.Width-1, y) != TileWall {
			t.Fatalf("border cell in row %d is not wall", y)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, 99, 8, 2)
	b := generate(t, 99, 8, 2)

	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("dimensions differ: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	if a.ExitX != b.ExitX || a.ExitY != b.ExitY {
		t.Errorf("exits differ: (%d,%d) vs (%d,%d)", a.ExitX, a.ExitY, b.ExitX, b.ExitY)
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("tile (%d,%d) differs between identically seeded runs", x, y)
			}
		}
	}
}

func TestScreenCellMapping(t *testing.T) {
	g := generate(t, 3, 1, 4)

	sx, sy := g.CellToScreen(2, 3)
	cx, cy, ok := g.ScreenToCell(sx, sy)
	if !ok || cx != 2 || cy != 3 {
		t.Errorf("ScreenToCell(CellToScreen(2,3)) = (%d,%d,%v), want (2,3,true)", cx, cy, ok)
	}

	// Last pixel of a cell still maps to that cell.
	cx, cy, ok = g.ScreenToCell(sx+3, sy+3)
	if !ok || cx != 2 || cy != 3 {
		t.Errorf("cell-interior pixel mapped to (%d,%d,%v), want (2,3,true)", cx, cy, ok)
	}

	if _, _, ok := g.ScreenToCell(0, 0); ok {
		t.Error("pixel in the HUD band mapped to a cell")
	}
}

func TestAtOutOfBoundsReadsWall(t *testing.T) {
	g := generate(t, 3, 1, 4)
	if g.At(-1, 0) != TileWall || g.At(0, -1) != TileWall || g.At(g.Width, 0) != TileWall {
		t.Error("out-of-range At should read as wall")
	}
}
