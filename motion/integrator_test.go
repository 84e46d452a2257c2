package motion

import (
	"math/rand"
	"testing"

	"glowgrid.dev/glowgrid/collision"
	"glowgrid.dev/glowgrid/fixed"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/maze"
)

func testLevel(t *testing.T, seed int64, cellSize int) (*maze.Grid, *collision.Mask) {
	t.Helper()
	gen := maze.NewGenerator(rand.New(rand.NewSource(seed)))
	grid := gen.Generate(1, maze.Layout{ScreenW: 64, ScreenH: 64, HUDHeight: 8, CellSize: cellSize})
	return grid, collision.Build(grid, 64, 64)
}

func startIntegrator(grid *maze.Grid, size int) *Integrator {
	it := NewIntegrator(DefaultConfig())
	sx, sy := grid.CellToScreen(grid.StartX, grid.StartY)
	it.Reset(sx+(grid.CellSize-size)/2, sy+(grid.CellSize-size)/2, 34, size)
	return it
}

// The integrator's core guarantee: whatever the input stream, the
// footprint never overlaps a solid pixel.
func TestStepNeverEntersWalls(t *testing.T) {
	grid, mask := testLevel(t, 1, 4)
	it := startIntegrator(grid, 2)

	rng := rand.New(rand.NewSource(42))
	dpads := []uint8{render.DpadUp, render.DpadDown, render.DpadLeft, render.DpadRight, 0}
	for i := 0; i < 2000; i++ {
		in := render.InputState{Dpad: dpads[rng.Intn(len(dpads))]}
		if rng.Intn(3) == 0 {
			in = render.InputState{
				AxisX: int16(rng.Intn(1025) - 512),
				AxisY: int16(rng.Intn(1025) - 512),
			}
		}
		it.Step(in, mask)

		x := fixed.Floor(it.Agent.X)
		y := fixed.Floor(it.Agent.Y)
		if mask.RectSolid(x, y, it.Agent.Size) {
			t.Fatalf("tick %d: footprint at (%d,%d) overlaps a wall", i, x, y)
		}
	}
}

// Ramming a wall head-on parks the agent against it with that axis's
// velocity zeroed; it never vibrates into or through the wall.
func TestStepStopsAtWall(t *testing.T) {
	grid, mask := testLevel(t, 2, 4)
	it := startIntegrator(grid, 2)

	// Up from the start cell is the border ring: guaranteed wall.
	for i := 0; i < 200; i++ {
		it.Step(render.InputState{Dpad: render.DpadUp}, mask)
	}

	y := fixed.Floor(it.Agent.Y)
	if mask.RectSolid(fixed.Floor(it.Agent.X), y, it.Agent.Size) {
		t.Fatal("agent ended inside a wall")
	}
	if !mask.RectSolid(fixed.Floor(it.Agent.X), y-1, it.Agent.Size) {
		t.Errorf("agent at y=%d is not flush against the wall above", y)
	}
	if it.Agent.VY != 0 {
		t.Errorf("vertical velocity %d after sustained wall contact, want 0", it.Agent.VY)
	}
}

// With no input, friction bleeds residual velocity to zero and the agent
// comes to rest instead of coasting forever.
func TestStepSettlesWhenIdle(t *testing.T) {
	grid, mask := testLevel(t, 3, 4)
	it := startIntegrator(grid, 2)

	for i := 0; i < 10; i++ {
		it.Step(render.InputState{Dpad: render.DpadRight}, mask)
	}
	for i := 0; i < 300; i++ {
		it.Step(render.InputState{}, mask)
	}

	if it.Agent.VX != 0 || it.Agent.VY != 0 {
		t.Errorf("velocity (%d,%d) after long idle, want (0,0)", it.Agent.VX, it.Agent.VY)
	}

	x, y := it.Agent.X, it.Agent.Y
	it.Step(render.InputState{}, mask)
	if it.Agent.X != x || it.Agent.Y != y {
		t.Error("agent at rest moved on an idle tick")
	}
}

// Exit detection maps the footprint-center pixel back to a cell, so it
// must hold for every cell tier and its matching agent size.
func TestAtExit(t *testing.T) {
	for _, cellSize := range []int{4, 2, 1} {
		grid, _ := testLevel(t, 5, cellSize)
		size := cellSize
		if cellSize > 2 {
			size = 2
		}
		it := NewIntegrator(DefaultConfig())

		ex, ey := grid.CellToScreen(grid.ExitX, grid.ExitY)
		it.Reset(ex+(cellSize-size)/2, ey+(cellSize-size)/2, 34, size)
		if !it.AtExit(grid) {
			t.Errorf("cell size %d: agent centered on the exit cell, AtExit = false", cellSize)
		}

		// One cell away: any walkable neighbor of the exit.
		seated := false
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			cx, cy := grid.ExitX+d[0], grid.ExitY+d[1]
			if !grid.At(cx, cy).Walkable() {
				continue
			}
			sx, sy := grid.CellToScreen(cx, cy)
			it.Reset(sx+(cellSize-size)/2, sy+(cellSize-size)/2, 34, size)
			seated = true
			break
		}
		if !seated {
			t.Fatalf("cell size %d: exit has no walkable neighbor", cellSize)
		}
		if it.AtExit(grid) {
			t.Errorf("cell size %d: agent one cell from the exit, AtExit = true", cellSize)
		}
	}
}

func TestApplyDeadzone(t *testing.T) {
	const dz = 92

	if got := applyDeadzone(50, dz); got != 0 {
		t.Errorf("inside deadzone: got %d, want 0", got)
	}
	if got := applyDeadzone(-91, dz); got != 0 {
		t.Errorf("inside deadzone (negative): got %d, want 0", got)
	}

	// Continuity at the deadzone edge: the output starts from 0.
	if got := applyDeadzone(dz, dz); got != 0 {
		t.Errorf("at deadzone edge: got %d, want 0", got)
	}

	// Full deflection still reaches full range.
	if got := applyDeadzone(render.AxisRange, dz); got != render.AxisRange {
		t.Errorf("full deflection: got %d, want %d", got, render.AxisRange)
	}
	if got := applyDeadzone(-render.AxisRange, dz); got != -render.AxisRange {
		t.Errorf("full negative deflection: got %d, want %d", got, -render.AxisRange)
	}
}

func TestShapeAxesDominantAxis(t *testing.T) {
	x, y := shapeAxes(render.InputState{AxisX: 400, AxisY: 300}, 92)
	if x == 0 || y != 0 {
		t.Errorf("diagonal with stronger X resolved to (%d,%d), want X only", x, y)
	}

	x, y = shapeAxes(render.InputState{AxisX: 200, AxisY: -500}, 92)
	if x != 0 || y >= 0 {
		t.Errorf("diagonal with stronger Y resolved to (%d,%d), want negative Y only", x, y)
	}
}

func TestShapeAxesDpadFallback(t *testing.T) {
	x, y := shapeAxes(render.InputState{Dpad: render.DpadLeft}, 92)
	if x != -render.AxisRange || y != 0 {
		t.Errorf("dpad left shaped to (%d,%d), want (%d,0)", x, y, -render.AxisRange)
	}

	// An analog deflection past the deadzone wins over the dpad.
	x, y = shapeAxes(render.InputState{AxisX: 300, Dpad: render.DpadLeft}, 92)
	if x <= 0 {
		t.Errorf("analog deflection ignored in favor of dpad: x=%d", x)
	}
}

func TestMaxStepPerTick(t *testing.T) {
	// 34 px/s at a 16ms tick: 34*256*16/1000, truncating.
	if got := maxStepPerTick(34, 16); got != 139 {
		t.Errorf("maxStepPerTick(34,16) = %d, want 139", got)
	}
	if got := maxStepPerTick(0, 16); got != 0 {
		t.Errorf("maxStepPerTick(0,16) = %d, want 0", got)
	}
}
