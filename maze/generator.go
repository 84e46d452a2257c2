package maze

import "math/rand"

// Shaping limits. Counts scale with cell count and level but stay inside
// these ranges so small mazes aren't shredded and big ones stay bounded.
const (
	minDeadEndExtensions = 4
	maxDeadEndExtensions = 60
	minLoopOpenings      = 2
	maxLoopOpenings      = 40
	minWalkSteps         = 4
	maxWalkSteps         = 10

	// Random sampling budgets for the best-effort shaping passes.
	deadEndSampleBudget = 60
	loopSampleBudget    = 18
)

// Generator carves mazes. It owns fixed-size scratch buffers for the carve
// stack and the BFS queue, reused across levels, so generation allocates
// only the returned grid.
type Generator struct {
	rng *rand.Rand

	stack []uint16
	queue []uint16
	dist  []int16
}

// NewGenerator creates a Generator drawing randomness from rng. The caller
// seeds rng; the generator never does.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		rng:   rng,
		stack: make([]uint16, MaxCells),
		queue: make([]uint16, MaxCells),
		dist:  make([]int16, MaxCells),
	}
}

// Generate builds the maze for the given level inside lay. The returned
// grid has exactly one Start (always cell (1,1)) and one Exit, and the
// exit is reachable from the start by construction.
func (g *Generator) Generate(level int, lay Layout) *Grid {
	grid := newGrid(lay)

	const startX, startY = 1, 1
	g.carve(grid, startX, startY)

	// Difficulty shaping. Both passes preserve connectivity: they only
	// ever open wall cells adjacent to existing corridor.
	cells := grid.Width * grid.Height
	extensions := clamp(cells/90+level/3, minDeadEndExtensions, maxDeadEndExtensions)
	walkSteps := clamp(4+level/4, minWalkSteps, maxWalkSteps)
	openings := clamp(cells/140+level/4, minLoopOpenings, maxLoopOpenings)
	g.extendDeadEnds(grid, startX, startY, extensions, walkSteps)
	g.addLoops(grid, openings)

	exitX, exitY := g.farthestFrom(grid, startX, startY)
	grid.StartX, grid.StartY = startX, startY
	grid.ExitX, grid.ExitY = exitX, exitY
	grid.set(startX, startY, TileStart)
	grid.set(exitX, exitY, TileExit)

	return grid
}

// newGrid sizes and centers an all-wall grid inside the layout. Dimensions
// are forced odd (the 2-cell carve needs odd spans) with a floor of MinDim.
func newGrid(lay Layout) *Grid {
	availW := lay.ScreenW
	availH := lay.ScreenH - lay.HUDHeight

	w := availW / lay.CellSize
	h := availH / lay.CellSize
	if w%2 == 0 {
		w--
	}
	if h%2 == 0 {
		h--
	}
	if w < MinDim {
		w = MinDim
	}
	if h < MinDim {
		h = MinDim
	}

	grid := &Grid{
		Width:    w,
		Height:   h,
		CellSize: lay.CellSize,
		OriginX:  (availW - w*lay.CellSize) / 2,
		OriginY:  lay.HUDHeight + (availH-h*lay.CellSize)/2,
		tiles:    make([]Tile, w*h),
	}
	return grid
}

var dirX = [4]int{0, 0, -1, 1}
var dirY = [4]int{-1, 1, 0, 0}

// carve runs a recursive backtracker with an explicit stack: repeatedly
// jump two cells into unvisited interior, carving the bridge cell and the
// destination, backtracking when no candidate remains. The result is a
// spanning tree over the odd-coordinate cells.
func (g *Generator) carve(grid *Grid, startX, startY int) {
	top := 0
	g.stack[top] = pack(grid, startX, startY)
	grid.set(startX, startY, TilePath)

	for top >= 0 {
		cx, cy := unpack(grid, g.stack[top])

		var candidates [4]int
		n := 0
		for dir := 0; dir < 4; dir++ {
			nx := cx + dirX[dir]*2
			ny := cy + dirY[dir]*2
			// Stay inside the interior; the outer ring remains wall.
			if nx > 0 && nx < grid.Width-1 && ny > 0 && ny < grid.Height-1 && grid.At(nx, ny) == TileWall {
				candidates[n] = dir
				n++
			}
		}

		if n == 0 {
			top--
			continue
		}

		dir := candidates[g.rng.Intn(n)]
		bx := cx + dirX[dir]
		by := cy + dirY[dir]
		nx := cx + dirX[dir]*2
		ny := cy + dirY[dir]*2

		grid.set(bx, by, TilePath)
		grid.set(nx, ny, TilePath)

		top++
		g.stack[top] = pack(grid, nx, ny)
	}
}

// extendDeadEnds grows false leads: it samples random interior cells until
// it hits a dead end (exactly one open neighbor), then carves a short
// random walk into the surrounding wall, stopping as soon as the walk
// would merge into other corridor. Best-effort: when sampling keeps
// missing, the pass ends early with fewer extensions than requested.
func (g *Generator) extendDeadEnds(grid *Grid, startX, startY, extensions, maxSteps int) {
	for i := 0; i < extensions; i++ {
		x, y := -1, -1
		for a := 0; a < deadEndSampleBudget; a++ {
			rx := 1 + g.rng.Intn(grid.Width-2)
			ry := 1 + g.rng.Intn(grid.Height-2)
			if grid.At(rx, ry) != TilePath {
				continue
			}
			if rx == startX && ry == startY {
				continue
			}
			if grid.openNeighbors(rx, ry) != 1 {
				continue
			}
			x, y = rx, ry
			break
		}
		if x < 0 {
			// No dead ends left to find (or the maze is already loopy).
			return
		}

		for step := 0; step < maxSteps; step++ {
			var dirs [4]int
			n := 0
			for dir := 0; dir < 4; dir++ {
				nx := x + dirX[dir]
				ny := y + dirY[dir]
				// The outer ring stays wall; the walk carves interior only.
				if nx > 0 && nx < grid.Width-1 && ny > 0 && ny < grid.Height-1 && grid.At(nx, ny) == TileWall {
					dirs[n] = dir
					n++
				}
			}
			if n == 0 {
				break
			}

			dir := dirs[g.rng.Intn(n)]
			x += dirX[dir]
			y += dirY[dir]
			grid.set(x, y, TilePath)

			// Carved into a junction: stop here, we want corridors.
			if grid.openNeighbors(x, y) >= 2 {
				break
			}
		}
	}
}

// addLoops breaks the single-solution tree property by opening walls that
// bridge two parallel corridors. A wall qualifies only when exactly one
// opposite pair of its neighbors is open (up+down or left+right), which
// merges corridors without creating open 2x2 blobs.
func (g *Generator) addLoops(grid *Grid, openings int) {
	for i := 0; i < openings; i++ {
		for try := 0; try < loopSampleBudget; try++ {
			x := 1 + g.rng.Intn(grid.Width-2)
			y := 1 + g.rng.Intn(grid.Height-2)
			if grid.At(x, y) != TileWall {
				continue
			}

			up := grid.At(x, y-1).Walkable()
			down := grid.At(x, y+1).Walkable()
			left := grid.At(x-1, y).Walkable()
			right := grid.At(x+1, y).Walkable()

			vertical := up && down && !left && !right
			horizontal := left && right && !up && !down
			if vertical || horizontal {
				grid.set(x, y, TilePath)
				break
			}
		}
	}
}

// farthestFrom runs BFS over walkable cells and returns the cell with the
// maximum shortest-path distance from (startX, startY). Ties go to the
// earliest-discovered cell. Because the carve connects every corridor to
// the start, the result is always reachable.
func (g *Generator) farthestFrom(grid *Grid, startX, startY int) (int, int) {
	total := grid.Width * grid.Height
	for i := 0; i < total; i++ {
		g.dist[i] = -1
	}

	head, tail := 0, 0
	g.queue[tail] = pack(grid, startX, startY)
	tail++
	g.dist[startY*grid.Width+startX] = 0

	bestX, bestY := startX, startY
	bestD := int16(0)

	for head < tail {
		cx, cy := unpack(grid, g.queue[head])
		head++
		cd := g.dist[cy*grid.Width+cx]

		if cd > bestD {
			bestD = cd
			bestX, bestY = cx, cy
		}

		for dir := 0; dir < 4; dir++ {
			nx := cx + dirX[dir]
			ny := cy + dirY[dir]
			if !grid.InBounds(nx, ny) || !grid.At(nx, ny).Walkable() {
				continue
			}
			ni := ny*grid.Width + nx
			if g.dist[ni] != -1 {
				continue
			}
			g.dist[ni] = cd + 1
			g.queue[tail] = uint16(ni)
			tail++
		}
	}

	return bestX, bestY
}

func pack(grid *Grid, x, y int) uint16 {
	return uint16(y*grid.Width + x)
}

func unpack(grid *Grid, v uint16) (int, int) {
	return int(v) % grid.Width, int(v) / grid.Width
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
