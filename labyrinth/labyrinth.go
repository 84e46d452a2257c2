// Package labyrinth is the maze game: procedural levels, a 60-second
// clock, and fixed-point player movement with pixel-exact collision.
// Reaching the exit banks the remaining seconds and advances to a denser
// maze; running out of time ends the run.
package labyrinth

import (
	"fmt"
	"image/color"
	"math/rand"

	"glowgrid.dev/glowgrid/collision"
	"glowgrid.dev/glowgrid/fixed"
	"glowgrid.dev/glowgrid/hud"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/maze"
	"glowgrid.dev/glowgrid/motion"
	"glowgrid.dev/glowgrid/smallfont"
)

type phase uint8

const (
	phaseFadeIn phase = iota
	phasePlaying
	phaseClearAnim
	phaseCompleteText
	phaseTimedOut
)

var (
	wallColor     = color.RGBA{R: 80, G: 120, B: 200, A: 255}
	pathColor     = color.RGBA{R: 10, G: 20, B: 40, A: 255}
	exitColor     = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	completeColor = color.RGBA{R: 0, G: 220, B: 0, A: 255}
	bonusColor    = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	overColor     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Game runs the labyrinth level lifecycle. It owns the maze, the
// collision mask and the agent; the menu layer drives it through the
// render.Game interface.
type Game struct {
	clock render.Clock
	gen   *maze.Generator
	integ *motion.Integrator

	grid *maze.Grid
	mask *collision.Mask

	level int
	score uint32
	over  bool

	phase      phase
	phaseStart uint32 // clock ms when the current phase began
	lastTick   uint32
	levelStart uint32 // clock ms when the countdown began; 0 = not started

	secondsLeft    int
	secondsAtClear int

	playerColor color.RGBA
}

// New creates the game. rng feeds maze generation only; the caller seeds
// it, which makes whole runs reproducible.
func New(clock render.Clock, rng *rand.Rand) *Game {
	return &Game{
		clock:       clock,
		gen:         maze.NewGenerator(rng),
		integ:       motion.NewIntegrator(motion.DefaultConfig()),
		playerColor: color.RGBA{R: 0, G: 255, B: 0, A: 255},
	}
}

// SetPlayerColor sets the agent color (chosen in the console settings).
func (g *Game) SetPlayerColor(clr color.RGBA) {
	g.playerColor = clr
}

// Start resets the run to level 1 and reveals the first maze.
func (g *Game) Start() {
	g.level = 1
	g.score = 0
	g.over = false
	g.lastTick = g.clock.NowMillis()
	g.enterLevel()
}

// GameOver reports whether the run ended. Level completion is a
// transition, not an ending; only a timeout finishes the run.
func (g *Game) GameOver() bool {
	return g.over
}

// Score returns the banked score of the current run.
func (g *Game) Score() uint32 {
	return g.score
}

// Level returns the 1-based level currently in play.
func (g *Game) Level() int {
	return g.level
}

// enterLevel generates the maze for the current level, rebuilds the
// collision mask, seats the agent in the start cell and begins the
// fade-in.
func (g *Game) enterLevel() {
	cell := CellSizeForLevel(g.level)
	g.grid = g.gen.Generate(g.level, maze.Layout{
		ScreenW:   render.PanelWidth,
		ScreenH:   render.PanelHeight,
		HUDHeight: hud.Height,
		CellSize:  cell,
	})
	g.mask = collision.Build(g.grid, render.PanelWidth, render.PanelHeight)

	speed := baseSpeedForCell(cell) + g.level/4
	if speed > maxSpeedPxPerS {
		speed = maxSpeedPxPerS
	}
	size := agentSizeForCell(cell)

	// Center the footprint inside the start cell.
	sx, sy := g.grid.CellToScreen(g.grid.StartX, g.grid.StartY)
	g.integ.Reset(sx+(cell-size)/2, sy+(cell-size)/2, speed, size)

	g.phase = phaseFadeIn
	g.phaseStart = g.clock.NowMillis()
	g.levelStart = 0
	g.secondsLeft = levelTimeMillis / 1000
}

// Update advances the lifecycle one frame. Gameplay only runs in the
// Playing phase and only when the 16ms tick budget has elapsed.
func (g *Game) Update(in render.InputState) {
	if g.over {
		return
	}
	now := g.clock.NowMillis()

	switch g.phase {
	case phaseFadeIn:
		// The reveal blocks gameplay and freezes the clock.
		if elapsed(now, g.phaseStart) >= fadeInMillis {
			g.phase = phasePlaying
			g.levelStart = now
			g.secondsLeft = levelTimeMillis / 1000
		}
		return

	case phaseClearAnim:
		if elapsed(now, g.phaseStart) >= clearAnimMillis {
			g.phase = phaseCompleteText
			g.phaseStart = now
		}
		return

	case phaseCompleteText:
		if elapsed(now, g.phaseStart) >= completeTextMillis {
			g.score += uint32(g.secondsAtClear) + levelClearBonus
			g.level++
			g.enterLevel()
		}
		return

	case phaseTimedOut:
		return
	}

	// Playing. Skip frames that arrive inside the tick budget; they are
	// dropped, not queued.
	if elapsed(now, g.lastTick) < tickMillis {
		return
	}
	g.lastTick = now

	g.secondsLeft = g.computeSecondsLeft(now)
	if g.secondsLeft == 0 {
		g.phase = phaseTimedOut
		g.over = true
		return
	}

	g.integ.Step(in, g.mask)

	if g.integ.AtExit(g.grid) {
		g.secondsAtClear = g.secondsLeft
		g.phase = phaseClearAnim
		g.phaseStart = now
	}
}

// computeSecondsLeft rounds up so the display shows the full 60 at the
// start and the player gets credit for partial seconds.
func (g *Game) computeSecondsLeft(now uint32) int {
	if g.levelStart == 0 {
		return levelTimeMillis / 1000
	}
	e := elapsed(now, g.levelStart)
	if e >= levelTimeMillis {
		return 0
	}
	s := (levelTimeMillis - int(e) + 999) / 1000
	if s > levelTimeMillis/1000 {
		s = levelTimeMillis / 1000
	}
	return s
}

// Draw renders the current phase. Fades scale the maze-area colors toward
// black; the HUD band is never faded.
func (g *Game) Draw(d render.Display) {
	d.Fill(color.Black)

	if g.over {
		w, _ := d.Size()
		smallfont.DrawString(d, (w-smallfont.Width("GAME OVER"))/2, 26, "GAME OVER", overColor)
		s := fmt.Sprintf("S:%d", g.score)
		smallfont.DrawString(d, (w-smallfont.Width(s))/2, 34, s, bonusColor)
		return
	}

	hud.Draw(d, g.score, g.secondsLeft)

	if g.phase == phaseCompleteText {
		ox, oy := g.grid.OriginX, g.grid.OriginY
		smallfont.DrawString(d, ox+8, oy+18, "COMPLETED", completeColor)
		smallfont.DrawString(d, ox+12, oy+28, fmt.Sprintf("+%d", g.secondsAtClear+levelClearBonus), bonusColor)
		return
	}

	a := g.fadeAlpha(g.clock.NowMillis())
	wall := scaleColor(wallColor, a)
	path := scaleColor(pathColor, a)
	exit := scaleColor(exitColor, a)

	for cy := 0; cy < g.grid.Height; cy++ {
		for cx := 0; cx < g.grid.Width; cx++ {
			sx, sy := g.grid.CellToScreen(cx, cy)
			var clr color.RGBA
			switch g.grid.At(cx, cy) {
			case maze.TileWall:
				clr = wall
			case maze.TileExit:
				clr = exit
			default:
				clr = path
			}
			d.FillRect(sx, sy, g.grid.CellSize, g.grid.CellSize, clr)
		}
	}

	agent := g.integ.Agent
	d.FillRect(fixed.Floor(agent.X), fixed.Floor(agent.Y), agent.Size, agent.Size, scaleColor(g.playerColor, a))
}

// fadeAlpha returns the maze-area brightness for the current phase:
// 0..255 rising during the reveal, falling during the clear animation,
// and full otherwise.
func (g *Game) fadeAlpha(now uint32) uint8 {
	var dur int
	switch g.phase {
	case phaseFadeIn:
		dur = fadeInMillis
	case phaseClearAnim:
		dur = clearAnimMillis
	default:
		return 255
	}
	e := int(elapsed(now, g.phaseStart))
	if e >= dur {
		e = dur
	}
	a := uint8(e * 255 / dur)
	if g.phase == phaseClearAnim {
		return 255 - a
	}
	return a
}

// scaleColor darkens clr toward black by alpha (255 = unchanged).
func scaleColor(clr color.RGBA, alpha uint8) color.RGBA {
	if alpha == 255 {
		return clr
	}
	return color.RGBA{
		R: uint8((int(clr.R)*int(alpha) + 127) / 255),
		G: uint8((int(clr.G)*int(alpha) + 127) / 255),
		B: uint8((int(clr.B)*int(alpha) + 127) / 255),
		A: 255,
	}
}

// elapsed returns now-then in milliseconds, safe across counter
// wraparound. Negative when now precedes then.
func elapsed(now, then uint32) int32 {
	return int32(now - then)
}
