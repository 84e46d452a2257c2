// Package snake is the classic snake on a 2px grid, the second game of
// the suite. It exists mostly to keep the shared Game/Display/Input
// boundary honest with more than one implementation behind it.
package snake

import (
	"image/color"
	"math/rand"

	"glowgrid.dev/glowgrid/hud"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/smallfont"
)

const (
	cellSize = 2

	gridW = render.PanelWidth / cellSize
	gridH = (render.PanelHeight - hud.Height) / cellSize

	stepMillis   = 120
	initialLen   = 3
	pointsPerBit = 1
)

var (
	bodyColor  = color.RGBA{R: 0, G: 220, B: 80, A: 255}
	headColor  = color.RGBA{R: 160, G: 255, B: 160, A: 255}
	foodColor  = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	frameColor = color.RGBA{R: 80, G: 120, B: 200, A: 255}
	overColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

type point struct {
	X, Y int
}

// Game is one snake run.
type Game struct {
	clock render.Clock
	rng   *rand.Rand

	body []point // head first
	dir  point
	next point // direction taken at the next step, set from input
	food point

	score    uint32
	over     bool
	lastStep uint32
}

// New creates the game; rng places the food.
func New(clock render.Clock, rng *rand.Rand) *Game {
	return &Game{clock: clock, rng: rng}
}

// Start resets to a short snake in the middle of the field.
func (g *Game) Start() {
	g.body = g.body[:0]
	for i := 0; i < initialLen; i++ {
		g.body = append(g.body, point{X: gridW/2 - i, Y: gridH / 2})
	}
	g.dir = point{X: 1}
	g.next = g.dir
	g.score = 0
	g.over = false
	g.lastStep = g.clock.NowMillis()
	g.placeFood()
}

// GameOver reports whether the snake died.
func (g *Game) GameOver() bool {
	return g.over
}

// Score returns the current run's score.
func (g *Game) Score() uint32 {
	return g.score
}

// Update steers from the dpad and advances the snake on its step timer.
func (g *Game) Update(in render.InputState) {
	if g.over {
		return
	}

	// Latched steering; reversing into the neck is ignored.
	if d, ok := dpadDir(in.Dpad); ok && (d.X != -g.dir.X || d.Y != -g.dir.Y) {
		g.next = d
	}

	now := g.clock.NowMillis()
	if int32(now-g.lastStep) < stepMillis {
		return
	}
	g.lastStep = now

	g.dir = g.next
	head := point{X: g.body[0].X + g.dir.X, Y: g.body[0].Y + g.dir.Y}

	if head.X <= 0 || head.X >= gridW-1 || head.Y <= 0 || head.Y >= gridH-1 {
		g.over = true
		return
	}
	for _, p := range g.body[:len(g.body)-1] {
		if p == head {
			g.over = true
			return
		}
	}

	grew := head == g.food
	g.body = append([]point{head}, g.body...)
	if grew {
		g.score += pointsPerBit
		g.placeFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

// placeFood picks a free cell inside the walls.
func (g *Game) placeFood() {
	for {
		p := point{X: 1 + g.rng.Intn(gridW-2), Y: 1 + g.rng.Intn(gridH-2)}
		free := true
		for _, b := range g.body {
			if b == p {
				free = false
				break
			}
		}
		if free {
			g.food = p
			return
		}
	}
}

// Draw renders the HUD band, the border walls, food and the snake.
func (g *Game) Draw(d render.Display) {
	d.Fill(color.Black)
	hud.DrawScore(d, g.score)

	if g.over {
		w, _ := d.Size()
		smallfont.DrawString(d, (w-smallfont.Width("GAME OVER"))/2, 28, "GAME OVER", overColor)
		return
	}

	for x := 0; x < gridW; x++ {
		fillCell(d, point{X: x, Y: 0}, frameColor)
		fillCell(d, point{X: x, Y: gridH - 1}, frameColor)
	}
	for y := 0; y < gridH; y++ {
		fillCell(d, point{X: 0, Y: y}, frameColor)
		fillCell(d, point{X: gridW - 1, Y: y}, frameColor)
	}

	fillCell(d, g.food, foodColor)
	for i, p := range g.body {
		clr := bodyColor
		if i == 0 {
			clr = headColor
		}
		fillCell(d, p, clr)
	}
}

func fillCell(d render.Display, p point, clr color.Color) {
	d.FillRect(p.X*cellSize, hud.Height+p.Y*cellSize, cellSize, cellSize, clr)
}

func dpadDir(dpad uint8) (point, bool) {
	switch {
	case dpad&render.DpadUp != 0:
		return point{Y: -1}, true
	case dpad&render.DpadDown != 0:
		return point{Y: 1}, true
	case dpad&render.DpadLeft != 0:
		return point{X: -1}, true
	case dpad&render.DpadRight != 0:
		return point{X: 1}, true
	}
	return point{}, false
}
