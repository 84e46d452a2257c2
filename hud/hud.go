// Package hud draws the shared status band across the top of the panel:
// score on the left, an optional countdown on the right, and a dotted
// divider separating the band from the playfield. Every game in the suite
// uses the same band so the reserved area is consistent.
package hud

import (
	"fmt"
	"image/color"

	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/smallfont"
)

// Height of the reserved band in pixels. Playfields start below this.
const Height = 8

var (
	scoreColor   = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	timerColor   = color.RGBA{R: 0, G: 220, B: 220, A: 255}
	dividerColor = color.RGBA{R: 60, G: 80, B: 255, A: 255}
)

// Draw renders the band with a score and a seconds countdown.
func Draw(d render.Display, score uint32, secondsLeft int) {
	drawCommon(d, score)
	t := fmt.Sprintf("T:%d", secondsLeft)
	w, _ := d.Size()
	smallfont.DrawString(d, w-2-smallfont.Width(t), 1, t, timerColor)
}

// DrawScore renders the band with only a score, for games with no timer.
func DrawScore(d render.Display, score uint32) {
	drawCommon(d, score)
}

func drawCommon(d render.Display, score uint32) {
	smallfont.DrawString(d, 2, 1, fmt.Sprintf("S:%d", score), scoreColor)
	w, _ := d.Size()
	for x := 0; x < w; x += 2 {
		d.SetPixel(x, Height-1, dividerColor)
	}
}
