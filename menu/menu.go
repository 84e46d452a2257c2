// Package menu is the console's root loop: a dpad-driven game list with
// best scores, delegating to the selected game until its run ends and the
// player backs out. Finished runs are submitted to the leaderboard once.
package menu

import (
	"fmt"
	"image/color"
	"log"

	"glowgrid.dev/glowgrid/highscore"
	"glowgrid.dev/glowgrid/internal/render"
	"glowgrid.dev/glowgrid/smallfont"
)

var (
	titleColor  = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	entryColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	activeColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bestColor   = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	hintColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Entry is one game in the suite.
type Entry struct {
	ID   string // stable leaderboard key, e.g. "labyrinth"
	Name string // display name
	Game render.Game
}

// Menu implements render.Loop. It owns input polling so each frame's
// snapshot is taken exactly once, whether the menu or a game consumes it.
type Menu struct {
	entries []Entry
	input   render.Input
	scores  *highscore.Store // nil disables the leaderboard

	selected  int
	active    int // index into entries while in a game, -1 otherwise
	submitted bool
	prevDpad  uint8

	best []uint32
}

// New creates the menu over the given games. scores may be nil.
func New(entries []Entry, input render.Input, scores *highscore.Store) *Menu {
	m := &Menu{
		entries: entries,
		input:   input,
		scores:  scores,
		active:  -1,
		best:    make([]uint32, len(entries)),
	}
	m.refreshBest()
	return m
}

// Update advances the menu or the active game by one frame.
func (m *Menu) Update() error {
	in := m.input.Poll()
	rising := in.Dpad &^ m.prevDpad
	m.prevDpad = in.Dpad

	if m.active >= 0 {
		game := m.entries[m.active].Game
		game.Update(in)

		if game.GameOver() {
			if !m.submitted {
				m.submitted = true
				m.submitScore(m.entries[m.active])
				m.refreshBest()
			}
			if in.Select {
				m.submitted = false
				game.Start()
			}
		}
		if in.Back {
			m.active = -1
			m.refreshBest()
		}
		return nil
	}

	if rising&render.DpadUp != 0 && m.selected > 0 {
		m.selected--
	}
	if rising&render.DpadDown != 0 && m.selected < len(m.entries)-1 {
		m.selected++
	}
	if in.Select && len(m.entries) > 0 {
		m.active = m.selected
		m.submitted = false
		m.entries[m.active].Game.Start()
	}
	return nil
}

// Draw renders the menu, or the active game.
func (m *Menu) Draw(d render.Display) {
	if m.active >= 0 {
		m.entries[m.active].Game.Draw(d)
		return
	}

	d.Fill(color.Black)
	w, _ := d.Size()
	smallfont.DrawString(d, (w-smallfont.Width("GLOWGRID"))/2, 4, "GLOWGRID", titleColor)

	y := 16
	for i, e := range m.entries {
		clr := entryColor
		if i == m.selected {
			clr = activeColor
			smallfont.DrawString(d, 2, y, ">", clr)
		}
		smallfont.DrawString(d, 8, y, e.Name, clr)
		if m.best[i] > 0 {
			smallfont.DrawString(d, 8, y+6, fmt.Sprintf("HI:%d", m.best[i]), bestColor)
		}
		y += 14
	}

	smallfont.DrawString(d, 2, 58, "A:PLAY B:BACK", hintColor)
}

// submitScore records the finished run; a storage failure is logged, not
// fatal — the run itself already happened.
func (m *Menu) submitScore(e Entry) {
	if m.scores == nil {
		return
	}
	if err := m.scores.Submit(e.ID, e.Game.Score()); err != nil {
		log.Printf("submitting %s score: %v", e.ID, err)
	}
}

func (m *Menu) refreshBest() {
	if m.scores == nil {
		return
	}
	for i, e := range m.entries {
		best, err := m.scores.Best(e.ID)
		if err != nil {
			log.Printf("loading %s best score: %v", e.ID, err)
			continue
		}
		m.best[i] = best
	}
}
