// Package ebiten backs the render interfaces with Ebitengine, presenting
// the 64x64 panel as a scaled desktop window.
package ebiten

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"glowgrid.dev/glowgrid/internal/render"
)

// display implements render.Display over an ebiten.Image.
type display struct {
	img *ebiten.Image
}

// Size returns the logical panel dimensions.
func (d *display) Size() (width, height int) {
	return d.img.Bounds().Dx(), d.img.Bounds().Dy()
}

// Fill fills the whole panel with the given color.
func (d *display) Fill(clr color.Color) {
	d.img.Fill(clr)
}

// SetPixel sets a single pixel. Out-of-bounds writes are dropped.
func (d *display) SetPixel(x, y int, clr color.Color) {
	if !image.Pt(x, y).In(d.img.Bounds()) {
		return
	}
	d.img.Set(x, y, clr)
}

// FillRect fills an axis-aligned rectangle, clipped to the panel.
func (d *display) FillRect(x, y, w, h int, clr color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(d.img.Bounds())
	if r.Empty() {
		return
	}
	d.img.SubImage(r).(*ebiten.Image).Fill(clr)
}

// InputManager implements render.Input by merging the first standard
// gamepad with a keyboard fallback.
type InputManager struct {
	gamepads []ebiten.GamepadID
}

// NewInputManager creates an InputManager.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// Poll snapshots the current frame's input state.
func (m *InputManager) Poll() render.InputState {
	var st render.InputState

	m.gamepads = ebiten.AppendGamepadIDs(m.gamepads[:0])
	for _, id := range m.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		st.AxisX = axisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		st.AxisY = axisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			st.Dpad |= render.DpadUp
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			st.Dpad |= render.DpadDown
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			st.Dpad |= render.DpadLeft
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			st.Dpad |= render.DpadRight
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			st.Select = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight) {
			st.Back = true
		}
		break
	}

	// Keyboard mirrors the dpad so the suite stays playable without a pad.
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		st.Dpad |= render.DpadUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		st.Dpad |= render.DpadDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		st.Dpad |= render.DpadLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		st.Dpad |= render.DpadRight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		st.Select = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		st.Back = true
	}
	return st
}

// axisValue maps ebiten's [-1, 1] axis to the panel's signed range.
func axisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) int16 {
	v := ebiten.StandardGamepadAxisValue(id, axis)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * float64(render.AxisRange))
}

// WallClock implements render.Clock on the process monotonic clock.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock anchored at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// NowMillis returns milliseconds since the clock was created. The value
// wraps after ~49 days; callers compare via signed deltas.
func (c *WallClock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Engine implements render.Engine using ebiten's game loop.
type Engine struct {
	scale int
}

// NewEngine creates an engine that scales the panel by the given factor.
func NewEngine(scale int) *Engine {
	if scale < 1 {
		scale = 1
	}
	return &Engine{scale: scale}
}

// SetWindowTitle sets the desktop window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Run drives the loop until it returns an error or the window closes.
func (e *Engine) Run(loop render.Loop) error {
	ebiten.SetWindowSize(render.PanelWidth*e.scale, render.PanelHeight*e.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&loopAdapter{loop: loop})
}

// loopAdapter adapts a render.Loop to ebiten.Game.
type loopAdapter struct {
	loop render.Loop
}

// Update implements ebiten.Game.
func (a *loopAdapter) Update() error {
	return a.loop.Update()
}

// Draw implements ebiten.Game.
func (a *loopAdapter) Draw(screen *ebiten.Image) {
	a.loop.Draw(&display{img: screen})
}

// Layout implements ebiten.Game. The logical resolution is always the
// panel size; ebiten scales it to the window.
func (a *loopAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.PanelWidth, render.PanelHeight
}
