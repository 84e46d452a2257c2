// Package render defines the interfaces between the game logic and the
// display/input backend. Games only see these types; the ebiten backend
// (or anything else that can push 64x64 pixels) lives behind them, so the
// core stays free of engine imports and is trivially testable.
package render

import "image/color"

// Panel dimensions of the virtual LED matrix, in logical pixels.
const (
	PanelWidth  = 64
	PanelHeight = 64
)

// Display is the drawing surface for one frame of the LED matrix.
// Coordinates are logical panel pixels; the backend is responsible for
// scaling them up to whatever it actually renders on.
type Display interface {
	// Size returns the panel dimensions in logical pixels.
	Size() (width, height int)

	// Fill floods the whole panel with a single color.
	Fill(clr color.Color)

	// SetPixel sets a single logical pixel. Out-of-bounds calls are ignored.
	SetPixel(x, y int, clr color.Color)

	// FillRect fills the rectangle [x, x+w) x [y, y+h), clipped to the panel.
	FillRect(x, y, w, h int, clr color.Color)
}

// Dpad bitmask values, one bit per direction. The layout matches common
// gamepad dpad reports (up/down/right/left).
const (
	DpadUp    uint8 = 0x01
	DpadDown  uint8 = 0x02
	DpadRight uint8 = 0x04
	DpadLeft  uint8 = 0x08
)

// AxisRange is the nominal magnitude of a fully deflected analog axis.
// Raw values are roughly in [-AxisRange, AxisRange].
const AxisRange int16 = 512

// InputState is one controller snapshot, polled once per tick.
type InputState struct {
	// AxisX and AxisY are the left-stick analog axes in raw units,
	// roughly +-512, positive right/down.
	AxisX int16
	AxisY int16

	// Dpad is the digital 4-direction bitmask (Dpad* constants).
	Dpad uint8

	// Select and Back are edge-triggered menu buttons: true only on the
	// tick the button went down.
	Select bool
	Back   bool
}

// Input polls the active controller. Implementations merge whatever
// physical devices exist (gamepad, keyboard) into one InputState.
type Input interface {
	Poll() InputState
}

// Clock supplies a millisecond counter for game timing. The counter is a
// fixed-width value that may wrap; consumers must compare timestamps with
// signed subtraction (int32(now - then)) rather than direct ordering.
type Clock interface {
	NowMillis() uint32
}

// Game is the interface every game in the suite implements. The engine
// calls Start once when the game is entered, then Update and Draw each
// frame until GameOver reports true.
type Game interface {
	// Start resets the game to a fresh run.
	Start()

	// Update advances game logic by one frame using the polled input.
	Update(in InputState)

	// Draw renders the current state onto the panel.
	Draw(d Display)

	// GameOver reports whether the run has ended (score may be submitted).
	GameOver() bool

	// Score returns the score of the current run for the leaderboard.
	Score() uint32
}

// Engine owns the backend frame loop and window.
type Engine interface {
	// SetWindowTitle sets the host window title.
	SetWindowTitle(title string)

	// Run drives the root game loop. Blocking; returns when the host
	// window closes or the loop fails.
	Run(root Loop) error
}

// Loop is the root update/draw pair the Engine drives. The menu layer
// implements it and delegates to the active Game.
type Loop interface {
	Update() error
	Draw(d Display)
}
