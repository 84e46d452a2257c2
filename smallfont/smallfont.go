// Package smallfont renders a 3x5 pixel font, the largest text that fits
// usefully on a 64x64 panel. Glyphs cover digits, upper-case letters and
// the few punctuation marks the HUD and menus need.
package smallfont

import (
	"image/color"

	"glowgrid.dev/glowgrid/internal/render"
)

// Glyph metrics in pixels.
const (
	GlyphWidth  = 3
	GlyphHeight = 5
	Advance     = 4 // glyph width plus one column of spacing
)

// glyphs holds one 3-bit row value per glyph row, top to bottom, with the
// most significant bit on the left.
var glyphs = map[rune][GlyphHeight]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b010, 0b001},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'>': {0b100, 0b010, 0b001, 0b010, 0b100},
	' ': {},
}

// DrawString draws s with its top-left corner at (x, y). Unknown runes
// advance without drawing.
func DrawString(d render.Display, x, y int, s string, clr color.Color) {
	cx := x
	for _, r := range s {
		g, ok := glyphs[r]
		if ok {
			for row := 0; row < GlyphHeight; row++ {
				bits := g[row]
				for col := 0; col < GlyphWidth; col++ {
					if bits&(1<<(GlyphWidth-1-col)) != 0 {
						d.SetPixel(cx+col, y+row, clr)
					}
				}
			}
		}
		cx += Advance
	}
}

// Width returns the pixel width of s when drawn.
func Width(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*Advance - 1
}
