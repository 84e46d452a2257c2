package smallfont

import (
	"image/color"
	"testing"

	"glowgrid.dev/glowgrid/internal/render"
)

// recordDisplay captures SetPixel calls into a set.
type recordDisplay struct {
	pixels map[[2]int]color.Color
}

func newRecordDisplay() *recordDisplay {
	return &recordDisplay{pixels: make(map[[2]int]color.Color)}
}

func (d *recordDisplay) Size() (int, int) { return render.PanelWidth, render.PanelHeight }
func (d *recordDisplay) Fill(color.Color) {}
func (d *recordDisplay) SetPixel(x, y int, clr color.Color) {
	d.pixels[[2]int{x, y}] = clr
}
func (d *recordDisplay) FillRect(int, int, int, int, color.Color) {}

func TestWidth(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"A", 3},
		{"AB", 7},
		{"T:60", 15},
	}
	for _, c := range cases {
		if got := Width(c.s); got != c.want {
			t.Errorf("Width(%q) = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestDrawStringStaysInGlyphBox(t *testing.T) {
	d := newRecordDisplay()
	DrawString(d, 10, 20, "AZ09", color.White)

	if len(d.pixels) == 0 {
		t.Fatal("nothing drawn")
	}
	maxX := 10 + Width("AZ09") - 1
	for p := range d.pixels {
		if p[0] < 10 || p[0] > maxX || p[1] < 20 || p[1] >= 20+GlyphHeight {
			t.Fatalf("pixel (%d,%d) outside the text box", p[0], p[1])
		}
	}
}

func TestDrawStringSkipsUnknownRunes(t *testing.T) {
	d := newRecordDisplay()
	DrawString(d, 0, 0, "?", color.White)
	if len(d.pixels) != 0 {
		t.Error("unknown rune drew pixels")
	}

	// Unknown runes still advance, so surrounding text keeps its layout.
	a := newRecordDisplay()
	DrawString(a, 0, 0, "A", color.White)
	b := newRecordDisplay()
	DrawString(b, 0, 0, "?A", color.White)
	for p := range a.pixels {
		if _, ok := b.pixels[[2]int{p[0] + Advance, p[1]}]; !ok {
			t.Fatal("glyph after an unknown rune not advanced by one cell")
		}
	}
}

func TestDigitsDistinct(t *testing.T) {
	seen := map[[GlyphHeight]uint8]rune{}
	for r := '0'; r <= '9'; r++ {
		g, ok := glyphs[r]
		if !ok {
			t.Fatalf("digit %q missing from the font", r)
		}
		if prev, dup := seen[g]; dup {
			t.Errorf("digits %q and %q share a glyph", prev, r)
		}
		seen[g] = r
	}
}
