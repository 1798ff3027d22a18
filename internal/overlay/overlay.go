// Package overlay places the bitmap-font rendering of the configured text as
// a centered block over the rain. Compositing is a pure read: the block never
// touches grid state, it only answers which screen cells it covers.
package overlay

import "github.com/uhey22e/matrix-rain/internal/font"

// Block is the rasterized overlay text.
type Block struct {
	rows []string
	w, h int
}

// New rasterizes text through the built-in 3x5 font.
func New(text string) Block {
	rows := font.Render(text)
	return Block{rows: rows, w: font.Width(text), h: len(rows)}
}

// Size returns the block's bounding box in (columns, rows).
func (b Block) Size() (int, int) { return b.w, b.h }

// Anchor computes the top-left screen position centering the block in a
// termW x termH surface. Integer division biases toward the top-left; a
// block wider or taller than the terminal anchors at 0 and clips.
func (b Block) Anchor(termW, termH int) (int, int) {
	x, y := 0, 0
	if termW > b.w {
		x = (termW - b.w) / 2
	}
	if termH > b.h {
		y = (termH - b.h) / 2
	}
	return x, y
}

// At reports whether the pixel at block-local (x, y) is set. Out-of-bounds
// coordinates are unset, so callers may probe any screen cell safely.
func (b Block) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.rows[y][x] == '#'
}
