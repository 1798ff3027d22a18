package font

import "strings"

const (
	// GlyphWidth and GlyphHeight are the fixed cell dimensions of every glyph.
	GlyphWidth  = 3
	GlyphHeight = 5

	// Gap is the blank column count between adjacent glyphs in a rendered line.
	Gap = 1
)

// Glyph is a 3x5 bitmap, one row per string; '#' marks a set pixel.
type Glyph [GlyphHeight]string

var blank = Glyph{"   ", "   ", "   ", "   ", "   "}

var glyphs = map[rune]Glyph{
	'A': {"###", "# #", "###", "# #", "# #"},
	'B': {"## ", "# #", "## ", "# #", "## "},
	'C': {"###", "#  ", "#  ", "#  ", "###"},
	'D': {"## ", "# #", "# #", "# #", "## "},
	'E': {"###", "#  ", "###", "#  ", "###"},
	'F': {"###", "#  ", "###", "#  ", "#  "},
	'G': {"###", "#  ", "# #", "# #", "###"},
	'H': {"# #", "# #", "###", "# #", "# #"},
	'I': {"###", " # ", " # ", " # ", "###"},
	'J': {"###", "  #", "  #", "# #", "###"},
	'K': {"# #", "## ", "#  ", "## ", "# #"},
	'L': {"#  ", "#  ", "#  ", "#  ", "###"},
	'M': {"# #", "###", "###", "# #", "# #"},
	'N': {"# #", "###", "###", "###", "# #"},
	'O': {"###", "# #", "# #", "# #", "###"},
	'P': {"###", "# #", "###", "#  ", "#  "},
	'Q': {"###", "# #", "# #", "###", "  #"},
	'R': {"###", "# #", "###", "## ", "# #"},
	'S': {"###", "#  ", "###", "  #", "###"},
	'T': {"###", " # ", " # ", " # ", " # "},
	'U': {"# #", "# #", "# #", "# #", "###"},
	'V': {"# #", "# #", "# #", "# #", " # "},
	'W': {"# #", "# #", "###", "###", "# #"},
	'X': {"# #", "# #", " # ", "# #", "# #"},
	'Y': {"# #", "# #", " # ", " # ", " # "},
	'Z': {"###", "  #", " # ", "#  ", "###"},
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", " # ", " # ", " # "},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	'!': {" # ", " # ", " # ", "   ", " # "},
	'?': {"###", "  #", " # ", "   ", " # "},
	'.': {"   ", "   ", "   ", "   ", " # "},
	',': {"   ", "   ", "   ", " # ", "#  "},
	'-': {"   ", "   ", "###", "   ", "   "},
	'_': {"   ", "   ", "   ", "   ", "###"},
	':': {"   ", " # ", "   ", " # ", "   "},
	'/': {"  #", "  #", " # ", "#  ", "#  "},
	' ': {"   ", "   ", "   ", "   ", "   "},
}

// Lookup returns the glyph for r, folding lowercase ASCII letters to their
// uppercase form. Characters outside the supported set map to the blank
// glyph so they still occupy their layout slot.
func Lookup(r rune) Glyph {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if g, ok := glyphs[r]; ok {
		return g
	}
	return blank
}

// Width reports the rendered width of text: GlyphWidth per character plus
// Gap columns between neighbors. Empty text has width 0.
func Width(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*GlyphWidth + (n-1)*Gap
}

// Render rasterizes text into GlyphHeight rows of '#' and ' ' runes, glyphs
// separated by Gap blank columns. Every row has length Width(text).
func Render(text string) []string {
	runes := []rune(text)
	rows := make([]string, GlyphHeight)
	if len(runes) == 0 {
		return rows
	}

	var b strings.Builder
	for row := range GlyphHeight {
		b.Reset()
		for i, r := range runes {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", Gap))
			}
			b.WriteString(Lookup(r)[row])
		}
		rows[row] = b.String()
	}
	return rows
}
