// Package palette holds the built-in color sets used to shade rain cells by
// age. Each palette is ordered brightest first; cells older than the palette
// clamp to the darkest entry.
package palette

import (
	"iter"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered color sequence, index 0 brightest.
type Palette []colorful.Color

// DefaultName is the set used when no --colorset is given.
const DefaultName = "determination"

var sets = map[string]Palette{
	"determination": mustParse("#39c4b6", "#fee801", "#6300ff"),
	"city":          mustParse("#ff0677", "#0051ff", "#8900ff"),
	"2077":          mustParse("#c5003c", "#880425", "#f3e600", "#55ead4"),
	"thermography":  mustParse("#ff004a", "#ffcc3d", "#ff5631", "#ad00ff"),
}

// sorted name list, doubles as the ID order for Resolve.
var names = func() []string {
	ns := make([]string, 0, len(sets))
	for n := range sets {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}()

func mustParse(hexes ...string) Palette {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("palette: bad hex literal " + h + ": " + err.Error())
		}
		p = append(p, c)
	}
	return p
}

// ColorIndex maps a cell age to a palette index: age 0 is the brightest
// entry, ages at or beyond the palette length clamp to the darkest.
func (p Palette) ColorIndex(age int) int {
	if age < 0 {
		return 0
	}
	if age >= len(p) {
		return len(p) - 1
	}
	return age
}

// Hex returns the color at index i as a #rrggbb string.
func (p Palette) Hex(i int) string {
	return p[i].Hex()
}

// Resolve looks up a palette by name (case-insensitive) or by its numeric ID,
// the position in sorted name order. Unknown values yield a *NotFoundError.
func Resolve(nameOrID string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrID))
	if p, ok := sets[key]; ok {
		return p, nil
	}
	if id, err := strconv.Atoi(key); err == nil && id >= 0 && id < len(names) {
		// "2077" is a set name and matched above; other digits are IDs.
		return sets[names[id]], nil
	}
	return nil, &NotFoundError{Name: nameOrID, Available: Names()}
}

// Names returns the palette names in sorted order.
func Names() []string {
	return append([]string(nil), names...)
}

// All yields (name, palette) pairs in sorted name order. The sequence is
// finite and restartable; ranging over it twice yields identical pairs.
func All() iter.Seq2[string, Palette] {
	return func(yield func(string, Palette) bool) {
		for _, n := range names {
			if !yield(n, sets[n]) {
				return
			}
		}
	}
}
