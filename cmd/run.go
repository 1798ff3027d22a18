package cmd

import (
	"fmt"

	"github.com/uhey22e/matrix-rain/internal/palette"
	"github.com/uhey22e/matrix-rain/internal/tui"
)

func run(deps Deps, text, colorset string, speed int, seed uint64) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}

	pal, err := palette.Resolve(colorset)
	if err != nil {
		return err
	}

	return deps.RunTUI(tui.Config{
		Text:    text,
		Palette: pal,
		Speed:   speed,
		Seed:    seed,
	})
}
