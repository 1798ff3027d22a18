package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/uhey22e/matrix-rain/internal/palette"
	"github.com/uhey22e/matrix-rain/internal/rain"
	"github.com/uhey22e/matrix-rain/internal/tui"
)

type Deps struct {
	RunTUI func(cfg tui.Config) error
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI: defaultRunTUI,
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var text string
	var colorset string
	var speed int
	var list bool

	c := &cobra.Command{
		Use:          "matrix-rain",
		Short:        "Digital rain in your terminal with a message in a built-in bitmap font",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for name := range palette.All() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if speed < 0 || speed > rain.MaxSpeed {
				return fmt.Errorf("--scroll-speed must be between 0 and %d", rain.MaxSpeed)
			}

			seed := uint64(deps.Now().UnixNano())
			return run(deps, text, colorset, speed, seed)
		},
	}

	c.Flags().StringVarP(&text, "string", "s", "HELLO WORLD", "text rendered over the rain")
	c.Flags().StringVarP(&colorset, "colorset", "c", palette.DefaultName, "color set name or ID (see --list)")
	c.Flags().IntVar(&speed, "scroll-speed", 5, "background speed, 0 (static) to 10 (fastest)")
	c.Flags().BoolVar(&list, "list", false, "print the available color sets and exit")
	c.MarkFlagsMutuallyExclusive("colorset", "list")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
