package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/mosdash/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type runFunc func(ctx context.Context, opts app.Options) error

// newRootCmd builds the mosdash command. run receives the parsed options and
// the command's context.
func newRootCmd(run runFunc) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "mosdash",
		Short: "Moscow time, temperature and colour tiles in the terminal",
		Long: `mosdash shows a 3x3 grid of coloured tiles together with the current
Moscow time and temperature. Clicking a tile swaps its colour for one
that is not on the grid.

Time comes from worldtimeapi.org every 5 seconds and the temperature from
OpenWeatherMap every 2 minutes. Endpoints, API keys and the theme are read
from ~/.config/mosdash/config.toml when it exists.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/mosdash/config.toml)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "fixed seed for the starting tile layout (0 picks one at random)")

	return cmd
}
