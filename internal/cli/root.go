// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cratefit/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the cratefit CLI with ctx, writing command output to out and
// logs to errOut.
//
// Logging:
//   - Default: the level from the configuration file (info unless set)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := newRootCmd(out, errOut)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "cratefit",
		Short:         "cratefit checks 3-D block placements inside a cuboid container",
		Long:          `cratefit is a diagnostic CLI over a geometric packing core: it builds container and block wireframes and asks the placement oracle whether candidate positions are legal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			level := cfg.LogLevel()
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(errOut, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("cratefit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(newCubeCmd())
	root.AddCommand(newRotateCmd())
	root.AddCommand(newPlaceCmd())

	return root
}
