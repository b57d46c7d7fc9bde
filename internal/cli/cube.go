// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cratefit/container"
)

func newCubeCmd() *cobra.Command {
	var depth, width, height int

	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Dump the wireframe of an empty container",
		Long: `Dump the 8 corners and 12 edges of an empty depth×width×height container.
Unset dimensions come from the [container] section of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("depth") {
				depth = cfg.Container.Depth
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Container.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Container.Height
			}
			loggerFromContext(cmd.Context()).Debug("building container", "depth", depth, "width", width, "height", height)

			c, err := container.New(depth, width, height)
			if err != nil {
				return err
			}

			return c.Shape().Dump(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "container depth")
	cmd.Flags().IntVar(&width, "width", 0, "container width")
	cmd.Flags().IntVar(&height, "height", 0, "container height")

	return cmd
}
