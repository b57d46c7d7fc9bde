// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cratefit/block"
)

func newRotateCmd() *cobra.Command {
	var (
		size       string
		yaw, pitch float64
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Orient a cuboid block and dump its frame",
		Example: `  cratefit rotate --block 1x2x3 --yaw 90
  cratefit rotate --block 1x2x3 --yaw 45 --pitch 30 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := parseExtents(size)
			if err != nil {
				return err
			}
			cfg := configFromContext(cmd.Context())
			b, err := block.NewCuboid("block", ext[0], ext[1], ext[2], cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			if err = b.SetGlue(block.Glue{Yaw: yaw, Pitch: pitch}); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("rotated block", "block", b)

			e := b.Extents()
			if _, err = fmt.Fprintf(cmd.OutOrStdout(), "extents %dx%dx%d\n", e[0], e[1], e[2]); err != nil {
				return err
			}

			return b.Frame().Dump(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&size, "block", "", "block extents as DxWxH")
	cmd.Flags().Float64Var(&yaw, "yaw", 0, "turn about the height axis, in degrees")
	cmd.Flags().Float64Var(&pitch, "pitch", 0, "turn about the width axis, in degrees")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}
