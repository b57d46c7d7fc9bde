// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cratefit/block"
	"github.com/katalvlaran/cratefit/container"
	"github.com/katalvlaran/cratefit/shape"
)

func newPlaceCmd() *cobra.Command {
	var (
		size   string
		blocks []string
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Run placements through the oracle and commit the valid ones",
		Long: `Each --block is checked against the blocks committed before it, in order.
Valid placements are committed; the verdict table and the final container
frame are printed.`,
		Example: `  cratefit place --container 5x5x5 --block 2x2x2@0,0,0 --block 1x1x1@0,0,0 --block 1x1x1@3,0,0
  cratefit place --block 1x1x3@0,0,0/0,90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			ext := shape.Point{cfg.Container.Depth, cfg.Container.Width, cfg.Container.Height}
			if size != "" {
				p, err := parseExtents(size)
				if err != nil {
					return err
				}
				ext = p
			}
			c, err := container.New(ext[0], ext[1], ext[2], container.WithLogger(logger))
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "id", "block", "glue", "verdict")
			for i, arg := range blocks {
				p, err := parsePlacement(arg)
				if err != nil {
					return err
				}
				b, err := block.NewCuboid(fmt.Sprintf("b%d", i), p.extents[0], p.extents[1], p.extents[2], cfg.MatrixOptions()...)
				if err != nil {
					return err
				}
				v := c.Check(b, p.glue)
				if v.OK() {
					if err = c.Commit(b, p.glue); err != nil {
						return err
					}
				}
				e := p.extents
				t.Row(strconv.Itoa(i), shortID(b), fmt.Sprintf("%dx%dx%d", e[0], e[1], e[2]), p.glue.String(), v.String())
			}

			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, t.Render()); err != nil {
				return err
			}
			if _, err = fmt.Fprintf(out, "placed %d of %d blocks, volume %d of %d\n",
				c.Len(), len(blocks), c.UsedVolume(), c.Volume()); err != nil {
				return err
			}
			frame := c.Shape()
			if _, err = fmt.Fprintf(out, "frame: %d vertices, %d edges, %d components\n",
				frame.Len(), frame.EdgeCount(), len(frame.Components())); err != nil {
				return err
			}
			logger.Info("placement finished", "placed", c.Len(), "requested", len(blocks))

			return c.Dump(out)
		},
	}

	cmd.Flags().StringVar(&size, "container", "", "container extents as DxWxH (default from config)")
	cmd.Flags().StringArrayVar(&blocks, "block", nil, "placement as DxWxH@d,w,h[/yaw,pitch] (repeatable)")

	return cmd
}

// shortID is the first group of the block's UUID, enough to match log records.
func shortID(b *block.Block) string {
	id := b.ID().String()

	return id[:strings.IndexByte(id, '-')]
}
