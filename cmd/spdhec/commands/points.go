package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spdhec/internal/app"
)

// points <curve-index>: enumerate the affine points of a table curve.
func pointsCmd(deps func() *app.Wire) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "points <curve-index>",
		Short: "List every affine point of a curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("curve index: %w", err)
			}
			c, err := deps().Engines.Engine(index)
			if err != nil {
				return err
			}
			pts, err := c.Points(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", c)
			for _, p := range pts {
				fmt.Fprintln(out, p)
			}
			fmt.Fprintf(out, "%d affine points + infinity\n", len(pts))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10000, "refuse curves with more affine points than this")
	return cmd
}
