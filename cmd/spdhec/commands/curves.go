package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spdhec/internal/app"
	"spdhec/internal/curve"
)

func curvesCmd(deps func() *app.Wire) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "List the curve table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := deps().Curves
			rows := make([]curve.Params, 0, table.Len())
			for i := 0; i < table.Len(); i++ {
				p, err := table.Curve(i)
				if err != nil {
					return err
				}
				rows = append(rows, p)
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			for i, p := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	return cmd
}
