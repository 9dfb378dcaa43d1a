package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spdhec/internal/app"
)

// generate: find a new prime-order curve, optionally appending it to the table.
func generateCmd(deps func() *app.Wire) *cobra.Command {
	var (
		appendRow bool
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Search for a new curve of prime order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := deps()
			params, err := w.CurveGen.Generate(cmd.Context())
			if err != nil {
				return err
			}
			index := -1
			if appendRow {
				if index, err = w.Curves.Append(params); err != nil {
					return err
				}
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), params)
			}
			fmt.Fprintln(cmd.OutOrStdout(), params)
			if index >= 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "appended as curve %d\n", index)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&appendRow, "append", false, "append the curve to the table in --tables")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the curve as JSON")
	return cmd
}
