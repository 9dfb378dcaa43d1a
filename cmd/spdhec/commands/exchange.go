package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spdhec/internal/app"
	"spdhec/internal/domain"
)

// exchange: run both parties locally and print the transcript.
func exchangeCmd(deps func() *app.Wire) *cobra.Command {
	var (
		curveIndex       int
		aliceKey, bobKey string
		checkAll         bool
		asJSON           bool
		deriveKey        bool
	)
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run an EC-DH exchange between Alice and Bob",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ExchangeRequest{Search: checkAll, DeriveKey: deriveKey}
			if cmd.Flags().Changed("curve-index") {
				req.CurveIndex = &curveIndex
			}
			var err error
			if req.AliceKey, err = parseScalar("alice-key", aliceKey); err != nil {
				return err
			}
			if req.BobKey, err = parseScalar("bob-key", bobKey); err != nil {
				return err
			}

			res, err := deps().Exchange.Exchange(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Curve %d: %s\n", res.CurveIndex, res.Curve)
			fmt.Fprintf(out, "Generator: %s\n", res.Generator)
			fmt.Fprintf(out, "Alice: private %s, public %s [%s]\n", res.Alice.Private, res.Alice.Public, res.Alice.Fingerprint)
			fmt.Fprintf(out, "Bob:   private %s, public %s [%s]\n", res.Bob.Private, res.Bob.Public, res.Bob.Fingerprint)
			fmt.Fprintf(out, "Shared point: %s\n", res.Alice.Shared)
			fmt.Fprintf(out, "Secret: %s\n", res.Secret)
			if res.Key != "" {
				fmt.Fprintf(out, "Derived key: %s\n", res.Key)
			}
			if checkAll {
				fmt.Fprintf(out, "Consistent private-key pairs: %d\n", len(res.Candidates))
				for _, c := range res.Candidates {
					fmt.Fprintf(out, "  alice=%s bob=%s\n", c.Alice, c.Bob)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&curveIndex, "curve-index", 0, "row of the curve table (default: random)")
	cmd.Flags().StringVar(&aliceKey, "alice-key", "", "Alice's private key (default: random)")
	cmd.Flags().StringVar(&bobKey, "bob-key", "", "Bob's private key (default: random)")
	cmd.Flags().BoolVar(&checkAll, "check-all", false, "search every private-key pair consistent with the public values")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&deriveKey, "derive-key", false, "also print an HKDF-SHA256 key over the full shared point")
	return cmd
}
