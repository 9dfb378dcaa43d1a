package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spdhec/internal/app"
	"spdhec/internal/domain"
)

// party <alice|bob>: run one side of an exchange through the relay.
func partyCmd(deps func() *app.Wire) *cobra.Command {
	var (
		session    string
		curveIndex int
		key        string
		deriveKey  bool
		asJSON     bool
		timeout    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "party <alice|bob>",
		Short: "Play one side of an exchange through a relay",
		Long: "Alice opens the session on the relay with a curve and generator; Bob joins it.\n" +
			"Each side publishes its public point and derives the secret from the peer's.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParseParty(args[0])
			if err != nil {
				return err
			}
			req := domain.PartyRequest{
				Session:   domain.SessionID(session),
				Party:     p,
				DeriveKey: deriveKey,
			}
			if cmd.Flags().Changed("curve-index") {
				if p != domain.Alice {
					return fmt.Errorf("--curve-index is chosen by alice")
				}
				req.CurveIndex = &curveIndex
			}
			if req.PrivateKey, err = parseScalar("key", key); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			res, err := deps().Party.Run(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session %s as %s\n", res.Session, res.Party)
			fmt.Fprintf(out, "Curve %d: %s\n", res.Params.CurveIndex, res.Params.Curve)
			fmt.Fprintf(out, "Generator: %s\n", res.Params.Generator)
			fmt.Fprintf(out, "Public: %s\n", res.Public)
			fmt.Fprintf(out, "Peer:   %s [%s]\n", res.Peer, res.PeerPrint)
			fmt.Fprintf(out, "Secret: %s\n", res.Secret)
			if res.Key != "" {
				fmt.Fprintf(out, "Derived key: %s\n", res.Key)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session identifier shared by both parties")
	cmd.Flags().IntVar(&curveIndex, "curve-index", 0, "row of the curve table (alice only; default: random)")
	cmd.Flags().StringVar(&key, "key", "", "private key (default: random)")
	cmd.Flags().BoolVar(&deriveKey, "derive-key", false, "also print an HKDF-SHA256 key over the full shared point")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "give up waiting for the peer after this long")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}
