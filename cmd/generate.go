package main

import (
	"fmt"
	"os"
	"strings"

	"cardforge/internal/cards"
	"cardforge/internal/config"
	"cardforge/internal/export"

	"github.com/spf13/cobra"
)

// bindGenerateFlags registers the batch request flags shared by generate and seed.
func bindGenerateFlags(cmd *cobra.Command, req *cards.GenerateRequest) {
	f := cmd.Flags()
	f.StringVarP(&req.Network, "network", "n", "random", "Card network id, or random")
	f.IntVarP(&req.Quantity, "quantity", "q", 1, "Number of cards to generate")
	f.IntVar(&req.ExpMonth, "exp-month", 0, "Fixed expiry month (1-12)")
	f.IntVar(&req.ExpYear, "exp-year", 0, "Fixed expiry year (four digits)")
	f.BoolVar(&req.CVV, "cvv", false, "Include a CVV")
	f.BoolVar(&req.Balance, "balance", false, "Include a random balance")
	f.StringVar(&req.Currency, "currency", "", "Balance currency code")
	f.StringVar(&req.BINSpec, "bin", "", "BIN digits, x/X for random digits")
}

func generateCommand(cfg *config.Config) *cobra.Command {
	var (
		req    cards.GenerateRequest
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a batch of test cards and prints it in an export format",
		Example: "  cardforge generate -n visa -q 5 --cvv -f csv\n" +
			"  cardforge generate --bin 4532xxxxxxxxxxxx --exp-month 12 --exp-year 2030",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, err := cardService(cfg)
			if err != nil {
				return err
			}

			if _, err := export.ParseFormat(format); err != nil {
				return err //nolint: wrapcheck
			}

			records, err := svc.Generate(ctx, req)
			if err != nil {
				return err //nolint: wrapcheck
			}

			out, err := svc.Export(ctx, records, format)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)

				return err //nolint: wrapcheck
			}

			if err := os.WriteFile(output, []byte(out), 0o600); err != nil {
				return fmt.Errorf("could not write %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d cards to %s\n", len(records), output)

			return err //nolint: wrapcheck
		},
	}

	bindGenerateFlags(cmd, &req)
	cmd.Flags().StringVarP(&format, "format", "f", string(export.Pipe),
		"Output format: PIPE, CSV, JSON, XML, SQL or CARD")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
