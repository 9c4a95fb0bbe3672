package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"cardforge/internal/config"
	"cardforge/internal/network"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func networksCommand(cfg *config.Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Lists the selectable card networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if verbose {
				// numbering rules of the concrete networks, without "random"
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tLENGTHS\tCVV\tBINS")
				for _, n := range network.Default().Networks() {
					lengths := lo.Map(n.Lengths, func(l, _ int) string { return strconv.Itoa(l) })
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
						n.ID, n.Name, strings.Join(lengths, ","), n.CVVLength, strings.Join(n.BINs, ","))
				}

				return tw.Flush() //nolint: wrapcheck
			}

			svc, err := cardService(cfg)
			if err != nil {
				return err
			}

			for _, n := range svc.Networks(cmd.Context()) {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", n.ID, n.Name)
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show lengths, CVV length and BIN prefixes")

	return cmd
}

func currenciesCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "Lists the currencies accepted for balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := cardService(cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range svc.Currencies(cmd.Context()) {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", c.Code, c.Name)
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}
}
