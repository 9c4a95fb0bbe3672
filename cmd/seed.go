package main

import (
	"fmt"
	"strings"

	"cardforge/internal/cards"
	"cardforge/internal/config"
	"cardforge/internal/export"
	"cardforge/pkg/domain"
	"cardforge/pkg/logger"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCommand(cfg *config.Config) *cobra.Command {
	var (
		req    cards.GenerateRequest
		format string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generates a batch of test cards and stores it in the database",
		Long: "Prints the batch id. With --format, the batch is read back from the database " +
			"and printed in that export format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if format != "" {
				if _, err := export.ParseFormat(format); err != nil {
					return err //nolint: wrapcheck
				}
			}

			svc, err := cardService(cfg)
			if err != nil {
				return err
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			batchID, records, err := cards.NewSeeder(svc, strg).Seed(ctx, req)
			if err != nil {
				return err //nolint: wrapcheck
			}

			total, err := strg.CountCards(ctx)
			if err != nil {
				logger.Warn(ctx, "could not count stored cards", zap.Error(err))
			}
			logger.Info(ctx, "seeded cards",
				zap.Stringer("batch_id", batchID),
				zap.Int("quantity", len(records)),
				zap.Int64("total", total))

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), batchID); err != nil {
				return err //nolint: wrapcheck
			}
			if format == "" {
				return nil
			}

			stored, err := strg.BatchCards(ctx, batchID)
			if err != nil {
				return fmt.Errorf("could not read batch %s: %w", batchID, err)
			}

			out, err := svc.Export(ctx, lo.Map(stored, func(c domain.StoredCard, _ int) domain.CardRecord {
				return c.CardRecord
			}), format)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint: wrapcheck
		},
	}

	bindGenerateFlags(cmd, &req)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Print the stored batch in this export format")

	return cmd
}
