package main

import (
	"bufio"
	"fmt"
	"strings"

	"cardforge/internal/config"
	"cardforge/pkg/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type validateOutput struct {
	Number string `json:"number"`
	domain.ValidationResult
}

func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [number...]",
		Short: "Validates card numbers given as arguments or one per line on stdin",
		Long:  "Prints one JSON object per number. Exits non-zero when any number is invalid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := cardService(cfg)
			if err != nil {
				return err
			}

			numbers := args
			if len(numbers) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						numbers = append(numbers, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("could not read numbers: %w", err)
				}
			}

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
			invalid := 0
			for _, number := range numbers {
				res := svc.Validate(ctx, number)
				if !res.Valid {
					invalid++
				}
				if err := enc.Encode(validateOutput{Number: number, ValidationResult: res}); err != nil {
					return fmt.Errorf("could not encode result: %w", err)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d numbers are invalid", invalid, len(numbers))
			}

			return nil
		},
	}

	return cmd
}
