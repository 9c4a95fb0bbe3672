// Package cards is the application service behind the CLI and the HTTP API.
// It applies request bounds and composes generation, validation and export.
package cards

import (
	"context"

	"cardforge/pkg/domain"
)

// GenerateRequest is a batch generation request as received from a caller.
type GenerateRequest struct {
	// Network is a catalog id or "random".
	Network  string
	Quantity int
	// ExpMonth (1..12) and ExpYear are optional, 0 meaning unset.
	ExpMonth int
	ExpYear  int
	CVV      bool
	Balance  bool
	// Currency is an ISO 4217 code from the currency table, optional.
	Currency string
	// BINSpec is digits, optionally followed or mixed with x/X placeholders.
	BINSpec string
}

//go:generate mockgen -package mockcards -source=interface.go -destination=mock/mockcards.go *
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) ([]domain.CardRecord, error)
	Validate(ctx context.Context, number string) domain.ValidationResult
	Export(ctx context.Context, records []domain.CardRecord, format string) (string, error)
	Networks(ctx context.Context) []domain.NetworkEntry
	Currencies(ctx context.Context) []domain.Currency
}
