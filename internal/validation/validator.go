// Package validation classifies caller supplied card numbers.
package validation

import (
	"strings"

	"cardforge/internal/luhn"
	"cardforge/internal/network"
	"cardforge/pkg/domain"
)

const (
	MinLength = 13
	MaxLength = 19
)

// Validator checks numbers against a catalog.
type Validator struct {
	catalog *network.Catalog
}

// New returns a Validator over catalog, or over network.Default when catalog
// is nil.
func New(catalog *network.Catalog) *Validator {
	if catalog == nil {
		catalog = network.Default()
	}

	return &Validator{catalog: catalog}
}

// Validate never fails. Non-digit characters are stripped first. When several
// checks fail the reason reported is, in order of precedence: length, Luhn,
// network.
func (v *Validator) Validate(raw string) domain.ValidationResult {
	digits := Normalize(raw)
	res := domain.ValidationResult{Length: len(digits)}

	if len(digits) < MinLength || len(digits) > MaxLength {
		res.Reason = domain.ReasonInvalidLength

		return res
	}

	res.LuhnValid = luhn.IsValid(digits)
	if n, ok := v.catalog.Detect(digits); ok {
		name := n.Name
		res.Network = &name
	}

	res.Valid = res.LuhnValid && res.Network != nil
	switch {
	case !res.LuhnValid:
		res.Reason = domain.ReasonLuhnFailed
	case res.Network == nil:
		res.Reason = domain.ReasonUnknownNetwork
	default:
		res.Reason = domain.ReasonValid
	}

	return res
}

// Normalize drops every character that is not an ASCII digit.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}

		return r
	}, raw)
}
