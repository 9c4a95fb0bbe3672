// Package cardgen builds synthetic payment card records: Luhn-valid numbers
// anchored on a network BIN, expiry dates, CVVs and balances.
//
// Every function takes an explicit *rand.Rand and keeps no state between
// calls. The numbers are test data only and must never be used against real
// payment rails.
package cardgen

import (
	"math/rand/v2"
	"strings"

	"cardforge/internal/luhn"
	"cardforge/internal/network"
	"cardforge/pkg/domain"
)

const maxLength = 19

// GenerateNumber returns a Luhn-valid number for the network id.
//
// binSpec selects the prefix and the total length:
//   - empty: a random BIN of the network and a random valid length;
//   - digits only: the spec itself and the network's first declared length;
//   - a pattern with x/X placeholders: its leading digit run and a total
//     length equal to the pattern length, placeholders counted.
//
// The prefix is padded with random digits, or truncated, to length-1 before
// the check digit is appended.
func GenerateNumber(r *rand.Rand, catalog *network.Catalog, id domain.NetworkID, binSpec string) (string, error) {
	n, err := catalog.Lookup(id)
	if err != nil {
		return "", err
	}

	prefix, target := resolvePrefix(r, n, binSpec)

	return complete(r, prefix, target), nil
}

func resolvePrefix(r *rand.Rand, n domain.Network, binSpec string) (string, int) {
	switch {
	case binSpec == "":
		return n.BINs[r.IntN(len(n.BINs))], n.Lengths[r.IntN(len(n.Lengths))]
	case isDigits(binSpec):
		return binSpec, n.Lengths[0]
	default:
		return expandPattern(r, binSpec), len(binSpec)
	}
}

// expandPattern keeps the leading digits of spec and draws one random digit
// per placeholder except the one reserved for the check digit.
func expandPattern(r *rand.Rand, spec string) string {
	fixed := strings.IndexFunc(spec, func(c rune) bool { return c < '0' || c > '9' })
	if fixed < 0 {
		fixed = len(spec)
	}

	var b strings.Builder
	b.WriteString(spec[:fixed])
	for range placeholders(spec) - 1 {
		b.WriteByte(randomDigit(r))
	}

	return b.String()
}

func complete(r *rand.Rand, prefix string, target int) string {
	body := target - 1
	if body < 0 {
		body = 0
	}

	var b strings.Builder
	b.Grow(body + 1)
	if len(prefix) > body {
		prefix = prefix[:body]
	}
	b.WriteString(prefix)
	for b.Len() < body {
		b.WriteByte(randomDigit(r))
	}

	return luhn.AppendCheckDigit(b.String())
}

func placeholders(spec string) int {
	return strings.Count(spec, "x") + strings.Count(spec, "X")
}

// ValidBINSpec reports whether spec is usable as a BIN spec: at most 19
// characters, each a digit or an x/X placeholder.
func ValidBINSpec(spec string) bool {
	if len(spec) > maxLength {
		return false
	}
	for i := 0; i < len(spec); i++ {
		if c := spec[i]; c != 'x' && c != 'X' && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

func randomDigit(r *rand.Rand) byte {
	return byte('0' + r.IntN(10))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
