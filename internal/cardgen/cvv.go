package cardgen

import (
	"math/rand/v2"
	"strings"

	"cardforge/internal/network"
	"cardforge/pkg/domain"

	"github.com/shopspring/decimal"
)

// GenerateCVV returns CVVLength random digits for the network id. Leading
// zeros are kept.
func GenerateCVV(r *rand.Rand, catalog *network.Catalog, id domain.NetworkID) (string, error) {
	n, err := catalog.Lookup(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(n.CVVLength)
	for range n.CVVLength {
		b.WriteByte(randomDigit(r))
	}

	return b.String(), nil
}

// BalanceRange bounds generated balances, both ends inclusive.
type BalanceRange struct {
	Min float64
	Max float64
}

// DefaultBalanceRange is used when no range is configured.
var DefaultBalanceRange = BalanceRange{Min: 100, Max: 10000} //nolint: gochecknoglobals

// GenerateBalance draws a uniform amount in br rounded to two decimals.
func GenerateBalance(r *rand.Rand, br BalanceRange) float64 {
	v := br.Min + r.Float64()*(br.Max-br.Min)

	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
