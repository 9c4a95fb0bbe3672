package cardgen_test

import (
	"strconv"
	"testing"
	"time"

	"cardforge/internal/cardgen"

	"github.com/stretchr/testify/require"
)

var june2025 = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func parseExpiry(t *testing.T, month, year string) (int, int) {
	t.Helper()

	require.Len(t, month, 2)
	require.Len(t, year, 4)
	m, err := strconv.Atoi(month)
	require.NoError(t, err)
	y, err := strconv.Atoi(year)
	require.NoError(t, err)

	return m, y
}

func requireFuture(t *testing.T, m, y int) {
	t.Helper()

	require.GreaterOrEqual(t, y, 2025)
	require.LessOrEqual(t, y, 2033)
	require.GreaterOrEqual(t, m, 1)
	require.LessOrEqual(t, m, 12)
	if y == 2025 {
		require.GreaterOrEqual(t, m, 6)
	}
}

func TestGenerateExpiry_Unset(t *testing.T) {
	r := newRand()

	for range 500 {
		month, year := cardgen.GenerateExpiry(r, june2025, 0, 0)
		m, y := parseExpiry(t, month, year)
		requireFuture(t, m, y)
	}
}

func TestGenerateExpiry_BothFutureKept(t *testing.T) {
	month, year := cardgen.GenerateExpiry(newRand(), june2025, 3, 2027)
	require.Equal(t, "03", month)
	require.Equal(t, "2027", year)

	month, year = cardgen.GenerateExpiry(newRand(), june2025, 6, 2025)
	require.Equal(t, "06", month)
	require.Equal(t, "2025", year)
}

func TestGenerateExpiry_BothPastRegenerated(t *testing.T) {
	r := newRand()

	for _, in := range [][2]int{{1, 2020}, {5, 2025}} {
		for range 100 {
			month, year := cardgen.GenerateExpiry(r, june2025, in[0], in[1])
			m, y := parseExpiry(t, month, year)
			requireFuture(t, m, y)
		}
	}
}

func TestGenerateExpiry_MonthOnly(t *testing.T) {
	r := newRand()

	for range 300 {
		month, year := cardgen.GenerateExpiry(r, june2025, 2, 0)
		m, y := parseExpiry(t, month, year)
		requireFuture(t, m, y)
		if y != 2025 {
			require.Equal(t, 2, m)
		}
	}

	for range 100 {
		month, year := cardgen.GenerateExpiry(r, june2025, 9, 0)
		m, _ := parseExpiry(t, month, year)
		require.Equal(t, 9, m)
	}
}

func TestGenerateExpiry_YearOnly(t *testing.T) {
	r := newRand()

	for range 100 {
		month, year := cardgen.GenerateExpiry(r, june2025, 0, 2025)
		m, y := parseExpiry(t, month, year)
		require.Equal(t, 2025, y)
		require.GreaterOrEqual(t, m, 6)
		require.LessOrEqual(t, m, 12)
	}

	for range 100 {
		month, year := cardgen.GenerateExpiry(r, june2025, 0, 2030)
		m, y := parseExpiry(t, month, year)
		require.Equal(t, 2030, y)
		require.GreaterOrEqual(t, m, 1)
		require.LessOrEqual(t, m, 12)
	}

	// A past year on its own is not overridden.
	_, year := cardgen.GenerateExpiry(r, june2025, 0, 2020)
	require.Equal(t, "2020", year)
}
