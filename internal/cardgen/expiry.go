package cardgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// expiryHorizon is how many years past the current one a drawn expiry may fall.
const expiryHorizon = 8

// GenerateExpiry returns a two-digit month and a four-digit year.
//
// month and year are optional, 0 meaning unset. When both are set and lie
// before now they are discarded and a fresh future pair is drawn. A year set
// on its own is kept as given, even when already past. Any drawn year falls
// in [now.Year(), now.Year()+8] and a month drawn for the current year is
// never before the current month.
func GenerateExpiry(r *rand.Rand, now time.Time, month, year int) (string, string) {
	curYear, curMonth := now.Year(), int(now.Month())

	var m, y int
	switch {
	case month != 0 && year != 0:
		if year < curYear || (year == curYear && month < curMonth) {
			m, y = drawExpiry(r, curYear, curMonth)
		} else {
			m, y = month, year
		}
	case month != 0:
		y = between(r, curYear, curYear+expiryHorizon)
		m = month
		if y == curYear && month < curMonth {
			m = between(r, curMonth, 12)
		}
	case year != 0:
		y = year
		m = between(r, 1, 12)
		if year == curYear {
			m = between(r, curMonth, 12)
		}
	default:
		m, y = drawExpiry(r, curYear, curMonth)
	}

	return fmt.Sprintf("%02d", m), strconv.Itoa(y)
}

func drawExpiry(r *rand.Rand, curYear, curMonth int) (int, int) {
	y := between(r, curYear, curYear+expiryHorizon)
	if y == curYear {
		return between(r, curMonth, 12), y
	}

	return between(r, 1, 12), y
}

// between draws uniformly from the closed range [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
