package luhn_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"cardforge/internal/luhn"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"4111111111111111", 0},
		{"5555555555554444", 0},
		{"378282246310005", 0},
		{"4111111111111112", 1},
		{"0", 0},
		{"", 0},
		{"18", 0},
		{"7", 7},
	}
	for _, c := range cases {
		require.Equal(t, c.want, luhn.Checksum(c.in), "Checksum(%q)", c.in)
	}
}

func TestIsValid(t *testing.T) {
	require.True(t, luhn.IsValid("4111111111111111"))
	require.True(t, luhn.IsValid("6011111111111117"))
	require.False(t, luhn.IsValid("4111111111111112"))
	require.False(t, luhn.IsValid("1234567890123456"))
}

func TestCheckDigit(t *testing.T) {
	require.Equal(t, 1, luhn.CheckDigit("411111111111111"))
	require.Equal(t, 5, luhn.CheckDigit("37828224631000"))
	require.Equal(t, "4111111111111111", luhn.AppendCheckDigit("411111111111111"))
}

func TestCheckDigit_AlwaysValidates(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		var sb strings.Builder
		n := r.IntN(25)
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('0' + r.IntN(10)))
		}
		prefix := sb.String()
		full := luhn.AppendCheckDigit(prefix)
		require.True(t, luhn.IsValid(full), "prefix %q -> %q", prefix, full)
	}
}

func TestIsValid_DetectsSingleDigitChange(t *testing.T) {
	const valid = "4532015112830366"
	require.True(t, luhn.IsValid(valid))
	for i := 0; i < len(valid); i++ {
		b := []byte(valid)
		b[i] = byte('0' + (int(b[i]-'0')+1)%10)
		require.False(t, luhn.IsValid(string(b)), "mutation at %d should fail: %s", i, b)
	}
}
