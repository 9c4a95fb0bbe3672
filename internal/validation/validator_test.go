package validation_test

import (
	"testing"

	"cardforge/internal/validation"
	"cardforge/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v := validation.New(nil)

	cases := []struct {
		name    string
		in      string
		valid   bool
		luhn    bool
		network string
		length  int
		reason  domain.Reason
	}{
		{"visa", "4111111111111111", true, true, "Visa", 16, domain.ReasonValid},
		{"separators", "4111-1111 1111.1111", true, true, "Visa", 16, domain.ReasonValid},
		{"amex", "378282246310005", true, true, "American Express", 15, domain.ReasonValid},
		{"mastercard 2-series", "2221000000000009", true, true, "Mastercard", 16, domain.ReasonValid},
		{"too short", "123", false, false, "", 3, domain.ReasonInvalidLength},
		{"too long", "41111111111111111111", false, false, "", 20, domain.ReasonInvalidLength},
		{"empty", "", false, false, "", 0, domain.ReasonInvalidLength},
		{"garbage", "not a card", false, false, "", 0, domain.ReasonInvalidLength},
		{"luhn failure wins over network", "1234567890123456", false, false, "", 16, domain.ReasonLuhnFailed},
		{"luhn failure with network", "4111111111111112", false, false, "Visa", 16, domain.ReasonLuhnFailed},
		{"unknown network", "1234567890123452", false, true, "", 16, domain.ReasonUnknownNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(tc.in)
			require.Equal(t, tc.valid, res.Valid)
			require.Equal(t, tc.luhn, res.LuhnValid)
			require.Equal(t, tc.length, res.Length)
			require.Equal(t, tc.reason, res.Reason)
			if tc.network == "" {
				require.Nil(t, res.Network)
			} else {
				require.NotNil(t, res.Network)
				require.Equal(t, tc.network, *res.Network)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "4111111111111111", validation.Normalize(" 4111 1111-1111\t1111 "))
	require.Equal(t, "", validation.Normalize("abc"))
	require.Equal(t, "212", validation.Normalize("١2x1٣2"))
}
