package network

import "cardforge/pkg/domain"

// Identifiers of the built-in networks.
const (
	Visa       domain.NetworkID = "visa"
	Mastercard domain.NetworkID = "mastercard"
	Amex       domain.NetworkID = "amex"
	Discover   domain.NetworkID = "discover"
	UnionPay   domain.NetworkID = "unionpay"
	Diners     domain.NetworkID = "diners"
)

// builtin lists the shipped networks in detection order. BIN sets are
// prefix-disjoint across networks.
func builtin() []Definition {
	return []Definition{
		{
			Network: domain.Network{
				ID:        Visa,
				Name:      "Visa",
				BINs:      []string{"4"},
				Lengths:   []int{13, 16, 19},
				CVVLength: 3,
			},
		},
		{
			Network: domain.Network{
				ID:        Mastercard,
				Name:      "Mastercard",
				BINs:      []string{"51", "52", "53", "54", "55"},
				Lengths:   []int{16},
				CVVLength: 3,
			},
			// 2-series BINs
			Ranges: []RangeRule{{Length: 16, Digits: 4, Low: 2221, High: 2720}},
		},
		{
			Network: domain.Network{
				ID:        Amex,
				Name:      "American Express",
				BINs:      []string{"34", "37"},
				Lengths:   []int{15},
				CVVLength: 3,
			},
		},
		{
			Network: domain.Network{
				ID:        Discover,
				Name:      "Discover",
				BINs:      []string{"6011", "644", "645", "646", "647", "648", "649", "65"},
				Lengths:   []int{16},
				CVVLength: 3,
			},
			Ranges: []RangeRule{{Length: 16, Digits: 3, Low: 644, High: 649}},
		},
		{
			Network: domain.Network{
				ID:        UnionPay,
				Name:      "UnionPay",
				BINs:      []string{"62"},
				Lengths:   []int{16, 17, 18, 19},
				CVVLength: 3,
			},
		},
		{
			Network: domain.Network{
				ID:        Diners,
				Name:      "Diners Club",
				BINs:      []string{"300", "301", "302", "303", "304", "305", "36", "38"},
				Lengths:   []int{14, 16},
				CVVLength: 3,
			},
		},
	}
}
