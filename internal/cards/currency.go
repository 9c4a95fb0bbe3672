package cards

import (
	"slices"
	"strings"

	"cardforge/pkg/domain"

	"github.com/samber/lo"
)

var currencies = []domain.Currency{ //nolint: gochecknoglobals
	{Code: "USD", Name: "United States Dollar"},
	{Code: "PHP", Name: "Philippine Peso"},
	{Code: "EUR", Name: "Euro"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "GBP", Name: "British Pound Sterling"},
	{Code: "CHF", Name: "Swiss Franc"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "CNY", Name: "Chinese Yuan Renminbi"},
	{Code: "INR", Name: "Indian Rupee"},
	{Code: "BRL", Name: "Brazilian Real"},
	{Code: "ZAR", Name: "South African Rand"},
	{Code: "RUB", Name: "Russian Ruble"},
	{Code: "SAR", Name: "Saudi Riyal"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "MXN", Name: "Mexican Peso"},
}

// Currencies returns the static currency table in display order.
func Currencies() []domain.Currency {
	return slices.Clone(currencies)
}

// LookupCurrency resolves code case-insensitively.
func LookupCurrency(code string) (domain.Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))

	return lo.Find(currencies, func(c domain.Currency) bool { return c.Code == code })
}
