package domain

// CardRecord is one generated test card. Records are immutable once built and
// are only consumed by exporters or the storage sink.
type CardRecord struct {
	// Number is the Luhn-valid card number (digits only).
	Number string `json:"number"`
	// Network is the display name of the network the number was built for.
	Network string `json:"network"`
	// ExpMonth is the two-digit expiry month ("01".."12").
	ExpMonth string `json:"exp_month"`
	// ExpYear is the four-digit expiry year.
	ExpYear string `json:"exp_year"`
	// Expiry is the card-face expiry, "MM/YY".
	Expiry string `json:"expiry"`
	// CVV is set only when the caller asked for it.
	CVV *string `json:"cvv,omitempty"`
	// Balance is a two-decimal amount, set only when the caller asked for it.
	Balance *float64 `json:"balance,omitempty"`
	// Currency accompanies Balance and is never set without it.
	Currency *string `json:"currency,omitempty"`
	// BIN holds the first six characters of Number.
	BIN string `json:"bin"`
}

// ShortYear returns the last two digits of ExpYear.
func (c CardRecord) ShortYear() string {
	if len(c.ExpYear) < 2 {
		return c.ExpYear
	}

	return c.ExpYear[len(c.ExpYear)-2:]
}
