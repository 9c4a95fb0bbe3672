package export

import (
	"fmt"
	"strings"

	"cardforge/pkg/domain"

	"github.com/shopspring/decimal"
)

const cardSeparatorWidth = 40

// ToPipe renders one "number|MM/YY[|cvv]" line per record.
func ToPipe(records []domain.CardRecord) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		line := rec.Number + "|" + rec.ExpMonth + "/" + rec.ShortYear()
		if rec.CVV != nil {
			line += "|" + *rec.CVV
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// ToSQL renders a CREATE TABLE statement followed by one INSERT per record.
// Values are quoted but not escaped; records are machine generated.
func ToSQL(records []domain.CardRecord, table string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	b.WriteString("    number VARCHAR(20),\n")
	b.WriteString("    network VARCHAR(50),\n")
	b.WriteString("    exp_month VARCHAR(4),\n")
	b.WriteString("    exp_year VARCHAR(4),\n")
	b.WriteString("    expiry VARCHAR(10),\n")
	b.WriteString("    cvv VARCHAR(4),\n")
	b.WriteString("    balance DECIMAL(10,2),\n")
	b.WriteString("    currency VARCHAR(10),\n")
	b.WriteString("    bin VARCHAR(20)\n")
	b.WriteString(");\n")

	for _, rec := range records {
		fmt.Fprintf(&b,
			"\nINSERT INTO %s (number, network, exp_month, exp_year, expiry, cvv, balance, currency, bin) "+
				"VALUES ('%s', '%s', '%s', '%s', '%s', %s, %s, %s, '%s');",
			table, rec.Number, rec.Network, rec.ExpMonth, rec.ExpYear, rec.Expiry,
			quotedOrNull(rec.CVV), balanceOr(rec.Balance, "NULL"), quotedOrNull(rec.Currency), rec.BIN,
		)
	}

	return b.String()
}

// ToCard renders a human readable block per record, each closed by a
// separator line.
func ToCard(records []domain.CardRecord) string {
	blocks := make([]string, 0, len(records))
	for i, rec := range records {
		lines := []string{
			fmt.Sprintf("Card #%d", i+1),
			"Number: " + rec.Number,
			"Network: " + rec.Network,
			"Expiry: " + rec.Expiry,
		}
		if rec.CVV != nil {
			lines = append(lines, "CVV: "+*rec.CVV)
		}
		if rec.Balance != nil {
			currency := "USD"
			if rec.Currency != nil {
				currency = *rec.Currency
			}
			lines = append(lines, "Balance: "+FormatBalance(*rec.Balance)+" "+currency)
		}
		lines = append(lines, strings.Repeat("─", cardSeparatorWidth))
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n")
}

// FormatBalance renders an amount with the shortest exact decimal form,
// "1234.5" rather than "1234.50".
func FormatBalance(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func quotedOrNull(s *string) string {
	if s == nil {
		return "NULL"
	}

	return "'" + *s + "'"
}

func balanceOr(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}

	return FormatBalance(*v)
}
