package export

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"

	"cardforge/pkg/domain"
	"cardforge/pkg/serrors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint: gochecknoglobals

var csvHeader = []string{ //nolint: gochecknoglobals
	"number", "network", "exp_month", "exp_year", "expiry", "cvv", "balance", "currency", "bin",
}

// ToCSV renders a header row and one row per record. Absent optional fields
// are empty cells.
func ToCSV(records []domain.CardRecord) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, csvHeader)
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Number,
			rec.Network,
			rec.ExpMonth,
			rec.ExpYear,
			rec.Expiry,
			valueOr(rec.CVV, ""),
			balanceOr(rec.Balance, ""),
			valueOr(rec.Currency, ""),
			rec.BIN,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", serrors.Wrap(serrors.ErrSerialization, err, "failed to write csv")
	}

	return buf.String(), nil
}

// ToJSON renders a pretty-printed array. Absent optional fields are omitted.
func ToJSON(records []domain.CardRecord) (string, error) {
	if records == nil {
		records = []domain.CardRecord{}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", serrors.Wrap(serrors.ErrSerialization, err, "failed to encode json")
	}

	return string(out), nil
}

type xmlCards struct {
	XMLName xml.Name  `xml:"cards"`
	Cards   []xmlCard `xml:"card"`
}

type xmlCard struct {
	Number   string  `xml:"number"`
	Network  string  `xml:"network"`
	ExpMonth string  `xml:"exp_month"`
	ExpYear  string  `xml:"exp_year"`
	Expiry   string  `xml:"expiry"`
	CVV      *string `xml:"cvv,omitempty"`
	Balance  *string `xml:"balance,omitempty"`
	Currency *string `xml:"currency,omitempty"`
	BIN      string  `xml:"bin"`
}

// ToXML renders a <cards> document with one <card> element per record.
// Absent optional fields have no element.
func ToXML(records []domain.CardRecord) (string, error) {
	doc := xmlCards{Cards: make([]xmlCard, 0, len(records))}
	for _, rec := range records {
		card := xmlCard{
			Number:   rec.Number,
			Network:  rec.Network,
			ExpMonth: rec.ExpMonth,
			ExpYear:  rec.ExpYear,
			Expiry:   rec.Expiry,
			CVV:      rec.CVV,
			Currency: rec.Currency,
			BIN:      rec.BIN,
		}
		if rec.Balance != nil {
			balance := FormatBalance(*rec.Balance)
			card.Balance = &balance
		}
		doc.Cards = append(doc.Cards, card)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", serrors.Wrap(serrors.ErrSerialization, err, "failed to encode xml")
	}

	return xml.Header + string(out), nil
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}

	return *s
}
