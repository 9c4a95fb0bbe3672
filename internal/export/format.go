// Package export renders generated card records as text in one of the
// supported formats.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"cardforge/pkg/domain"
	"cardforge/pkg/serrors"

	"github.com/samber/lo"
)

// Format is an export format token.
type Format string

const (
	Pipe Format = "PIPE"
	CSV  Format = "CSV"
	JSON Format = "JSON"
	XML  Format = "XML"
	SQL  Format = "SQL"
	Card Format = "CARD"
)

// DefaultTable is the table targeted by SQL exports.
const DefaultTable = "test_cards"

var formats = []Format{Pipe, CSV, JSON, XML, SQL, Card} //nolint: gochecknoglobals

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Formats lists the supported formats.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat matches s against the supported tokens, ignoring case and
// surrounding spaces.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	if !lo.Contains(formats, f) {
		return "", serrors.With(serrors.ErrUnsupportedFormat, "unsupported export format: %q", s)
	}

	return f, nil
}

// Exporter renders records. The zero value is not usable; use New.
type Exporter struct {
	table string
}

// New returns an Exporter whose SQL output targets table, DefaultTable when
// empty. table must be a plain SQL identifier.
func New(table string) (*Exporter, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid sql table name %q", table)
	}

	return &Exporter{table: table}, nil
}

// Export renders records in format f.
func (e *Exporter) Export(records []domain.CardRecord, f Format) (string, error) {
	switch f {
	case Pipe:
		return ToPipe(records), nil
	case CSV:
		return ToCSV(records)
	case JSON:
		return ToJSON(records)
	case XML:
		return ToXML(records)
	case SQL:
		return ToSQL(records, e.table), nil
	case Card:
		return ToCard(records), nil
	default:
		return "", serrors.With(serrors.ErrUnsupportedFormat, "unsupported export format: %q", string(f))
	}
}
