package cardgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"cardforge/internal/network"
	"cardforge/pkg/domain"
)

// BatchOptions describes one generation request.
type BatchOptions struct {
	// Network is a catalog id or domain.RandomNetwork. Random draws a network
	// independently for every record.
	Network  domain.NetworkID
	Quantity int
	// ExpMonth and ExpYear are optional, 0 meaning unset.
	ExpMonth int
	ExpYear  int
	CVV      bool
	Balance  bool
	// Currency is attached only to records carrying a balance.
	Currency string
	BINSpec  string
}

// GenerateBatch builds opts.Quantity records. It stops at the first failing
// record and returns no partial result. There is no upper bound on the
// quantity here; callers enforce their own.
func GenerateBatch(
	r *rand.Rand,
	catalog *network.Catalog,
	now time.Time,
	balance BalanceRange,
	opts BatchOptions,
) ([]domain.CardRecord, error) {
	records := make([]domain.CardRecord, 0, max(opts.Quantity, 0))
	ids := catalog.IDs()

	for i := 0; i < opts.Quantity; i++ {
		id := opts.Network
		if id == domain.RandomNetwork {
			id = ids[r.IntN(len(ids))]
		}

		rec, err := generateRecord(r, catalog, now, balance, id, opts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func generateRecord(
	r *rand.Rand,
	catalog *network.Catalog,
	now time.Time,
	balance BalanceRange,
	id domain.NetworkID,
	opts BatchOptions,
) (domain.CardRecord, error) {
	n, err := catalog.Lookup(id)
	if err != nil {
		return domain.CardRecord{}, err
	}

	number, err := GenerateNumber(r, catalog, id, opts.BINSpec)
	if err != nil {
		return domain.CardRecord{}, err
	}

	month, year := GenerateExpiry(r, now, opts.ExpMonth, opts.ExpYear)
	rec := domain.CardRecord{
		Number:   number,
		Network:  n.Name,
		ExpMonth: month,
		ExpYear:  year,
		BIN:      number[:min(6, len(number))],
	}
	rec.Expiry = rec.ExpMonth + "/" + rec.ShortYear()

	if opts.CVV {
		cvv, err := GenerateCVV(r, catalog, id)
		if err != nil {
			return domain.CardRecord{}, err
		}
		rec.CVV = &cvv
	}

	if opts.Balance {
		amount := GenerateBalance(r, balance)
		rec.Balance = &amount
		if opts.Currency != "" {
			currency := opts.Currency
			rec.Currency = &currency
		}
	}

	return rec, nil
}
