package postgres

import (
	"context"
	"fmt"

	"cardforge/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	cardsTable = "test_cards"
)

func (p *PgSQL) StoreCards(ctx context.Context, batchID domain.BatchID, cards ...domain.CardRecord) (int64, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Insert(cardsTable).
		Rows(domainCardsToPg(batchID, cards)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store cards into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) BatchCards(ctx context.Context, batchID domain.BatchID) ([]domain.StoredCard, error) {
	var rows []PgCard
	if err := p.Builder.From(cardsTable).
		Where(goqu.I("batch_id").Eq(uuid.UUID(batchID))).
		Order(goqu.I("position").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not load batch cards from pg: %w", err)
	}

	return pgCardsToDomain(rows), nil
}

func (p *PgSQL) CountCards(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(cardsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count cards in pg: %w", err)
	}

	return n, nil
}
