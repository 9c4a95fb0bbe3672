package cards

import (
	"context"
	"fmt"

	"cardforge/pkg/domain"
	"cardforge/pkg/logger"
	"cardforge/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeder generates a batch and persists it in a single transaction.
type Seeder struct {
	cards   Service
	storage storage.Storage
}

func NewSeeder(cards Service, st storage.Storage) *Seeder {
	return &Seeder{cards: cards, storage: st}
}

// Seed generates req and stores the records under a fresh batch id. Nothing
// is stored when generation or any insert fails.
func (s *Seeder) Seed(ctx context.Context, req GenerateRequest) (domain.BatchID, []domain.CardRecord, error) {
	records, err := s.cards.Generate(ctx, req)
	if err != nil {
		return domain.BatchID{}, nil, err
	}

	batchID := domain.BatchID(uuid.New())
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.StoreCards(ctx, batchID, records...)
		if err != nil {
			return fmt.Errorf("could not store cards: %w", err)
		}
		if n != int64(len(records)) {
			return fmt.Errorf("stored %d of %d cards", n, len(records))
		}

		return nil
	}); err != nil {
		return domain.BatchID{}, nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "seeded card batch",
		zap.Stringer("batch_id", batchID), zap.Int("quantity", len(records)))

	return batchID, records, nil
}
