package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchID identifies a persisted generation batch.
type BatchID uuid.UUID

func (id BatchID) String() string { return uuid.UUID(id).String() }

// StoredCard is a CardRecord persisted as part of a batch.
type StoredCard struct {
	CardRecord

	BatchID   BatchID
	Position  int
	CreatedAt time.Time
}
