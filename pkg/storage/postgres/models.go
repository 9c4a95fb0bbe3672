package postgres

import (
	"database/sql"
	"time"

	"cardforge/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PgCard is a row of the test_cards table.
type PgCard struct {
	ID       int64     `db:"id"       goqu:"skipinsert"`
	BatchID  uuid.UUID `db:"batch_id"`
	Position int       `db:"position"`

	Number   string              `db:"number"`
	Network  string              `db:"network"`
	ExpMonth string              `db:"exp_month"`
	ExpYear  string              `db:"exp_year"`
	Expiry   string              `db:"expiry"`
	CVV      sql.NullString      `db:"cvv"`
	Balance  decimal.NullDecimal `db:"balance"`
	Currency sql.NullString      `db:"currency"`
	BIN      string              `db:"bin"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCard) ToDomain() domain.StoredCard {
	card := domain.StoredCard{
		CardRecord: domain.CardRecord{
			Number:   p.Number,
			Network:  p.Network,
			ExpMonth: p.ExpMonth,
			ExpYear:  p.ExpYear,
			Expiry:   p.Expiry,
			BIN:      p.BIN,
		},
		BatchID:   domain.BatchID(p.BatchID),
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
	}
	if p.CVV.Valid {
		card.CVV = &p.CVV.String
	}
	if p.Balance.Valid {
		balance := p.Balance.Decimal.InexactFloat64()
		card.Balance = &balance
	}
	if p.Currency.Valid {
		card.Currency = &p.Currency.String
	}

	return card
}

func (p *PgCard) FromDomain(batchID domain.BatchID, position int, card domain.CardRecord) {
	*p = PgCard{
		BatchID:  uuid.UUID(batchID),
		Position: position,
		Number:   card.Number,
		Network:  card.Network,
		ExpMonth: card.ExpMonth,
		ExpYear:  card.ExpYear,
		Expiry:   card.Expiry,
		CVV:      nullString(card.CVV),
		Currency: nullString(card.Currency),
		BIN:      card.BIN,
	}
	if card.Balance != nil {
		p.Balance = decimal.NewNullDecimal(decimal.NewFromFloat(*card.Balance).Round(2))
	}
}

func domainCardsToPg(batchID domain.BatchID, cards []domain.CardRecord) []PgCard {
	out := make([]PgCard, len(cards))
	for i := range out {
		out[i].FromDomain(batchID, i, cards[i])
	}

	return out
}

func pgCardsToDomain(cards []PgCard) []domain.StoredCard {
	out := make([]domain.StoredCard, 0, len(cards))
	for i := range cards {
		out = append(out, cards[i].ToDomain())
	}

	return out
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
