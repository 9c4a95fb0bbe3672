package cardgen

import (
	"math/rand/v2"
	"time"

	"cardforge/internal/network"
	"cardforge/pkg/domain"
)

// Generator binds the generation functions to a catalog, a clock and a
// balance range. It holds no mutable state and is safe for concurrent use;
// every call draws from its own freshly seeded source.
type Generator struct {
	catalog *network.Catalog
	now     func() time.Time
	balance BalanceRange
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for expiry generation.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithBalanceRange overrides DefaultBalanceRange.
func WithBalanceRange(br BalanceRange) Option {
	return func(g *Generator) { g.balance = br }
}

// New returns a Generator over catalog, or over network.Default when catalog
// is nil.
func New(catalog *network.Catalog, opts ...Option) *Generator {
	if catalog == nil {
		catalog = network.Default()
	}

	g := &Generator{catalog: catalog, now: time.Now, balance: DefaultBalanceRange}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Catalog returns the catalog the generator resolves networks against.
func (g *Generator) Catalog() *network.Catalog { return g.catalog }

func (g *Generator) Number(id domain.NetworkID, binSpec string) (string, error) {
	return GenerateNumber(newRand(), g.catalog, id, binSpec)
}

func (g *Generator) CVV(id domain.NetworkID) (string, error) {
	return GenerateCVV(newRand(), g.catalog, id)
}

func (g *Generator) Expiry(month, year int) (string, string) {
	return GenerateExpiry(newRand(), g.now(), month, year)
}

func (g *Generator) Batch(opts BatchOptions) ([]domain.CardRecord, error) {
	return GenerateBatch(newRand(), g.catalog, g.now(), g.balance, opts)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
}
