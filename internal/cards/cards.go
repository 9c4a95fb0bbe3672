package cards

import (
	"context"
	"strings"
	"time"

	"cardforge/internal/cardgen"
	"cardforge/internal/config"
	"cardforge/internal/export"
	"cardforge/internal/network"
	"cardforge/internal/validation"
	"cardforge/pkg/domain"
	"cardforge/pkg/logger"
	"cardforge/pkg/metrics"
	"cardforge/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "cardforge/internal/cards"

// Options configure request bounds and generation defaults.
type Options struct {
	// MaxQuantity caps records per request. Zero disables the cap.
	MaxQuantity int
	// Balance bounds generated balances.
	Balance cardgen.BalanceRange
	// SQLTable is the table targeted by SQL exports.
	SQLTable string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxQuantity: cfg.Generator.MaxQuantity,
		Balance: cardgen.BalanceRange{
			Min: cfg.Generator.BalanceMin,
			Max: cfg.Generator.BalanceMax,
		},
		SQLTable: cfg.Generator.SQLTable,
	}
}

// Deps are the collaborators of the service. Zero values fall back to the
// built-in catalog, the wall clock and a no-op meter provider.
type Deps struct {
	Catalog       *network.Catalog
	Clock         func() time.Time
	MeterProvider metric.MeterProvider
}

type instruments struct {
	generated metric.Int64Counter
	validated metric.Int64Counter
	exported  metric.Int64Counter
	duration  metric.Float64Histogram
}

type service struct {
	options   Options
	catalog   *network.Catalog
	generator *cardgen.Generator
	validator *validation.Validator
	exporter  *export.Exporter
	inst      instruments
}

// New returns the card Service.
func New(deps Deps, opts Options) (Service, error) {
	if deps.Catalog == nil {
		deps.Catalog = network.Default()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.MeterProvider == nil {
		deps.MeterProvider = noop.NewMeterProvider()
	}
	if opts.Balance == (cardgen.BalanceRange{}) {
		opts.Balance = cardgen.DefaultBalanceRange
	}

	exporter, err := export.New(opts.SQLTable)
	if err != nil {
		return nil, err
	}

	inst, err := newInstruments(deps.MeterProvider.Meter(meterName))
	if err != nil {
		return nil, err
	}

	return &service{
		options: opts,
		catalog: deps.Catalog,
		generator: cardgen.New(deps.Catalog,
			cardgen.WithClock(deps.Clock),
			cardgen.WithBalanceRange(opts.Balance)),
		validator: validation.New(deps.Catalog),
		exporter:  exporter,
		inst:      inst,
	}, nil
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var (
		inst instruments
		err  error
	)

	if inst.generated, err = meter.Int64Counter("cards.generated",
		metric.WithDescription("Number of generated card records")); err != nil {
		return inst, err //nolint: wrapcheck
	}
	if inst.validated, err = meter.Int64Counter("cards.validated",
		metric.WithDescription("Number of validated card numbers")); err != nil {
		return inst, err //nolint: wrapcheck
	}
	if inst.exported, err = meter.Int64Counter("cards.exported",
		metric.WithDescription("Number of exported card records")); err != nil {
		return inst, err //nolint: wrapcheck
	}
	if inst.duration, err = meter.Float64Histogram("cards.generate.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Batch generation latency"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return inst, err //nolint: wrapcheck
	}

	return inst, nil
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) ([]domain.CardRecord, error) {
	opts, err := s.batchOptions(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := s.generator.Batch(opts)
	if err != nil {
		logger.Warn(ctx, "could not generate cards",
			zap.String("network", req.Network), zap.Int("quantity", req.Quantity), zap.Error(err))

		return nil, err
	}

	attrs := metric.WithAttributes(attribute.String("network", string(opts.Network)))
	s.inst.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.inst.generated.Add(ctx, int64(len(records)), attrs)

	logger.Debug(ctx, "generated cards",
		zap.String("network", string(opts.Network)),
		zap.Int("quantity", len(records)),
		zap.Bool("cvv", opts.CVV),
		zap.Bool("balance", opts.Balance))

	return records, nil
}

func (s *service) batchOptions(req GenerateRequest) (cardgen.BatchOptions, error) {
	id := domain.NetworkID(strings.ToLower(strings.TrimSpace(req.Network)))
	if id != domain.RandomNetwork {
		if _, err := s.catalog.Lookup(id); err != nil {
			return cardgen.BatchOptions{}, err //nolint: wrapcheck
		}
	}

	switch {
	case req.Quantity < 1:
		return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest, "quantity must be at least 1")
	case s.options.MaxQuantity > 0 && req.Quantity > s.options.MaxQuantity:
		return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest,
			"quantity must not exceed %d", s.options.MaxQuantity)
	case req.ExpMonth < 0 || req.ExpMonth > 12:
		return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest, "expiry month must be within 1..12")
	case req.ExpYear != 0 && (req.ExpYear < 1000 || req.ExpYear > 9999):
		return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest, "expiry year must have four digits")
	case !cardgen.ValidBINSpec(req.BINSpec):
		return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest,
			"bin must be at most 19 digits or x placeholders")
	}

	currency := ""
	if req.Currency != "" {
		c, ok := LookupCurrency(req.Currency)
		if !ok {
			return cardgen.BatchOptions{}, serrors.With(serrors.ErrBadRequest, "unknown currency: %s", req.Currency)
		}
		currency = c.Code
	}

	return cardgen.BatchOptions{
		Network:  id,
		Quantity: req.Quantity,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
		CVV:      req.CVV,
		Balance:  req.Balance,
		Currency: currency,
		BINSpec:  req.BINSpec,
	}, nil
}

func (s *service) Validate(ctx context.Context, number string) domain.ValidationResult {
	res := s.validator.Validate(number)
	s.inst.validated.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(res.Reason))))

	logger.Debug(ctx, "validated card number",
		logger.PAN("number", validation.Normalize(number)),
		zap.Bool("valid", res.Valid),
		zap.String("reason", string(res.Reason)))

	return res
}

func (s *service) Export(ctx context.Context, records []domain.CardRecord, format string) (string, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	out, err := s.exporter.Export(records, f)
	if err != nil {
		logger.Error(ctx, "could not export cards", zap.String("format", string(f)), zap.Error(err))

		return "", err //nolint: wrapcheck
	}

	s.inst.exported.Add(ctx, int64(len(records)), metric.WithAttributes(attribute.String("format", string(f))))

	return out, nil
}

func (s *service) Networks(_ context.Context) []domain.NetworkEntry {
	return s.catalog.List()
}

func (s *service) Currencies(_ context.Context) []domain.Currency {
	return Currencies()
}
