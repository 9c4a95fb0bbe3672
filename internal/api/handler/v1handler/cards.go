package v1handler

import (
	"net/http"

	"cardforge/internal/cards"
	"cardforge/internal/export"
	"cardforge/pkg/domain"
	"cardforge/pkg/logger"

	"go.uber.org/zap"
)

// GenerateCardsRequest is the body of POST /v1/cards.
type GenerateCardsRequest struct {
	Network        string `json:"network"         validate:"required,max=32"`
	Quantity       int    `json:"quantity"        validate:"required,min=1"`
	ExpMonth       int    `json:"exp_month"       validate:"omitempty,min=1,max=12"`
	ExpYear        int    `json:"exp_year"        validate:"omitempty,min=1000,max=9999"`
	IncludeCVV     bool   `json:"include_cvv"`
	IncludeBalance bool   `json:"include_balance"`
	Currency       string `json:"currency"        validate:"omitempty,len=3,alpha"`
	BINCode        string `json:"bin_code"        validate:"omitempty,binspec"`
	// Format selects a text export instead of the JSON record list.
	Format string `json:"format" validate:"omitempty,max=8"`
}

// ValidateCardRequest is the body of POST /v1/cards/validate.
type ValidateCardRequest struct {
	Number string `json:"number" validate:"required,max=64"`
}

// ExportCardsRequest is the body of POST /v1/cards/export.
type ExportCardsRequest struct {
	Format string              `json:"format" validate:"required,max=8"`
	Cards  []domain.CardRecord `json:"cards"  validate:"required"`
}

// List wraps collection responses.
type List[T any] struct {
	Items []T `json:"items"`
}

func (h *Handler) ListNetworks(w http.ResponseWriter, r *http.Request) error {
	writeJSON(r.Context(), w, http.StatusOK, List[domain.NetworkEntry]{Items: h.deps.Cards.Networks(r.Context())})

	return nil
}

func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) error {
	writeJSON(r.Context(), w, http.StatusOK, List[domain.Currency]{Items: h.deps.Cards.Currencies(r.Context())})

	return nil
}

func (h *Handler) GenerateCards(w http.ResponseWriter, r *http.Request) error {
	var req GenerateCardsRequest
	if err := h.read(r, &req); err != nil {
		return err
	}
	if req.Format != "" {
		if _, err := export.ParseFormat(req.Format); err != nil {
			return err //nolint: wrapcheck
		}
	}

	ctx := logger.WithFields(r.Context(), zap.String("network", req.Network), zap.Int("quantity", req.Quantity))
	records, err := h.deps.Cards.Generate(ctx, cards.GenerateRequest{
		Network:  req.Network,
		Quantity: req.Quantity,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
		CVV:      req.IncludeCVV,
		Balance:  req.IncludeBalance,
		Currency: req.Currency,
		BINSpec:  req.BINCode,
	})
	if err != nil {
		return err
	}

	if req.Format == "" {
		writeJSON(ctx, w, http.StatusOK, List[domain.CardRecord]{Items: records})

		return nil
	}

	return h.writeExport(w, r, records, req.Format)
}

func (h *Handler) ValidateCard(w http.ResponseWriter, r *http.Request) error {
	var req ValidateCardRequest
	if err := h.read(r, &req); err != nil {
		return err
	}

	writeJSON(r.Context(), w, http.StatusOK, h.deps.Cards.Validate(r.Context(), req.Number))

	return nil
}

func (h *Handler) ExportCards(w http.ResponseWriter, r *http.Request) error {
	var req ExportCardsRequest
	if err := h.read(r, &req); err != nil {
		return err
	}

	return h.writeExport(w, r, req.Cards, req.Format)
}

func (h *Handler) writeExport(w http.ResponseWriter, r *http.Request, records []domain.CardRecord, format string) error {
	out, err := h.deps.Cards.Export(r.Context(), records, format)
	if err != nil {
		return err
	}

	// Export accepted the token, so it parses.
	f, _ := export.ParseFormat(format)
	w.Header().Set("Content-Type", contentType(f))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		logger.Warn(r.Context(), "could not write export", zap.Error(err))
	}

	return nil
}

func contentType(f export.Format) string {
	switch f {
	case export.CSV:
		return "text/csv; charset=utf-8"
	case export.JSON:
		return "application/json; charset=utf-8"
	case export.XML:
		return "application/xml; charset=utf-8"
	case export.SQL:
		return "application/sql; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
