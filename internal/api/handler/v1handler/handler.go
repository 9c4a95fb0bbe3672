// Package v1handler implements the /v1 HTTP API on top of the cards service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"cardforge/internal/cardgen"
	"cardforge/internal/cards"
	"cardforge/pkg/logger"
	"cardforge/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint: gochecknoglobals

// Deps are the collaborators of the handler.
type Deps struct {
	Cards cards.Service
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	lo.Must0(v.RegisterValidation("binspec", func(fl validator.FieldLevel) bool {
		return cardgen.ValidBINSpec(fl.Field().String())
	}))

	return &Handler{deps: deps, validate: v}
}

// Routes registers the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/networks", h.handle(h.ListNetworks))
	r.Get("/currencies", h.handle(h.ListCurrencies))
	r.Route("/cards", func(r chi.Router) {
		r.Post("/", h.handle(h.GenerateCards))
		r.Post("/validate", h.handle(h.ValidateCard))
		r.Post("/export", h.handle(h.ExportCards))
	})
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to a status code and a response body by its semantic
// kind. Errors without a kind are internal and their text is not exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case serrors.ErrBadRequest,
		serrors.ErrUnknownNetwork,
		serrors.ErrInvalidLength,
		serrors.ErrUnsupportedFormat:
		status = http.StatusBadRequest
	default:
		kind = serrors.ErrInternal
	}

	message := "internal error"
	var se *serrors.Error
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(ctx, "request failed", zap.Error(err))
	case errors.As(err, &se) && se.Message() != "":
		message = se.Message()
	default:
		message = strings.ToLower(strings.ReplaceAll(kind.Error(), "_", " "))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: message},
	}
}

func (h *Handler) handle(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			h.WriteError(w, r, err)
		}
	}
}

// WriteError writes err as an ErrorResponse.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

// NotFound replies with a NOT_FOUND error body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: "route not found"})
}

// MethodNotAllowed replies with a METHOD_NOT_ALLOWED error body.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusMethodNotAllowed,
		ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
}

func (h *Handler) read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	if err := h.validate.StructCtx(r.Context(), dest); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
		}

		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request: %s", strings.Join(msgs, "; "))
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "binspec":
		return field + " must be at most 19 digits or x placeholders"
	default:
		if fe.Param() != "" {
			return field + " must satisfy " + fe.Tag() + "=" + fe.Param()
		}

		return field + " must satisfy " + fe.Tag()
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}
