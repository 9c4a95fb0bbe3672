package api_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"cardforge/internal/api"
	"cardforge/internal/api/handler/v1handler"
	"cardforge/internal/cards"
	"cardforge/internal/config"
	"cardforge/pkg/controller"
	"cardforge/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, maxBody int64) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	svc, err := cards.New(cards.Deps{MeterProvider: mp}, cards.Options{MaxQuantity: 10})
	require.NoError(t, err)

	return api.NewRouter(api.Deps{
		Deps:     v1handler.Deps{Cards: svc},
		Gatherer: reg,
	}, api.Options{MetricsPath: "/metrics", MaxBodyBytes: maxBody, Docs: true})
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Live(t *testing.T) {
	rec := serve(newTestRouter(t, 0), http.MethodGet, "/-/live", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, rec.Header().Get(controller.RequestIDHeader))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Spec(t *testing.T) {
	rec := serve(newTestRouter(t, 0), http.MethodGet, "/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestRouter_GenerateThenValidate(t *testing.T) {
	r := newTestRouter(t, 0)

	rec := serve(r, http.MethodPost, "/v1/cards", `{"network":"visa","quantity":2,"format":"pipe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		number, _, ok := strings.Cut(line, "|")
		require.True(t, ok)

		res := serve(r, http.MethodPost, "/v1/cards/validate", `{"number":"`+number+`"}`)
		require.Equal(t, http.StatusOK, res.Code)
		require.JSONEq(t,
			`{"valid":true,"luhn_valid":true,"network":"Visa","length":`+strconv.Itoa(len(number))+`,"reason":"valid"}`,
			res.Body.String())
	}

	metricsRec := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, metricsRec.Code)
	require.Contains(t, metricsRec.Body.String(), "cards_generated")
}

func TestRouter_QuantityCap(t *testing.T) {
	rec := serve(newTestRouter(t, 0), http.MethodPost, "/v1/cards", `{"network":"visa","quantity":11}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "quantity must not exceed 10")
}

func TestRouter_BodyLimit(t *testing.T) {
	body := `{"number":"` + strings.Repeat("4", 200) + `"}`
	rec := serve(newTestRouter(t, 64), http.MethodPost, "/v1/cards/validate", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
}

func TestRouter_Docs(t *testing.T) {
	rec := serve(newTestRouter(t, 0), http.MethodGet, "/v1/docs/", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_NotFound(t *testing.T) {
	rec := serve(newTestRouter(t, 0), http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"route not found"}`, rec.Body.String())
}

func TestNewServer(t *testing.T) {
	var cfg config.Config
	cfg.HTTP.Addr = ":9999"
	cfg.HTTP.ReadTimeout = time.Second
	cfg.HTTP.RequestTimeout = 2 * time.Second
	cfg.HTTP.MetricsPath = "/metrics"

	srv := api.NewServer(api.Deps{}, api.NewOptions(&cfg))
	require.Equal(t, ":9999", srv.Addr)
	require.Equal(t, time.Second, srv.ReadTimeout)
	require.NotNil(t, srv.Handler)
}
