package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-laundry/internal/form"
	"github.com/noah-isme/backend-laundry/internal/health"
	"github.com/noah-isme/backend-laundry/internal/laundry"
	"github.com/noah-isme/backend-laundry/internal/obs"
	"github.com/noah-isme/backend-laundry/internal/ratelimit"
	"github.com/noah-isme/backend-laundry/internal/screen"
	"github.com/noah-isme/backend-laundry/internal/share"
)

func testRouter(t *testing.T, sink share.Sink, limit int64) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	formHandler := &form.Handler{
		Sink:     sink,
		Location: time.UTC,
		Logger:   zerolog.Nop(),
		Now:      func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC) },
		NewID:    func() uuid.UUID { return uuid.MustParse("9d1f5a3e-2b47-4c8d-a1e6-3f0b7c2d9e81") },
	}
	return newRouter(routerDeps{
		Logger:    zerolog.Nop(),
		Metrics:   obs.NewHTTPMetrics("laundry_test", nil, reg),
		Gatherer:  reg,
		BodyLimit: 1024,
		Headers:   true,
		RateLimit: ratelimit.Handler{Limiter: ratelimit.NewMemoryLimiter(limit, time.Minute)},
		Health:    health.Handler{Checkers: []health.Checker{laundry.PricingCheck{}}},
		Screens:   screen.NewHandler(nil),
		Quote:     &laundry.Handler{},
		Form:      formHandler,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterEndToEnd(t *testing.T) {
	var shared []string
	h := testRouter(t, share.SinkFunc(func(text, _ string) { shared = append(shared, text) }), 100)

	rr := do(t, h, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/screens", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	rr = do(t, h, http.MethodGet, "/api/v1/screens/aboutScreen", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/v1/laundry/quote", `{"customerName":"Budi","customerAddress":"Jl. Melati","weightKg":"3"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"netTotal":"15000"`)

	rr = do(t, h, http.MethodPost, "/api/v1/laundry/form", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var created struct {
		Data form.Envelope `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	dispatch, err := json.Marshal(form.DispatchRequest{
		State: created.Data.State,
		Actions: []form.Action{
			{Type: form.ActionSetName, Value: "Budi"},
			{Type: form.ActionSetAddress, Value: "Jl. Melati"},
			{Type: form.ActionSetWeight, Value: "6"},
			{Type: form.ActionCalculate},
		},
	})
	require.NoError(t, err)
	rr = do(t, h, http.MethodPost, "/api/v1/laundry/form/actions", string(dispatch))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var computed struct {
		Data form.Envelope `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &computed))
	require.True(t, computed.Data.View.CanShare)

	shareBody, err := json.Marshal(form.ShareRequest{State: computed.Data.State})
	require.NoError(t, err)
	rr = do(t, h, http.MethodPost, "/api/v1/laundry/form/share", string(shareBody))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Total Biaya: Rp27.000")
	require.Contains(t, rr.Body.String(), "Diskon: Rp3.000")
	require.Len(t, shared, 1)

	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "laundry_test_http_requests_total")
}

func TestRouterRejectsOversizedBody(t *testing.T) {
	h := testRouter(t, nil, 100)
	rr := do(t, h, http.MethodPost, "/api/v1/laundry/quote", `{"customerName":"`+strings.Repeat("a", 2048)+`"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	require.Contains(t, rr.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestRouterRateLimitsAPI(t *testing.T) {
	h := testRouter(t, nil, 1)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/screens", "").Code)
	rr := do(t, h, http.MethodGet, "/api/v1/screens", "")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	// health endpoints sit outside the limiter
	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health/live", "").Code)
}
