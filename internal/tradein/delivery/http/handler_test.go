package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/internal/tradein/repository"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/command"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/query"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/kafka"
	"github.com/skavtech/ict-platform/pkg/auth"
)

func init() {
	auth.Configure("tradein-handler-test", time.Hour)
}

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func newTestRouter(t *testing.T) (*mux.Router, *repository.MemoryTradeInRepository) {
	t.Helper()
	repo := repository.NewMemoryTradeInRepository()
	estimator := valuation.NewEstimator(fixedJitter(0.5))
	publisher := kafka.NoopPublisher{}

	h := NewTradeInHandler(
		query.NewEstimateHandler(estimator),
		query.NewGetTradeInHandler(repo),
		query.NewListTradeInsHandler(repo),
		command.NewCreateTradeInHandler(repo, estimator, publisher),
		command.NewUpdateStatusHandler(repo, publisher),
		prometheus.NewRegistry(),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, repo
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		assert.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "ops", "admin")
	assert.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func macbook() map[string]string {
	return map[string]string{
		"deviceType": "laptop",
		"brand":      "Apple",
		"model":      "MacBook Pro 14",
		"age":        "0-1",
		"condition":  "excellent",
	}
}

type tradeInEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Error   string         `json:"error"`
	Data    domain.TradeIn `json:"data"`
}

func TestEstimate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/trade-in/estimate", "", macbook())
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		EstimatedValue int64             `json:"estimatedValue"`
		Breakdown      map[string]string `json:"breakdown"`
	}](t, rec)
	check.Equal(t, int64(1030), body.EstimatedValue)
	check.Equal(t, macbook(), body.Breakdown)
}

func TestEstimateValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := macbook()
	req["deviceType"] = "phone"
	req["brand"] = "  "

	rec := do(t, router, http.MethodPost, "/api/trade-in/estimate", "", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[ValidationResponse](t, rec)
	check.Equal(t, "Invalid trade-in data", body.Message)
	assert.Equal(t, 2, len(body.Errors))
	check.Equal(t, "deviceType", body.Errors[0].Field)
	check.Equal(t, "brand", body.Errors[1].Field)
}

func TestEstimateMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/trade-in/estimate", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[ValidationResponse](t, rec)
	check.Equal(t, "Invalid trade-in data", body.Message)
	check.Equal(t, 1, len(body.Errors))
}

func TestCreateTradeInIgnoresClientEstimate(t *testing.T) {
	router, repo := newTestRouter(t)

	req := map[string]any{
		"deviceType":     "laptop",
		"brand":          "Apple",
		"model":          "MacBook Pro 14",
		"age":            "0-1",
		"condition":      "excellent",
		"estimatedValue": 999999,
		"customerInfo":   map[string]string{"name": "Wanjiru", "email": "wanjiru@example.co.ke", "phone": "+254712345678"},
	}
	rec := do(t, router, http.MethodPost, "/api/trade-in", "", req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode[tradeInEnvelope](t, rec)
	check.True(t, body.Success)
	check.Equal(t, int64(1030), body.Data.EstimatedValue)
	check.Equal(t, domain.StatusQuoted, body.Data.Status)
	check.Equal(t, "Wanjiru", body.Data.CustomerInfo.Data().Name)

	stored, err := repo.FindByID(t.Context(), body.Data.ID)
	assert.NoError(t, err)
	check.Equal(t, int64(1030), stored.EstimatedValue)
}

func TestCreateTradeInValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := macbook()
	req["age"] = "10+"
	rec := do(t, router, http.MethodPost, "/api/trade-in", "", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[ValidationResponse](t, rec)
	assert.Equal(t, 1, len(body.Errors))
	check.Equal(t, "age", body.Errors[0].Field)
}

func TestTradeInAdminRoutesRequireAdmin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/trade-in", "", nil)
	check.Equal(t, http.StatusUnauthorized, rec.Code)

	customer, err := auth.GenerateToken(2, "wanjiru", "customer")
	assert.NoError(t, err)
	rec = do(t, router, http.MethodGet, "/api/trade-in/1", customer, nil)
	check.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTradeInLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	rec := do(t, router, http.MethodPost, "/api/trade-in", "", macbook())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/trade-in/1/status", token, map[string]string{"status": "collected"})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[tradeInEnvelope](t, rec)
	check.Equal(t, domain.StatusCollected, body.Data.Status)
	check.True(t, body.Data.PickupScheduled)

	rec = do(t, router, http.MethodPatch, "/api/trade-in/1/status", token, map[string]string{"status": "scheduled"})
	check.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/trade-in/1/status", token, map[string]string{"status": "lost"})
	check.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/trade-in/7/status", token, map[string]string{"status": "processed"})
	check.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/trade-in/1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	check.Equal(t, domain.StatusCollected, decode[tradeInEnvelope](t, rec).Data.Status)

	rec = do(t, router, http.MethodGet, "/api/trade-in/abc", token, nil)
	check.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTradeIns(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	for range 3 {
		rec := do(t, router, http.MethodPost, "/api/trade-in", "", macbook())
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := do(t, router, http.MethodPatch, "/api/trade-in/2/status", token, map[string]string{"status": "scheduled"})
	assert.Equal(t, http.StatusOK, rec.Code)

	type page struct {
		Data query.TradeInPage `json:"data"`
	}

	rec = do(t, router, http.MethodGet, "/api/trade-in?limit=2", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	p := decode[page](t, rec).Data
	check.Equal(t, int64(3), p.Total)
	check.Equal(t, 2, len(p.TradeIns))
	check.Equal(t, uint(3), p.TradeIns[0].ID)

	rec = do(t, router, http.MethodGet, "/api/trade-in?status=scheduled", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	p = decode[page](t, rec).Data
	check.Equal(t, int64(1), p.Total)
	check.Equal(t, uint(2), p.TradeIns[0].ID)

	rec = do(t, router, http.MethodGet, "/api/trade-in?status=lost", token, nil)
	check.Equal(t, http.StatusBadRequest, rec.Code)
}
