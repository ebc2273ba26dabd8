package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/api-gateway/config"
	"github.com/skavtech/ict-platform/api-gateway/health"
	"github.com/skavtech/ict-platform/api-gateway/middleware"
	"github.com/skavtech/ict-platform/api-gateway/proxy"
	"github.com/skavtech/ict-platform/pkg/auth"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path    string
		service string
		prefix  string
		found   bool
	}{
		{"/api/products", "catalog", "/api/products", true},
		{"/api/products/12/stock", "catalog", "/api/products", true},
		{"/api/comparison", "catalog", "/api/comparison", true},
		{"/api/trade-in/estimate", "tradein", "/api/trade-in", true},
		{"/api/warranty/SN-1", "servicedesk", "/api/warranty", true},
		{"/api/warranties", "servicedesk", "/api/warranties", true},
		{"/api/fleet/4/stats", "servicedesk", "/api/fleet", true},
		{"/api/users/me", "user", "/api/users", true},
		{"/api/productsx", "", "", false},
		{"/metrics", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Lookup(tt.path)
			check.Equal(t, tt.found, ok)
			check.Equal(t, tt.service, r.ServiceName)
			check.Equal(t, tt.prefix, r.Prefix)
		})
	}
}

type recorded struct {
	Service string `json:"service"`
	Path    string `json:"path"`
	Query   string `json:"query"`
	UserID  string `json:"userId"`
}

func echoBackend(name string, status *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != nil && *status != 0 {
			w.WriteHeader(*status)
		}
		_ = json.NewEncoder(w).Encode(recorded{
			Service: name,
			Path:    r.URL.Path,
			Query:   r.URL.RawQuery,
			UserID:  r.Header.Get("X-User-ID"),
		})
	}))
}

func newGateway(t *testing.T, servicedeskStatus *int) *fiber.App {
	t.Helper()
	auth.Configure("routes-test-secret", time.Hour)

	cfg := &config.GatewayConfig{Services: map[string]config.ServiceConfig{}}
	for _, name := range []string{"user", "catalog", "tradein", "servicedesk"} {
		var status *int
		if name == "servicedesk" {
			status = servicedeskStatus
		}
		srv := echoBackend(name, status)
		t.Cleanup(srv.Close)
		cfg.Services[name] = config.ServiceConfig{Name: name, Instances: []string{srv.URL}, HealthCheck: "/health", Timeout: 5 * time.Second}
	}

	app := fiber.New()
	app.Use(middleware.StripIdentityHeaders())
	SetupRoutes(app, Dependencies{
		Proxy:    proxy.NewReverseProxy(cfg),
		Health:   health.NewHealthChecker(cfg),
		Breakers: middleware.NewCircuitBreakerManager(2, time.Minute),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, recorded) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)

	var got recorded
	body, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(body, &got)
	return resp, got
}

func TestGatewayRoutesToServices(t *testing.T) {
	app := newGateway(t, nil)

	tests := []struct {
		path    string
		service string
	}{
		{"/api/products?category=laptop&page=2", "catalog"},
		{"/api/trade-in/estimate", "tradein"},
		{"/api/warranty/SN123", "servicedesk"},
		{"/api/repairs/REP-ABC", "servicedesk"},
		{"/api/auth/login", "user"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, got := doRequest(t, app, "GET", tt.path, "")
			check.Equal(t, fiber.StatusOK, resp.StatusCode)
			check.Equal(t, tt.service, got.Service)
		})
	}

	_, got := doRequest(t, app, "GET", "/api/products?category=laptop&page=2", "")
	check.Equal(t, "/api/products", got.Path)
	check.Equal(t, "category=laptop&page=2", got.Query)
}

func TestGatewayAccessControl(t *testing.T) {
	app := newGateway(t, nil)

	customer, err := auth.GenerateToken(5, "otieno", "customer")
	assert.NoError(t, err)
	admin, err := auth.GenerateToken(1, "root", "admin")
	assert.NoError(t, err)

	resp, _ := doRequest(t, app, "GET", "/api/fleet/3", "")
	check.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, got := doRequest(t, app, "GET", "/api/fleet/3", customer)
	check.Equal(t, fiber.StatusOK, resp.StatusCode)
	check.Equal(t, "5", got.UserID)

	resp, _ = doRequest(t, app, "GET", "/api/admin/stats", customer)
	check.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/warranties", customer)
	check.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, got = doRequest(t, app, "GET", "/api/admin/stats", admin)
	check.Equal(t, fiber.StatusOK, resp.StatusCode)
	check.Equal(t, "/api/admin/stats", got.Path)
}

func TestGatewayOpensBreakerOnBackendErrors(t *testing.T) {
	status := http.StatusInternalServerError
	app := newGateway(t, &status)

	for range 2 {
		resp, _ := doRequest(t, app, "GET", "/api/repairs/REP-1", "")
		check.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	}

	resp, _ := doRequest(t, app, "GET", "/api/repairs/REP-1", "")
	check.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	resp, got := doRequest(t, app, "GET", "/api/products", "")
	check.Equal(t, fiber.StatusOK, resp.StatusCode)
	check.Equal(t, "catalog", got.Service)
}

func TestGatewayHealthEndpoints(t *testing.T) {
	app := newGateway(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/live", nil))
	assert.NoError(t, err)
	check.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/ready", nil), 10000)
	assert.NoError(t, err)
	check.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status health.GatewayHealth
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &status))
	check.Equal(t, health.StatusHealthy, status.Status)
	check.Equal(t, 4, len(status.Services))
}
