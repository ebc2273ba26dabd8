package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/skavtech/ict-platform/api-gateway/config"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// Status values reported by the checker.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	URL       string    `json:"url"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway       string                   `json:"gateway"`
	Status        string                   `json:"status"`
	Services      map[string]ServiceHealth `json:"services"`
	UptimeSeconds float64                  `json:"uptime_seconds"`
}

// HealthChecker checks health of downstream services
type HealthChecker struct {
	services  map[string]config.ServiceConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		services:  cfg.Services,
		client:    &http.Client{Timeout: 5 * time.Second},
		startTime: time.Now(),
	}
}

// CheckService probes the first instance of a service.
func (h *HealthChecker) CheckService(ctx context.Context, name string, svc config.ServiceConfig) ServiceHealth {
	start := time.Now()
	result := ServiceHealth{
		Name:      name,
		URL:       svc.BaseURL(),
		Timestamp: start,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.BaseURL()+svc.HealthCheck, nil)
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = fmt.Sprintf("build request: %v", err)
		return result
	}

	resp, err := h.client.Do(req)
	result.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = fmt.Sprintf("unreachable: %v", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		result.Status = StatusHealthy
	} else {
		result.Status = StatusUnhealthy
		result.Error = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}
	return result
}

// CheckAllServices checks health of all downstream services concurrently.
func (h *HealthChecker) CheckAllServices(ctx context.Context) GatewayHealth {
	services := make(map[string]ServiceHealth, len(h.services))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for name, svc := range h.services {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := h.CheckService(ctx, name, svc)

			mu.Lock()
			services[name] = result
			mu.Unlock()

			if result.Status != StatusHealthy {
				logger.Warn(ctx).
					Str("service", name).
					Str("error", result.Error).
					Msg("Service health check failed")
			}
		}()
	}
	wg.Wait()

	return GatewayHealth{
		Gateway:       "api-gateway",
		Status:        overallStatus(services),
		Services:      services,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
}

func overallStatus(services map[string]ServiceHealth) string {
	healthy := 0
	for _, svc := range services {
		if svc.Status == StatusHealthy {
			healthy++
		}
	}
	switch {
	case healthy == len(services):
		return StatusHealthy
	case healthy > 0:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}

// QuickCheck reports the gateway itself without touching backends.
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":         StatusHealthy,
		"gateway":        "api-gateway",
		"uptime_seconds": time.Since(h.startTime).Seconds(),
		"timestamp":      time.Now(),
	}
}
