package proxy

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/skavtech/ict-platform/api-gateway/config"
	"github.com/skavtech/ict-platform/api-gateway/loadbalancer"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// hop-by-hop headers are never forwarded.
var hopHeaders = map[string]bool{
	"connection":          true,
	"keep-alive":          true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"te":                  true,
	"trailer":             true,
	"transfer-encoding":   true,
	"upgrade":             true,
	"host":                true,
	"content-length":      true,
	"accept-encoding":     true,
}

// ReverseProxy forwards requests to the backend services.
type ReverseProxy struct {
	services      map[string]config.ServiceConfig
	clients       map[string]*http.Client
	loadBalancers map[string]*loadbalancer.RoundRobin
}

// NewReverseProxy creates a reverse proxy with one balancer and one client
// per configured service.
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	p := &ReverseProxy{
		services:      cfg.Services,
		clients:       make(map[string]*http.Client, len(cfg.Services)),
		loadBalancers: make(map[string]*loadbalancer.RoundRobin, len(cfg.Services)),
	}
	for name, svc := range cfg.Services {
		p.loadBalancers[name] = loadbalancer.NewRoundRobin(svc.Instances)
		p.clients[name] = &http.Client{
			Timeout:   svc.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
		logger.Logger.Info().
			Str("service", name).
			Strs("instances", svc.Instances).
			Msg("Registered backend service")
	}
	return p
}

// Handler returns a fiber handler that proxies to serviceName.
func (p *ReverseProxy) Handler(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return p.ProxyRequest(c, serviceName)
	}
}

// ProxyRequest forwards the request to the target service
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx, serviceName string) error {
	lb, ok := p.loadBalancers[serviceName]
	if !ok {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("Unknown service '%s'", serviceName),
		})
	}
	serverURL := lb.Next()
	if serverURL == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("No available instances for '%s'", serviceName),
		})
	}

	ctx := c.UserContext()
	targetURL := serverURL + string(c.Request().URI().RequestURI())

	logger.Debug(ctx).
		Str("service", serviceName).
		Str("target_url", targetURL).
		Msg("Proxying request")

	req, err := http.NewRequestWithContext(ctx, c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create request",
		})
	}
	copyRequestHeaders(c, req)

	resp, err := p.clients[serviceName].Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Str("service", serviceName).Str("target_url", targetURL).Msg("Backend request failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to reach backend service",
			"service": serviceName,
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read backend response",
			"service": serviceName,
		})
	}

	for key, values := range resp.Header {
		if hopHeaders[strings.ToLower(key)] {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
	c.Status(resp.StatusCode)
	return c.Send(body)
}

// Stats returns per service balancer statistics.
func (p *ReverseProxy) Stats() map[string]interface{} {
	stats := make(map[string]interface{}, len(p.loadBalancers))
	for name, lb := range p.loadBalancers {
		stats[name] = lb.GetStats()
	}
	return stats
}

func copyRequestHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		k := string(key)
		if hopHeaders[strings.ToLower(k)] {
			return
		}
		req.Header.Add(k, string(value))
	})
	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}
