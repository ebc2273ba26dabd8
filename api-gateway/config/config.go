package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/skavtech/ict-platform/pkg/config"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// BaseURL is the first configured instance, used for health probes.
func (s ServiceConfig) BaseURL() string {
	if len(s.Instances) == 0 {
		return ""
	}
	return s.Instances[0]
}

// RateLimitConfig bounds requests per client in a sliding window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// BreakerConfig controls when a service circuit opens and for how long.
type BreakerConfig struct {
	MaxFailures int
	OpenTimeout time.Duration
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	*config.Config

	Services    map[string]ServiceConfig
	CORSOrigins string
	CacheTTL    time.Duration
	RateLimit   RateLimitConfig
	Breaker     BreakerConfig
}

var serviceDefaults = map[string]struct {
	env  string
	name string
	url  string
}{
	"user":        {"USER_SERVICE_URL", "user-service", "http://localhost:8080"},
	"catalog":     {"CATALOG_SERVICE_URL", "catalog-service", "http://localhost:8081"},
	"tradein":     {"TRADEIN_SERVICE_URL", "tradein-service", "http://localhost:8082"},
	"servicedesk": {"SERVICEDESK_SERVICE_URL", "servicedesk-service", "http://localhost:8083"},
}

// Load reads the shared service configuration plus the gateway's own keys.
// Service URLs accept a comma separated list of instances.
func Load() (*GatewayConfig, error) {
	base, err := config.Load(config.Defaults{
		ServiceName: "api-gateway",
		HTTPPort:    "8000",
	})
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("port", base.HTTPPort)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("breaker.max_failures", 5)
	v.SetDefault("breaker.open_timeout", 30*time.Second)
	v.SetDefault("service_timeout", 30*time.Second)

	bindings := map[string]string{
		"port":                 "GATEWAY_PORT",
		"cors_origins":         "CORS_ALLOWED_ORIGINS",
		"cache_ttl":            "CACHE_TTL",
		"rate_limit.requests":  "RATE_LIMIT_REQUESTS",
		"rate_limit.window":    "RATE_LIMIT_WINDOW",
		"breaker.max_failures": "BREAKER_MAX_FAILURES",
		"breaker.open_timeout": "BREAKER_OPEN_TIMEOUT",
		"service_timeout":      "SERVICE_TIMEOUT",
	}
	for key, d := range serviceDefaults {
		v.SetDefault("services."+key, d.url)
		bindings["services."+key] = d.env
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	base.HTTPPort = v.GetString("port")
	cfg := &GatewayConfig{
		Config:      base,
		Services:    make(map[string]ServiceConfig, len(serviceDefaults)),
		CORSOrigins: v.GetString("cors_origins"),
		CacheTTL:    v.GetDuration("cache_ttl"),
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		Breaker: BreakerConfig{
			MaxFailures: v.GetInt("breaker.max_failures"),
			OpenTimeout: v.GetDuration("breaker.open_timeout"),
		},
	}
	for key, d := range serviceDefaults {
		cfg.Services[key] = ServiceConfig{
			Name:        d.name,
			Instances:   splitURLs(v.GetString("services." + key)),
			Timeout:     v.GetDuration("service_timeout"),
			HealthCheck: "/health",
		}
	}
	return cfg, cfg.validate()
}

func (c *GatewayConfig) validate() error {
	for key, svc := range c.Services {
		if len(svc.Instances) == 0 {
			return fmt.Errorf("services.%s: at least one instance URL is required", key)
		}
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit: requests and window must be positive")
	}
	if c.Breaker.MaxFailures <= 0 {
		return fmt.Errorf("breaker.max_failures must be positive")
	}
	return nil
}

func splitURLs(s string) []string {
	var out []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			out = append(out, u)
		}
	}
	return out
}
