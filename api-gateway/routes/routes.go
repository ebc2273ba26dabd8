package routes

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skavtech/ict-platform/api-gateway/health"
	"github.com/skavtech/ict-platform/api-gateway/middleware"
	"github.com/skavtech/ict-platform/api-gateway/proxy"
)

// Access is the minimum caller identity the gateway demands for a route.
// Backends still apply their own finer grained checks.
type Access string

const (
	Public        Access = "public"
	Authenticated Access = "authenticated"
	AdminOnly     Access = "admin"
)

// RouteDefinition maps a path prefix to a backend service.
type RouteDefinition struct {
	Prefix      string `json:"prefix"`
	ServiceName string `json:"service"`
	Access      Access `json:"access"`
	// CacheGroup names the Redis namespace for GET responses. Writes under
	// any route of the same group drop it. Empty disables caching.
	CacheGroup  string `json:"cache_group,omitempty"`
	Description string `json:"description"`
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{Prefix: "/api/auth", ServiceName: "user", Access: Public, Description: "Signup and login"},
	{Prefix: "/api/users", ServiceName: "user", Access: Authenticated, Description: "Profile and user administration"},

	{Prefix: "/api/products", ServiceName: "catalog", Access: Public, CacheGroup: "catalog", Description: "Refurbished product catalog"},
	{Prefix: "/api/comparison", ServiceName: "catalog", Access: Public, Description: "Side by side product comparison"},

	{Prefix: "/api/trade-in", ServiceName: "tradein", Access: Public, Description: "Trade-in estimates and requests"},

	// Registered before /api/warranty so the longer prefix wins in the router.
	{Prefix: "/api/warranties", ServiceName: "servicedesk", Access: AdminOnly, CacheGroup: "warranty", Description: "Warranty registration"},
	{Prefix: "/api/warranty", ServiceName: "servicedesk", Access: Public, CacheGroup: "warranty", Description: "Warranty lookup by serial number"},
	{Prefix: "/api/repairs", ServiceName: "servicedesk", Access: Public, Description: "Repair tickets"},
	{Prefix: "/api/admin", ServiceName: "servicedesk", Access: AdminOnly, Description: "Device lifecycle board"},
	{Prefix: "/api/fleet", ServiceName: "servicedesk", Access: Authenticated, Description: "Business fleet management"},
}

// Lookup returns the route whose prefix owns path. Prefixes match on whole
// path segments, so /api/warranty does not claim /api/warranties.
func Lookup(path string) (RouteDefinition, bool) {
	for _, r := range Routes {
		if path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/") {
			return r, true
		}
	}
	return RouteDefinition{}, false
}

// Dependencies are the shared components the route chains are built from.
// Cache and RateLimiter are nil when Redis is unavailable.
type Dependencies struct {
	Proxy       *proxy.ReverseProxy
	Health      *health.HealthChecker
	Breakers    *middleware.CircuitBreakerManager
	Cache       *middleware.Cache
	RateLimiter *middleware.RateLimiter
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(deps.Health.QuickCheck())
	})

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		status := deps.Health.CheckAllServices(ctx)
		code := fiber.StatusOK
		if status.Status == health.StatusUnhealthy {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(status)
	})

	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		return c.JSON(deps.Health.CheckAllServices(ctx))
	})

	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"circuit_breakers": deps.Breakers.GetAllStats(),
			"load_balancers":   deps.Proxy.Stats(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ICT Platform API Gateway",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		handlers := chain(route, deps)
		app.All(route.Prefix, handlers...)
		app.All(route.Prefix+"/*", handlers...)
	}
}

// chain builds the handler list for a route: identity, rate limit, cache,
// circuit breaker, proxy.
func chain(route RouteDefinition, deps Dependencies) []fiber.Handler {
	handlers := []fiber.Handler{func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalService, route.ServiceName)
		return c.Next()
	}}

	switch route.Access {
	case AdminOnly:
		handlers = append(handlers, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	case Authenticated:
		handlers = append(handlers, middleware.AuthMiddleware())
	}

	if deps.RateLimiter != nil {
		handlers = append(handlers, deps.RateLimiter.Middleware())
	}

	if deps.Cache != nil && route.CacheGroup != "" {
		handlers = append(handlers,
			deps.Cache.InvalidateOnWrite(route.CacheGroup),
			deps.Cache.Middleware(route.CacheGroup),
		)
	}

	return append(handlers,
		deps.Breakers.Middleware(route.ServiceName),
		deps.Proxy.Handler(route.ServiceName),
	)
}
