package middleware

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skavtech/ict-platform/pkg/logger"
)

// CircuitState represents the state of a circuit breaker
type CircuitState string

const (
	StateClosed   CircuitState = "closed"
	StateOpen     CircuitState = "open"
	StateHalfOpen CircuitState = "half-open"
)

// halfOpenSuccesses closes a half-open circuit.
const halfOpenSuccesses = 3

// ErrCircuitOpen is returned by Call while the circuit rejects requests.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker implements the circuit breaker pattern
type CircuitBreaker struct {
	name            string
	maxFailures     int
	timeout         time.Duration
	state           CircuitState
	failures        int
	successCount    int
	lastFailureTime time.Time
	lastStateChange time.Time
	now             func() time.Time
	mu              sync.Mutex
}

// NewCircuitBreaker creates a breaker that opens after maxFailures
// consecutive failures and probes again after timeout.
func NewCircuitBreaker(name string, maxFailures int, timeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		name:            name,
		maxFailures:     maxFailures,
		timeout:         timeout,
		state:           StateClosed,
		lastStateChange: time.Now(),
		now:             time.Now,
	}
}

// allow reports whether a request may go through, moving an expired open
// circuit to half-open.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastStateChange) >= cb.timeout {
		cb.setState(StateHalfOpen)
		cb.successCount = 0
	}
	return cb.state != StateOpen
}

// Call executes fn with circuit breaker protection
func (cb *CircuitBreaker) Call(fn func() error) error {
	if !cb.allow() {
		return fmt.Errorf("%w for %s", ErrCircuitOpen, cb.name)
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
	return err
}

func (cb *CircuitBreaker) onFailure() {
	cb.failures++
	cb.lastFailureTime = cb.now()

	switch {
	case cb.state == StateHalfOpen:
		cb.setState(StateOpen)
	case cb.failures >= cb.maxFailures:
		logger.Logger.Error().
			Str("circuit", cb.name).
			Int("failures", cb.failures).
			Int("threshold", cb.maxFailures).
			Msg("Circuit breaker opened")
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= halfOpenSuccesses {
			cb.failures = 0
			cb.successCount = 0
			cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) setState(state CircuitState) {
	if cb.state == state {
		return
	}
	logger.Logger.Info().
		Str("circuit", cb.name).
		Str("from", string(cb.state)).
		Str("to", string(state)).
		Msg("Circuit breaker state change")
	cb.state = state
	cb.lastStateChange = cb.now()
}

// GetState returns the current state
func (cb *CircuitBreaker) GetState() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// GetStats returns circuit breaker statistics
func (cb *CircuitBreaker) GetStats() map[string]interface{} {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return map[string]interface{}{
		"name":              cb.name,
		"state":             cb.state,
		"failures":          cb.failures,
		"max_failures":      cb.maxFailures,
		"last_failure_time": cb.lastFailureTime,
		"last_state_change": cb.lastStateChange,
	}
}

// CircuitBreakerManager manages one breaker per backend service
type CircuitBreakerManager struct {
	breakers    map[string]*CircuitBreaker
	maxFailures int
	timeout     time.Duration
	mu          sync.Mutex
}

// NewCircuitBreakerManager creates a new manager
func NewCircuitBreakerManager(maxFailures int, timeout time.Duration) *CircuitBreakerManager {
	return &CircuitBreakerManager{
		breakers:    make(map[string]*CircuitBreaker),
		maxFailures: maxFailures,
		timeout:     timeout,
	}
}

// GetOrCreate gets or creates a circuit breaker for a service
func (m *CircuitBreakerManager) GetOrCreate(serviceName string) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cb, exists := m.breakers[serviceName]; exists {
		return cb
	}
	cb := NewCircuitBreaker(serviceName, m.maxFailures, m.timeout)
	m.breakers[serviceName] = cb
	return cb
}

// GetAllStats returns stats for all circuit breakers
func (m *CircuitBreakerManager) GetAllStats() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := make(map[string]interface{}, len(m.breakers))
	for name, cb := range m.breakers {
		stats[name] = cb.GetStats()
	}
	return stats
}

// Middleware guards the downstream service: 5xx responses count as
// failures, and an open circuit answers 503 without calling it.
func (m *CircuitBreakerManager) Middleware(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cb := m.GetOrCreate(service)

		var responseErr error
		err := cb.Call(func() error {
			responseErr = c.Next()
			if status := c.Response().StatusCode(); status >= fiber.StatusInternalServerError {
				return fmt.Errorf("downstream service error: %d", status)
			}
			return responseErr
		})

		if errors.Is(err, ErrCircuitOpen) {
			logger.Warn(c.UserContext()).
				Str("service", service).
				Str("path", c.Path()).
				Msg("Circuit breaker is open, request blocked")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success":     false,
				"error":       "Service temporarily unavailable",
				"service":     service,
				"retry_after": int(m.timeout.Seconds()),
			})
		}
		return responseErr
	}
}
