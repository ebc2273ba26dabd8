package loadbalancer

import (
	"sync/atomic"
)

// RoundRobin hands out backend instances in turn.
type RoundRobin struct {
	servers []string
	next    atomic.Uint64
}

// NewRoundRobin creates a round-robin balancer over a fixed instance list.
func NewRoundRobin(servers []string) *RoundRobin {
	return &RoundRobin{servers: append([]string(nil), servers...)}
}

// Next returns the next instance, or "" when there are none.
func (rr *RoundRobin) Next() string {
	if len(rr.servers) == 0 {
		return ""
	}
	n := rr.next.Add(1) - 1
	return rr.servers[n%uint64(len(rr.servers))]
}

// Servers returns a copy of the instance list.
func (rr *RoundRobin) Servers() []string {
	return append([]string(nil), rr.servers...)
}

// GetStats returns load balancer statistics
func (rr *RoundRobin) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"algorithm":    "round-robin",
		"server_count": len(rr.servers),
		"servers":      rr.servers,
		"dispatched":   rr.next.Load(),
	}
}
