package query

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/user/domain"
)

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle counts accounts per role and how many are active.
func (h *GetStatsHandler) Handle(ctx context.Context) (*domain.UserStats, error) {
	var stats domain.UserStats
	counts := []struct {
		role string
		dst  *int64
	}{
		// Empty role counts every user
		{"", &stats.Total},
		{domain.RoleCustomer, &stats.Customers},
		{domain.RoleAdmin, &stats.Admins},
		{domain.RoleTechnician, &stats.Technicians},
	}
	for _, c := range counts {
		n, err := h.repo.Count(ctx, c.role)
		if err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		*c.dst = n
	}

	active, err := h.repo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	stats.Active = active
	return &stats, nil
}
