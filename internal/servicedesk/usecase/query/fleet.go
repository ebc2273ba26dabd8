package query

import (
	"context"
	"fmt"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

type FleetQuery struct {
	CompanyID string
}

type ListFleetHandler struct {
	repo domain.FleetRepository
}

func NewListFleetHandler(repo domain.FleetRepository) *ListFleetHandler {
	return &ListFleetHandler{repo: repo}
}

func (h *ListFleetHandler) Handle(ctx context.Context, q FleetQuery) ([]domain.FleetDevice, error) {
	devices, err := h.repo.FindByCompany(ctx, q.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fleet: %w", err)
	}
	if devices == nil {
		devices = []domain.FleetDevice{}
	}
	return devices, nil
}

type FleetStatsHandler struct {
	repo domain.FleetRepository
	now  func() time.Time
}

func NewFleetStatsHandler(repo domain.FleetRepository) *FleetStatsHandler {
	return &FleetStatsHandler{repo: repo, now: time.Now}
}

func (h *FleetStatsHandler) Handle(ctx context.Context, q FleetQuery) (domain.FleetStats, error) {
	devices, err := h.repo.FindByCompany(ctx, q.CompanyID)
	if err != nil {
		return domain.FleetStats{}, fmt.Errorf("failed to load fleet: %w", err)
	}
	return domain.ComputeFleetStats(devices, h.now()), nil
}
