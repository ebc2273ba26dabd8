package query

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

type ListDevicesQuery struct {
	Status     string
	Technician string
}

type ListDevicesHandler struct {
	repo domain.DeviceRepository
}

func NewListDevicesHandler(repo domain.DeviceRepository) *ListDevicesHandler {
	return &ListDevicesHandler{repo: repo}
}

func (h *ListDevicesHandler) Handle(ctx context.Context, q ListDevicesQuery) ([]domain.Device, error) {
	filter := domain.DeviceFilter{Technician: q.Technician}
	if q.Status != "" {
		status, ok := domain.ParseDeviceStatus(q.Status)
		if !ok {
			return nil, domain.ValidationErrors{{Field: "status", Message: "Status must be received, diagnosed, repaired, qc, or ready"}}
		}
		filter.Status = status
	}

	devices, err := h.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	if devices == nil {
		devices = []domain.Device{}
	}
	return devices, nil
}

type BoardStatsHandler struct {
	repo domain.DeviceRepository
}

func NewBoardStatsHandler(repo domain.DeviceRepository) *BoardStatsHandler {
	return &BoardStatsHandler{repo: repo}
}

func (h *BoardStatsHandler) Handle(ctx context.Context) (domain.BoardStats, error) {
	devices, err := h.repo.FindAll(ctx, domain.DeviceFilter{})
	if err != nil {
		return domain.BoardStats{}, fmt.Errorf("failed to load intake board: %w", err)
	}
	return domain.ComputeBoardStats(devices), nil
}
