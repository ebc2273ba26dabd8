package command

import (
	"context"
	"fmt"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// AddFleetDeviceCommand adds Device to the fleet of CompanyID. The company
// in the path wins over any company id in the body.
type AddFleetDeviceCommand struct {
	CompanyID string
	Device    domain.FleetDevice
}

type AddFleetDeviceHandler struct {
	repo domain.FleetRepository
	now  func() time.Time
}

func NewAddFleetDeviceHandler(repo domain.FleetRepository) *AddFleetDeviceHandler {
	return &AddFleetDeviceHandler{repo: repo, now: time.Now}
}

func (h *AddFleetDeviceHandler) Handle(ctx context.Context, cmd AddFleetDeviceCommand) (*domain.FleetDevice, error) {
	device := cmd.Device
	device.ID = 0
	device.CompanyID = cmd.CompanyID
	if err := device.Validate(h.now()); err != nil {
		return nil, err
	}
	if err := h.repo.Create(ctx, &device); err != nil {
		return nil, fmt.Errorf("failed to add fleet device: %w", err)
	}

	logger.Info(ctx).
		Str("company_id", device.CompanyID).
		Str("device_id", device.DeviceID).
		Msg("Fleet device added")
	return &device, nil
}
