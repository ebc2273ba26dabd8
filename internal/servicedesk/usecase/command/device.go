package command

import (
	"context"
	"fmt"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/pkg/logger"
)

type CreateDeviceCommand struct {
	Device domain.Device
}

type CreateDeviceHandler struct {
	repo domain.DeviceRepository
}

func NewCreateDeviceHandler(repo domain.DeviceRepository) *CreateDeviceHandler {
	return &CreateDeviceHandler{repo: repo}
}

func (h *CreateDeviceHandler) Handle(ctx context.Context, cmd CreateDeviceCommand) (*domain.Device, error) {
	device := cmd.Device
	device.ID = 0
	if err := device.Validate(); err != nil {
		return nil, err
	}
	if err := h.repo.Create(ctx, &device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	logger.Info(ctx).
		Uint("device_id", device.ID).
		Str("serial_number", device.SerialNumber).
		Str("status", string(device.Status)).
		Msg("Device added to intake board")
	return &device, nil
}

type UpdateDeviceCommand struct {
	ID     uint
	Update domain.DeviceUpdate
}

type UpdateDeviceHandler struct {
	repo domain.DeviceRepository
	now  func() time.Time
}

func NewUpdateDeviceHandler(repo domain.DeviceRepository) *UpdateDeviceHandler {
	return &UpdateDeviceHandler{repo: repo, now: time.Now}
}

// Handle applies a partial update to a board device.
func (h *UpdateDeviceHandler) Handle(ctx context.Context, cmd UpdateDeviceCommand) (*domain.Device, error) {
	device, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	// Apply update
	previous := device.Status
	if err := device.Apply(cmd.Update, h.now()); err != nil {
		return nil, err
	}
	if err := h.repo.Update(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	logger.Info(ctx).
		Uint("device_id", device.ID).
		Str("from", string(previous)).
		Str("to", string(device.Status)).
		Str("technician", device.AssignedTechnician).
		Msg("Device updated")
	return device, nil
}
