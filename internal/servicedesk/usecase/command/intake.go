package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/kafka"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// TradeInSerial is the intake serial number given to a collected trade-in.
func TradeInSerial(tradeInID uint) string {
	return "TRD-" + strconv.FormatUint(uint64(tradeInID), 10)
}

// IntakeTradeInHandler puts collected trade-ins on the intake board.
type IntakeTradeInHandler struct {
	repo domain.DeviceRepository
}

func NewIntakeTradeInHandler(repo domain.DeviceRepository) *IntakeTradeInHandler {
	return &IntakeTradeInHandler{repo: repo}
}

// Handle creates one received device per trade-in. Redelivered events find
// the device already on the board and are ignored.
func (h *IntakeTradeInHandler) Handle(ctx context.Context, event kafka.TradeInEvent) error {
	serial := TradeInSerial(event.TradeInID)

	_, err := h.repo.FindBySerial(ctx, serial)
	if err == nil {
		logger.Debug(ctx).Str("serial_number", serial).Msg("Trade-in already on intake board")
		return nil
	}
	if !errors.Is(err, domain.ErrDeviceNotFound) {
		return fmt.Errorf("failed to look up trade-in device: %w", err)
	}

	value := float64(event.EstimatedValue)
	device := domain.Device{
		SerialNumber:   serial,
		Model:          event.Model,
		Brand:          event.Brand,
		DeviceType:     event.DeviceType,
		Status:         domain.DeviceReceived,
		EstimatedValue: &value,
		RepairNotes:    fmt.Sprintf("Trade-in #%d, condition %s, age %s", event.TradeInID, event.Condition, event.Age),
		CustomerInfo: datatypes.NewJSONType(domain.Customer{
			Name:  event.CustomerName,
			Email: event.CustomerEmail,
			Phone: event.CustomerPhone,
		}),
	}
	if err := device.Validate(); err != nil {
		return fmt.Errorf("trade-in %d cannot be received: %w", event.TradeInID, err)
	}

	err = h.repo.Create(ctx, &device)
	if errors.Is(err, domain.ErrDuplicateSerial) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to receive trade-in device: %w", err)
	}

	logger.Info(ctx).
		Uint("trade_in_id", event.TradeInID).
		Uint("device_id", device.ID).
		Str("serial_number", serial).
		Msg("Collected trade-in received on intake board")
	return nil
}
