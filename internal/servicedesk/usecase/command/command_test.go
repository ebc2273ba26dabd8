package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/internal/servicedesk/repository"
	"github.com/skavtech/ict-platform/kafka"
)

var fixedNow = time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func TestCreateDevice(t *testing.T) {
	ctx := context.Background()
	h := NewCreateDeviceHandler(repository.NewMemoryDeviceRepository())

	device, err := h.Handle(ctx, CreateDeviceCommand{Device: domain.Device{
		ID: 99, SerialNumber: "DL7420-2023-001", Model: "Dell Latitude 7420", Brand: "Dell", DeviceType: "laptop",
	}})
	assert.NoError(t, err)
	check.Equal(t, uint(1), device.ID)
	check.Equal(t, domain.DeviceReceived, device.Status)

	_, err = h.Handle(ctx, CreateDeviceCommand{Device: domain.Device{
		SerialNumber: "DL7420-2023-001", Model: "Dell Latitude 7420", Brand: "Dell", DeviceType: "laptop",
	}})
	check.True(t, errors.Is(err, domain.ErrDuplicateSerial))

	_, err = h.Handle(ctx, CreateDeviceCommand{Device: domain.Device{SerialNumber: "X"}})
	var verrs domain.ValidationErrors
	check.True(t, errors.As(err, &verrs))
}

func TestUpdateDevice(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryDeviceRepository()
	assert.NoError(t, repo.Create(ctx, &domain.Device{SerialNumber: "HP850-2023-025", Status: domain.DeviceQC}))

	h := NewUpdateDeviceHandler(repo)
	h.now = clock

	device, err := h.Handle(ctx, UpdateDeviceCommand{ID: 1, Update: domain.DeviceUpdate{
		Status:      ptr(domain.DeviceReady),
		RepairNotes: ptr("Quality check passed"),
	}})
	assert.NoError(t, err)
	check.Equal(t, domain.DeviceReady, device.Status)
	check.Equal(t, fixedNow, *device.CompletionDate)

	stored, err := repo.FindByID(ctx, 1)
	assert.NoError(t, err)
	check.Equal(t, "Quality check passed", stored.RepairNotes)

	_, err = h.Handle(ctx, UpdateDeviceCommand{ID: 5})
	check.True(t, errors.Is(err, domain.ErrDeviceNotFound))
}

func TestCreateRepairReplacesClientState(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepairTicketRepository()
	h := NewCreateRepairHandler(repo)
	h.now = clock

	ticket, err := h.Handle(ctx, CreateRepairCommand{Ticket: domain.RepairTicket{
		TicketID:         "RPR-1999-AAAAAA",
		SerialNumber:     "DL7420-CORP-001",
		DeviceModel:      "Dell Latitude 7420",
		IssueDescription: "Screen flickering issue",
		Status:           domain.RepairCompleted,
	}})
	assert.NoError(t, err)

	check.True(t, strings.HasPrefix(ticket.TicketID, "RPR-2025-"))
	check.Equal(t, domain.RepairReceived, ticket.Status)
	check.Equal(t, 1, len(ticket.StatusHistory.Data()))

	_, err = repo.FindByTicketID(ctx, ticket.TicketID)
	check.NoError(t, err)
}

func TestUpdateRepairStatus(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepairTicketRepository()
	create := NewCreateRepairHandler(repo)
	ticket, err := create.Handle(ctx, CreateRepairCommand{Ticket: domain.RepairTicket{
		SerialNumber: "S1", DeviceModel: "M1", IssueDescription: "No power",
	}})
	assert.NoError(t, err)

	h := NewUpdateRepairStatusHandler(repo)
	h.now = clock

	updated, err := h.Handle(ctx, UpdateRepairStatusCommand{TicketID: ticket.TicketID, Status: "diagnosed", Notes: "PSU failure"})
	assert.NoError(t, err)
	check.Equal(t, domain.RepairDiagnosed, updated.Status)
	history := updated.StatusHistory.Data()
	assert.Equal(t, 2, len(history))
	check.Equal(t, domain.StatusEntry{Status: domain.RepairDiagnosed, Timestamp: fixedNow, Notes: "PSU failure"}, history[1])

	_, err = h.Handle(ctx, UpdateRepairStatusCommand{TicketID: ticket.TicketID, Status: "repaired"})
	var verrs domain.ValidationErrors
	check.True(t, errors.As(err, &verrs))

	_, err = h.Handle(ctx, UpdateRepairStatusCommand{TicketID: "RPR-2025-FFFFFF", Status: "qc"})
	check.True(t, errors.Is(err, domain.ErrTicketNotFound))
}

func TestCreateWarranty(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryWarrantyRepository()
	h := NewCreateWarrantyHandler(repo)

	w, err := h.Handle(ctx, CreateWarrantyCommand{Warranty: domain.Warranty{
		SerialNumber: "DL7420-CORP-001",
		PurchaseDate: fixedNow,
		ExpiryDate:   fixedNow.AddDate(3, 0, 0),
		Coverage:     "3-Year Hardware & Software Support",
		IsActive:     true,
	}})
	assert.NoError(t, err)
	check.Equal(t, uint(1), w.ID)

	found, err := repo.FindActiveBySerial(ctx, "DL7420-CORP-001")
	assert.NoError(t, err)
	check.Equal(t, w.Coverage, found.Coverage)

	_, err = h.Handle(ctx, CreateWarrantyCommand{Warranty: domain.Warranty{SerialNumber: "S2"}})
	check.Error(t, err)
}

func TestAddFleetDeviceUsesPathCompany(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryFleetRepository()
	h := NewAddFleetDeviceHandler(repo)
	h.now = clock

	device, err := h.Handle(ctx, AddFleetDeviceCommand{
		CompanyID: "CORP-001",
		Device:    domain.FleetDevice{CompanyID: "CORP-999", DeviceID: "MBP14-CORP-015", DeviceModel: "MacBook Pro 14"},
	})
	assert.NoError(t, err)
	check.Equal(t, "CORP-001", device.CompanyID)
	check.Equal(t, domain.FleetActive, device.Status)
	check.Equal(t, fixedNow, device.DeploymentDate)

	other, err := repo.FindByCompany(ctx, "CORP-999")
	assert.NoError(t, err)
	check.Equal(t, 0, len(other))
}

func collected(id uint) kafka.TradeInEvent {
	return kafka.TradeInEvent{
		EventType:      kafka.EventTypeTradeInCollected,
		TradeInID:      id,
		DeviceType:     "laptop",
		Brand:          "Apple",
		Model:          "MacBook Pro 14",
		Age:            "0-1",
		Condition:      "excellent",
		EstimatedValue: 1030,
		Status:         "collected",
		CustomerName:   "Wanjiru",
		CustomerEmail:  "wanjiru@example.co.ke",
	}
}

func TestIntakeTradeInIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryDeviceRepository()
	h := NewIntakeTradeInHandler(repo)

	assert.NoError(t, h.Handle(ctx, collected(42)))
	assert.NoError(t, h.Handle(ctx, collected(42)))

	devices, err := repo.FindAll(ctx, domain.DeviceFilter{})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(devices))

	d := devices[0]
	check.Equal(t, "TRD-42", d.SerialNumber)
	check.Equal(t, domain.DeviceReceived, d.Status)
	check.Equal(t, "MacBook Pro 14", d.Model)
	assert.NotNil(t, d.EstimatedValue)
	check.Equal(t, 1030.0, *d.EstimatedValue)
	check.Equal(t, "Wanjiru", d.CustomerInfo.Data().Name)
}

func TestIntakeTradeInRejectsIncompleteEvent(t *testing.T) {
	h := NewIntakeTradeInHandler(repository.NewMemoryDeviceRepository())
	event := collected(7)
	event.Model = ""

	err := h.Handle(context.Background(), event)
	var verrs domain.ValidationErrors
	check.True(t, errors.As(err, &verrs))
}
