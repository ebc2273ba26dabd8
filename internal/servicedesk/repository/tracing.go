package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

var tracer = otel.Tracer("servicedesk-repository")

func start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// end closes span, marking it failed when err is set, and passes err on.
func end(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	return err
}

// TracingDeviceRepository records a span around every device repository call.
type TracingDeviceRepository struct {
	next domain.DeviceRepository
}

func NewTracingDeviceRepository(next domain.DeviceRepository) *TracingDeviceRepository {
	return &TracingDeviceRepository{next: next}
}

func (r *TracingDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	ctx, span := start(ctx, "repository.Device.Create",
		attribute.String("device.serial_number", device.SerialNumber),
		attribute.String("device.status", string(device.Status)),
	)
	err := r.next.Create(ctx, device)
	if err == nil {
		span.SetAttributes(attribute.Int("device.id", int(device.ID)))
	}
	return end(span, err)
}

func (r *TracingDeviceRepository) FindByID(ctx context.Context, id uint) (*domain.Device, error) {
	ctx, span := start(ctx, "repository.Device.FindByID", attribute.Int("device.id", int(id)))
	device, err := r.next.FindByID(ctx, id)
	return device, end(span, err)
}

func (r *TracingDeviceRepository) FindBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	ctx, span := start(ctx, "repository.Device.FindBySerial", attribute.String("device.serial_number", serial))
	device, err := r.next.FindBySerial(ctx, serial)
	return device, end(span, err)
}

func (r *TracingDeviceRepository) FindAll(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error) {
	ctx, span := start(ctx, "repository.Device.FindAll",
		attribute.String("query.status", string(filter.Status)),
		attribute.String("query.technician", filter.Technician),
	)
	devices, err := r.next.FindAll(ctx, filter)
	span.SetAttributes(attribute.Int("result.count", len(devices)))
	return devices, end(span, err)
}

func (r *TracingDeviceRepository) Update(ctx context.Context, device *domain.Device) error {
	ctx, span := start(ctx, "repository.Device.Update",
		attribute.Int("device.id", int(device.ID)),
		attribute.String("device.status", string(device.Status)),
	)
	return end(span, r.next.Update(ctx, device))
}

type TracingWarrantyRepository struct {
	next domain.WarrantyRepository
}

func NewTracingWarrantyRepository(next domain.WarrantyRepository) *TracingWarrantyRepository {
	return &TracingWarrantyRepository{next: next}
}

func (r *TracingWarrantyRepository) Create(ctx context.Context, warranty *domain.Warranty) error {
	ctx, span := start(ctx, "repository.Warranty.Create", attribute.String("warranty.serial_number", warranty.SerialNumber))
	return end(span, r.next.Create(ctx, warranty))
}

func (r *TracingWarrantyRepository) FindActiveBySerial(ctx context.Context, serial string) (*domain.Warranty, error) {
	ctx, span := start(ctx, "repository.Warranty.FindActiveBySerial", attribute.String("warranty.serial_number", serial))
	warranty, err := r.next.FindActiveBySerial(ctx, serial)
	return warranty, end(span, err)
}

type TracingRepairTicketRepository struct {
	next domain.RepairTicketRepository
}

func NewTracingRepairTicketRepository(next domain.RepairTicketRepository) *TracingRepairTicketRepository {
	return &TracingRepairTicketRepository{next: next}
}

func (r *TracingRepairTicketRepository) Create(ctx context.Context, ticket *domain.RepairTicket) error {
	ctx, span := start(ctx, "repository.RepairTicket.Create",
		attribute.String("ticket.id", ticket.TicketID),
		attribute.String("ticket.serial_number", ticket.SerialNumber),
	)
	return end(span, r.next.Create(ctx, ticket))
}

func (r *TracingRepairTicketRepository) FindByTicketID(ctx context.Context, ticketID string) (*domain.RepairTicket, error) {
	ctx, span := start(ctx, "repository.RepairTicket.FindByTicketID", attribute.String("ticket.id", ticketID))
	ticket, err := r.next.FindByTicketID(ctx, ticketID)
	return ticket, end(span, err)
}

func (r *TracingRepairTicketRepository) Update(ctx context.Context, ticket *domain.RepairTicket) error {
	ctx, span := start(ctx, "repository.RepairTicket.Update",
		attribute.String("ticket.id", ticket.TicketID),
		attribute.String("ticket.status", string(ticket.Status)),
	)
	return end(span, r.next.Update(ctx, ticket))
}

type TracingFleetRepository struct {
	next domain.FleetRepository
}

func NewTracingFleetRepository(next domain.FleetRepository) *TracingFleetRepository {
	return &TracingFleetRepository{next: next}
}

func (r *TracingFleetRepository) Create(ctx context.Context, device *domain.FleetDevice) error {
	ctx, span := start(ctx, "repository.Fleet.Create",
		attribute.String("fleet.company_id", device.CompanyID),
		attribute.String("fleet.device_id", device.DeviceID),
	)
	return end(span, r.next.Create(ctx, device))
}

func (r *TracingFleetRepository) FindByCompany(ctx context.Context, companyID string) ([]domain.FleetDevice, error) {
	ctx, span := start(ctx, "repository.Fleet.FindByCompany", attribute.String("fleet.company_id", companyID))
	devices, err := r.next.FindByCompany(ctx, companyID)
	span.SetAttributes(attribute.Int("result.count", len(devices)))
	return devices, end(span, err)
}
