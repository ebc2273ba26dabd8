package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

// MemoryDeviceRepository keeps the intake board in process, for tests.
type MemoryDeviceRepository struct {
	mu      sync.RWMutex
	nextID  uint
	devices map[uint]domain.Device
}

func NewMemoryDeviceRepository() *MemoryDeviceRepository {
	return &MemoryDeviceRepository{devices: make(map[uint]domain.Device)}
}

func (r *MemoryDeviceRepository) Create(_ context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.devices {
		if d.SerialNumber == device.SerialNumber {
			return domain.ErrDuplicateSerial
		}
	}
	r.nextID++
	device.ID = r.nextID
	now := time.Now()
	device.CreatedAt, device.UpdatedAt = now, now
	r.devices[device.ID] = *device
	return nil
}

func (r *MemoryDeviceRepository) FindByID(_ context.Context, id uint) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, domain.ErrDeviceNotFound
	}
	return &d, nil
}

func (r *MemoryDeviceRepository) FindBySerial(_ context.Context, serial string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices {
		if d.SerialNumber == serial {
			return &d, nil
		}
	}
	return nil, domain.ErrDeviceNotFound
}

func (r *MemoryDeviceRepository) FindAll(_ context.Context, filter domain.DeviceFilter) ([]domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Device, 0, len(r.devices))
	for _, d := range r.devices {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.Technician != "" && d.AssignedTechnician != filter.Technician {
			continue
		}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b domain.Device) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *MemoryDeviceRepository) Update(_ context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[device.ID]; !ok {
		return domain.ErrDeviceNotFound
	}
	device.UpdatedAt = time.Now()
	r.devices[device.ID] = *device
	return nil
}

type MemoryWarrantyRepository struct {
	mu         sync.RWMutex
	warranties []domain.Warranty
}

func NewMemoryWarrantyRepository() *MemoryWarrantyRepository {
	return &MemoryWarrantyRepository{}
}

func (r *MemoryWarrantyRepository) Create(_ context.Context, warranty *domain.Warranty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	warranty.ID = uint(len(r.warranties) + 1)
	warranty.CreatedAt = time.Now()
	r.warranties = append(r.warranties, *warranty)
	return nil
}

func (r *MemoryWarrantyRepository) FindActiveBySerial(_ context.Context, serial string) (*domain.Warranty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *domain.Warranty
	for i := range r.warranties {
		w := r.warranties[i]
		if w.SerialNumber != serial || !w.IsActive {
			continue
		}
		if found == nil || w.ExpiryDate.After(found.ExpiryDate) {
			found = &w
		}
	}
	if found == nil {
		return nil, domain.ErrWarrantyNotFound
	}
	return found, nil
}

type MemoryRepairTicketRepository struct {
	mu      sync.RWMutex
	nextID  uint
	tickets map[string]domain.RepairTicket
}

func NewMemoryRepairTicketRepository() *MemoryRepairTicketRepository {
	return &MemoryRepairTicketRepository{tickets: make(map[string]domain.RepairTicket)}
}

func (r *MemoryRepairTicketRepository) Create(_ context.Context, ticket *domain.RepairTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ticket.ID = r.nextID
	now := time.Now()
	ticket.CreatedAt, ticket.UpdatedAt = now, now
	r.tickets[ticket.TicketID] = *ticket
	return nil
}

func (r *MemoryRepairTicketRepository) FindByTicketID(_ context.Context, ticketID string) (*domain.RepairTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &t, nil
}

func (r *MemoryRepairTicketRepository) Update(_ context.Context, ticket *domain.RepairTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[ticket.TicketID]; !ok {
		return domain.ErrTicketNotFound
	}
	ticket.UpdatedAt = time.Now()
	r.tickets[ticket.TicketID] = *ticket
	return nil
}

type MemoryFleetRepository struct {
	mu      sync.RWMutex
	devices []domain.FleetDevice
}

func NewMemoryFleetRepository() *MemoryFleetRepository {
	return &MemoryFleetRepository{}
}

func (r *MemoryFleetRepository) Create(_ context.Context, device *domain.FleetDevice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	device.ID = uint(len(r.devices) + 1)
	device.CreatedAt = time.Now()
	r.devices = append(r.devices, *device)
	return nil
}

func (r *MemoryFleetRepository) FindByCompany(_ context.Context, companyID string) ([]domain.FleetDevice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.FleetDevice{}
	for i := len(r.devices) - 1; i >= 0; i-- {
		if r.devices[i].CompanyID == companyID {
			out = append(out, r.devices[i])
		}
	}
	return out, nil
}
