package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
)

// AutoMigrate creates or updates every service desk table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Device{},
		&domain.Warranty{},
		&domain.RepairTicket{},
		&domain.FleetDevice{},
	)
}

type GormDeviceRepository struct {
	db *gorm.DB
}

func NewGormDeviceRepository(db *gorm.DB) *GormDeviceRepository {
	return &GormDeviceRepository{db: db}
}

func (r *GormDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	err := r.db.WithContext(ctx).Create(device).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateSerial
	}
	return err
}

func (r *GormDeviceRepository) FindByID(ctx context.Context, id uint) (*domain.Device, error) {
	var device domain.Device
	err := r.db.WithContext(ctx).First(&device, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *GormDeviceRepository) FindBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	var device domain.Device
	err := r.db.WithContext(ctx).Where("serial_number = ?", serial).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *GormDeviceRepository) FindAll(ctx context.Context, filter domain.DeviceFilter) ([]domain.Device, error) {
	q := r.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Technician != "" {
		q = q.Where("assigned_technician = ?", filter.Technician)
	}
	var devices []domain.Device
	err := q.Find(&devices).Error
	return devices, err
}

func (r *GormDeviceRepository) Update(ctx context.Context, device *domain.Device) error {
	res := r.db.WithContext(ctx).Model(device).Select("*").Omit("created_at").Updates(device)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}

type GormWarrantyRepository struct {
	db *gorm.DB
}

func NewGormWarrantyRepository(db *gorm.DB) *GormWarrantyRepository {
	return &GormWarrantyRepository{db: db}
}

func (r *GormWarrantyRepository) Create(ctx context.Context, warranty *domain.Warranty) error {
	return r.db.WithContext(ctx).Create(warranty).Error
}

func (r *GormWarrantyRepository) FindActiveBySerial(ctx context.Context, serial string) (*domain.Warranty, error) {
	var warranty domain.Warranty
	err := r.db.WithContext(ctx).
		Where("serial_number = ? AND is_active = ?", serial, true).
		Order("expiry_date DESC").
		First(&warranty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrWarrantyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &warranty, nil
}

type GormRepairTicketRepository struct {
	db *gorm.DB
}

func NewGormRepairTicketRepository(db *gorm.DB) *GormRepairTicketRepository {
	return &GormRepairTicketRepository{db: db}
}

func (r *GormRepairTicketRepository) Create(ctx context.Context, ticket *domain.RepairTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *GormRepairTicketRepository) FindByTicketID(ctx context.Context, ticketID string) (*domain.RepairTicket, error) {
	var ticket domain.RepairTicket
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *GormRepairTicketRepository) Update(ctx context.Context, ticket *domain.RepairTicket) error {
	res := r.db.WithContext(ctx).Model(ticket).
		Select("status", "repair_notes", "status_history", "updated_at").
		Updates(ticket)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

type GormFleetRepository struct {
	db *gorm.DB
}

func NewGormFleetRepository(db *gorm.DB) *GormFleetRepository {
	return &GormFleetRepository{db: db}
}

func (r *GormFleetRepository) Create(ctx context.Context, device *domain.FleetDevice) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *GormFleetRepository) FindByCompany(ctx context.Context, companyID string) ([]domain.FleetDevice, error) {
	var devices []domain.FleetDevice
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&devices).Error
	return devices, err
}
