package servicedesk

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/internal/servicedesk/repository"
)

func ProvideDeviceRepository(db *gorm.DB) domain.DeviceRepository {
	return repository.NewTracingDeviceRepository(repository.NewGormDeviceRepository(db))
}

func ProvideWarrantyRepository(db *gorm.DB) domain.WarrantyRepository {
	return repository.NewTracingWarrantyRepository(repository.NewGormWarrantyRepository(db))
}

func ProvideRepairTicketRepository(db *gorm.DB) domain.RepairTicketRepository {
	return repository.NewTracingRepairTicketRepository(repository.NewGormRepairTicketRepository(db))
}

func ProvideFleetRepository(db *gorm.DB) domain.FleetRepository {
	return repository.NewTracingFleetRepository(repository.NewGormFleetRepository(db))
}

var RepositorySet = wire.NewSet(
	ProvideDeviceRepository,
	ProvideWarrantyRepository,
	ProvideRepairTicketRepository,
	ProvideFleetRepository,
)
