//go:build wireinject
// +build wireinject

package servicedesk

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/servicedesk/delivery/http"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/command"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, reg prometheus.Registerer) (*http.ServiceDeskHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewServiceDeskHandler,
	)
	return nil, nil
}

// InitializeIntakeHandler builds the trade-in intake consumer handler
func InitializeIntakeHandler(db *gorm.DB) (*command.IntakeTradeInHandler, error) {
	wire.Build(
		ProvideDeviceRepository,
		command.NewIntakeTradeInHandler,
	)
	return nil, nil
}

var CommandSet = wire.NewSet(
	command.NewCreateDeviceHandler,
	command.NewUpdateDeviceHandler,
	command.NewCreateWarrantyHandler,
	command.NewCreateRepairHandler,
	command.NewUpdateRepairStatusHandler,
	command.NewAddFleetDeviceHandler,
)

var QuerySet = wire.NewSet(
	query.NewListDevicesHandler,
	query.NewBoardStatsHandler,
	query.NewLookupWarrantyHandler,
	query.NewGetRepairHandler,
	query.NewListFleetHandler,
	query.NewFleetStatsHandler,
)
