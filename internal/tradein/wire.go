//go:build wireinject
// +build wireinject

package tradein

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/tradein/delivery/http"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/command"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/query"
	"github.com/skavtech/ict-platform/kafka"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher kafka.EventPublisher, reg prometheus.Registerer) (*http.TradeInHandler, error) {
	wire.Build(
		RepositorySet,
		ProvideEstimator,
		CommandSet,
		QuerySet,
		http.NewTradeInHandler,
	)
	return nil, nil
}

var CommandSet = wire.NewSet(
	command.NewCreateTradeInHandler,
	command.NewUpdateStatusHandler,
)

var QuerySet = wire.NewSet(
	query.NewEstimateHandler,
	query.NewGetTradeInHandler,
	query.NewListTradeInsHandler,
)
