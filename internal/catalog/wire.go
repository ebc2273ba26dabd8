//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/catalog/delivery/http"
	"github.com/skavtech/ict-platform/internal/catalog/usecase/command"
	"github.com/skavtech/ict-platform/internal/catalog/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, reg prometheus.Registerer) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}

var CommandSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewUpdateStockHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetStatsHandler,
	query.NewCompareProductsHandler,
)
