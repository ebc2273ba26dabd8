package tradein

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/internal/tradein/repository"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
)

// ProvideTradeInRepository provides the traced gorm trade-in repository
func ProvideTradeInRepository(db *gorm.DB) domain.TradeInRepository {
	return repository.NewTracingTradeInRepository(repository.NewGormTradeInRepository(db))
}

// ProvideEstimator provides an estimator backed by the process random source
func ProvideEstimator() *valuation.Estimator {
	return valuation.NewEstimator(nil)
}

var RepositorySet = wire.NewSet(
	ProvideTradeInRepository,
)
