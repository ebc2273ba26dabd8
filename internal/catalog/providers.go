package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
)

// ProvideProductRepository provides the traced gorm product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(repository.NewGormProductRepository(db))
}

// RepositorySet is shared by the generated injector and the wire build.
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)
