package user

import (
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/internal/user/repository"
)

// ProvideUserRepository provides the traced GORM user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewGormUserRepository(db))
}
