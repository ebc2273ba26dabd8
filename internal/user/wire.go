//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skavtech/ict-platform/internal/user/delivery/http"
	"github.com/skavtech/ict-platform/internal/user/usecase/command"
	"github.com/skavtech/ict-platform/internal/user/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, reg prometheus.Registerer) (*http.UserHandler, error) {
	wire.Build(
		ProvideUserRepository,
		CommandSet,
		QuerySet,
		http.NewUserHandler,
	)
	return nil, nil
}

var CommandSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewDeleteUserHandler,
	command.NewChangeRoleHandler,
	command.NewToggleActiveHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetUserHandler,
	query.NewListUsersHandler,
	query.NewGetStatsHandler,
)
