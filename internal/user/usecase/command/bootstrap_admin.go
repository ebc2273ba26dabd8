package command

import (
	"context"
	"fmt"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/pkg/auth"
)

// BootstrapAdminHandler creates the first administrator so that staff
// accounts can be provisioned through signup.
type BootstrapAdminHandler struct {
	repo domain.UserRepository
}

func NewBootstrapAdminHandler(repo domain.UserRepository) *BootstrapAdminHandler {
	return &BootstrapAdminHandler{repo: repo}
}

// Handle creates the admin unless one already exists. It reports whether an
// account was created.
func (h *BootstrapAdminHandler) Handle(ctx context.Context, username, password string) (bool, error) {
	if username == "" || len(password) < 8 {
		return false, domain.ValidationErrors{{Field: "admin", Message: "Username and a password of at least 8 characters are required"}}
	}

	// Only seed when no admin exists yet
	admins, err := h.repo.Count(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	err = h.repo.Create(ctx, &domain.User{
		Username:    username,
		Password:    hashed,
		Role:        domain.RoleAdmin,
		AccountType: domain.AccountIndividual,
		IsActive:    true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
