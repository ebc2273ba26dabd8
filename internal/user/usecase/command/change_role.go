package command

import (
	"context"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// ChangeRoleCommand represents the command to change user role (admin only)
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles user role change command
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*domain.User, error) {
	// Validation
	if !domain.ValidRole(cmd.Role) {
		return nil, domain.ValidationErrors{{Field: "role", Message: "Must be one of customer, admin, technician"}}
	}

	// Find user
	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	// Update role
	previous := user.Role
	user.Role = cmd.Role
	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("user_id", user.ID).
		Str("from", previous).
		Str("to", user.Role).
		Msg("User role changed")
	return user, nil
}
