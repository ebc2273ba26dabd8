package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Signup godoc
// @Summary Create an account
// @Description Kenyan (+254) numbers only. Staff roles can only be assigned by an admin caller.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body signupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 403 {object} AuthResponse
// @Failure 409 {object} AuthResponse
// @Router /api/auth/signup [post]
func (h *UserHandler) SignupDoc() {}

// Login godoc
// @Summary User login
// @Description Authenticate user and get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Failure 403 {object} AuthResponse
// @Router /api/auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} Response
// @Router /api/users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// ListUsers godoc
// @Summary List users
// @Description Newest first (Admin only)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param role query string false "customer, admin or technician"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} Response{data=[]domain.User}
// @Failure 403 {object} Response
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=domain.User}
// @Failure 404 {object} Response
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// ChangeRole godoc
// @Summary Change a user's role
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{role=string} true "New role"
// @Success 200 {object} Response{data=domain.User}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/users/{id}/role [patch]
func (h *UserHandler) ChangeRoleDoc() {}

// ToggleActive godoc
// @Summary Activate or deactivate a user
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{isActive=bool} true "Activation flag"
// @Success 200 {object} Response{data=domain.User}
// @Failure 404 {object} Response
// @Router /api/users/{id}/active [patch]
func (h *UserHandler) ToggleActiveDoc() {}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// GetStats godoc
// @Summary Account statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response{data=domain.UserStats}
// @Router /api/users/stats [get]
func (h *UserHandler) GetStatsDoc() {}
