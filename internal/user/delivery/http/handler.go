package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/user/domain"
	"github.com/skavtech/ict-platform/internal/user/usecase/command"
	"github.com/skavtech/ict-platform/internal/user/usecase/query"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/metrics"
	"github.com/skavtech/ict-platform/pkg/middleware"
)

const (
	msgUnsupportedCountry = "Registration is currently only available for Kenya (+254). We'll be expanding to other countries soon!"
	msgInvalidPhone       = "Please enter a valid Kenyan phone number (e.g., +254700123456)"
	msgInvalidSignup      = "Invalid registration data"
	msgInvalidCredentials = "Invalid credentials"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	// Command handlers
	registerHandler     *command.RegisterUserHandler
	loginHandler        *command.LoginUserHandler
	deleteHandler       *command.DeleteUserHandler
	changeRoleHandler   *command.ChangeRoleHandler
	toggleActiveHandler *command.ToggleActiveHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler
	statsHandler   *query.GetStatsHandler

	metrics         *metrics.HTTPMetrics
	logins          *prometheus.CounterVec
	registeredUsers prometheus.Gauge
}

// NewUserHandler creates a new user handler. Used by Wire.
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	deleteHandler *command.DeleteUserHandler,
	changeRoleHandler *command.ChangeRoleHandler,
	toggleActiveHandler *command.ToggleActiveHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	statsHandler *query.GetStatsHandler,
	reg prometheus.Registerer,
) *UserHandler {
	m := metrics.NewHTTPMetrics(reg, "user_service")

	return &UserHandler{
		registerHandler:     registerHandler,
		loginHandler:        loginHandler,
		deleteHandler:       deleteHandler,
		changeRoleHandler:   changeRoleHandler,
		toggleActiveHandler: toggleActiveHandler,
		getUserHandler:      getUserHandler,
		listHandler:         listHandler,
		statsHandler:        statsHandler,
		metrics:             m,
		logins:              m.Counter("logins_total", "Login attempts by outcome", "outcome"),
		registeredUsers:     m.Gauge("registered_users", "Number of registered users"),
	}
}

// AuthResponse is the body of the signup, login and profile endpoints.
type AuthResponse struct {
	Message string              `json:"message,omitempty"`
	Token   string              `json:"token,omitempty"`
	User    *domain.User        `json:"user,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// Response is the envelope of the user administration endpoints.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

type signupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	AccountType string `json:"accountType"`
	CompanyName string `json:"companyName"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, AuthResponse{Message: msgInvalidSignup})
		return
	}
	if req.Role != "" && req.Role != domain.RoleCustomer && middleware.Role(r.Context()) != domain.RoleAdmin {
		respondJSON(w, http.StatusForbidden, AuthResponse{Message: "Only administrators can create staff accounts"})
		return
	}

	user, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand(req))
	var verrs domain.ValidationErrors
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnsupportedCountry):
		respondJSON(w, http.StatusBadRequest, AuthResponse{Message: msgUnsupportedCountry})
		return
	case errors.Is(err, domain.ErrInvalidPhone):
		respondJSON(w, http.StatusBadRequest, AuthResponse{Message: msgInvalidPhone})
		return
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, AuthResponse{Message: msgInvalidSignup, Errors: verrs})
		return
	case errors.Is(err, domain.ErrUsernameTaken):
		respondJSON(w, http.StatusConflict, AuthResponse{Message: "Username already exists"})
		return
	default:
		logger.Error(r.Context()).Err(err).Msg("Registration failed")
		respondJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Failed to create account"})
		return
	}

	h.registeredUsers.Inc()
	respondJSON(w, http.StatusCreated, AuthResponse{Message: "Account created successfully", User: user})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, AuthResponse{Message: "Invalid request body"})
		return
	}

	res, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand(req))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.logins.WithLabelValues("invalid").Inc()
		respondJSON(w, http.StatusUnauthorized, AuthResponse{Message: msgInvalidCredentials})
		return
	case errors.Is(err, domain.ErrAccountDisabled):
		h.logins.WithLabelValues("disabled").Inc()
		respondJSON(w, http.StatusForbidden, AuthResponse{Message: "Account is deactivated"})
		return
	default:
		logger.Error(r.Context()).Err(err).Msg("Login failed")
		respondJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Login failed"})
		return
	}

	h.logins.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, AuthResponse{Message: "Login successful", Token: res.Token, User: res.User})
}

// GetProfile handles GET /api/users/me (authenticated user)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: middleware.UserID(r.Context())})
	if errors.Is(err, domain.ErrUserNotFound) {
		respondJSON(w, http.StatusNotFound, AuthResponse{Message: "User not found"})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load profile")
		respondJSON(w, http.StatusInternalServerError, AuthResponse{Message: "Failed to load profile"})
		return
	}
	respondJSON(w, http.StatusOK, AuthResponse{User: user})
}

// --- ADMIN ENDPOINTS ---

// ListUsers handles GET /api/users (admin only)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{
		Role:   q.Get("role"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to list users")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: users})
}

// GetUser handles GET /api/users/{id} (admin only)
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// ChangeRole handles PATCH /api/users/{id}/role (admin only)
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.changeRoleHandler.Handle(r.Context(), command.ChangeRoleCommand{UserID: id, Role: req.Role})
	if err != nil {
		h.respondError(w, r, err, "Failed to change role")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Role updated", Data: user})
}

// ToggleActive handles PATCH /api/users/{id}/active (admin only)
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
			Errors:  []domain.FieldError{{Field: "isActive", Message: "Required"}},
		})
		return
	}

	user, err := h.toggleActiveHandler.Handle(r.Context(), command.ToggleActiveCommand{UserID: id, IsActive: *req.IsActive})
	if err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: user})
}

// DeleteUser handles DELETE /api/users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if id == middleware.UserID(r.Context()) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Cannot delete your own account"})
		return
	}
	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id}); err != nil {
		h.respondError(w, r, err, "Failed to delete user")
		return
	}

	h.registeredUsers.Dec()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "User deleted successfully"})
}

// GetStats handles GET /api/users/stats (admin only)
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch stats")
		return
	}
	h.registeredUsers.Set(float64(stats.Total))
	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics

	// Public routes
	router.HandleFunc("/api/auth/signup", m.Wrap("/api/auth/signup", middleware.OptionalAuth(h.Signup))).Methods("POST")
	router.HandleFunc("/api/auth/login", m.Wrap("/api/auth/login", h.Login)).Methods("POST")

	// Authenticated user routes
	router.HandleFunc("/api/users/me", m.Wrap("/api/users/me", middleware.Auth(h.GetProfile))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/users", m.Wrap("/api/users", middleware.Admin(h.ListUsers))).Methods("GET")
	router.HandleFunc("/api/users/stats", m.Wrap("/api/users/stats", middleware.Admin(h.GetStats))).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}", m.Wrap("/api/users/{id}", middleware.Admin(h.GetUser))).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}", m.Wrap("/api/users/{id}", middleware.Admin(h.DeleteUser))).Methods("DELETE")
	router.HandleFunc("/api/users/{id:[0-9]+}/role", m.Wrap("/api/users/{id}/role", middleware.Admin(h.ChangeRole))).Methods("PATCH")
	router.HandleFunc("/api/users/{id:[0-9]+}/active", m.Wrap("/api/users/{id}/active", middleware.Admin(h.ToggleActive))).Methods("PATCH")
}

// RegisterHealthCheck registers health check endpoint
func (h *UserHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "User service is healthy"})
	}).Methods("GET")
}

func (h *UserHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request data", Errors: verrs})
	case errors.Is(err, domain.ErrUserNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "User not found"})
	default:
		logger.Error(r.Context()).Err(err).Msg(fallback)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

func userID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
