package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/datatypes"

	"github.com/skavtech/ict-platform/internal/servicedesk/domain"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/command"
	"github.com/skavtech/ict-platform/internal/servicedesk/usecase/query"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/metrics"
	"github.com/skavtech/ict-platform/pkg/middleware"
)

// ServiceDeskHandler serves warranty, repair, intake board and fleet routes.
type ServiceDeskHandler struct {
	createDevice       *command.CreateDeviceHandler
	updateDevice       *command.UpdateDeviceHandler
	createWarranty     *command.CreateWarrantyHandler
	createRepair       *command.CreateRepairHandler
	updateRepairStatus *command.UpdateRepairStatusHandler
	addFleetDevice     *command.AddFleetDeviceHandler
	listDevices        *query.ListDevicesHandler
	boardStats         *query.BoardStatsHandler
	lookupWarranty     *query.LookupWarrantyHandler
	getRepair          *query.GetRepairHandler
	listFleet          *query.ListFleetHandler
	fleetStats         *query.FleetStatsHandler

	metrics         *metrics.HTTPMetrics
	warrantyLookups *prometheus.CounterVec
	repairUpdates   *prometheus.CounterVec
}

// NewServiceDeskHandler creates the handler. Used by Wire.
func NewServiceDeskHandler(
	createDevice *command.CreateDeviceHandler,
	updateDevice *command.UpdateDeviceHandler,
	createWarranty *command.CreateWarrantyHandler,
	createRepair *command.CreateRepairHandler,
	updateRepairStatus *command.UpdateRepairStatusHandler,
	addFleetDevice *command.AddFleetDeviceHandler,
	listDevices *query.ListDevicesHandler,
	boardStats *query.BoardStatsHandler,
	lookupWarranty *query.LookupWarrantyHandler,
	getRepair *query.GetRepairHandler,
	listFleet *query.ListFleetHandler,
	fleetStats *query.FleetStatsHandler,
	reg prometheus.Registerer,
) *ServiceDeskHandler {
	m := metrics.NewHTTPMetrics(reg, "servicedesk_service")

	return &ServiceDeskHandler{
		createDevice:       createDevice,
		updateDevice:       updateDevice,
		createWarranty:     createWarranty,
		createRepair:       createRepair,
		updateRepairStatus: updateRepairStatus,
		addFleetDevice:     addFleetDevice,
		listDevices:        listDevices,
		boardStats:         boardStats,
		lookupWarranty:     lookupWarranty,
		getRepair:          getRepair,
		listFleet:          listFleet,
		fleetStats:         fleetStats,
		metrics:            m,
		warrantyLookups:    m.Counter("warranty_lookups_total", "Warranty lookups by outcome", "outcome"),
		repairUpdates:      m.Counter("repair_status_updates_total", "Repair ticket transitions by status", "status"),
	}
}

type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func (h *ServiceDeskHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics
	staff := middleware.RequireRole("admin", "technician")

	router.HandleFunc("/api/warranty/{serialNumber}", m.Wrap("/api/warranty/{serialNumber}", h.LookupWarranty)).Methods("GET")
	router.HandleFunc("/api/warranties", m.Wrap("/api/warranties", middleware.Admin(h.CreateWarranty))).Methods("POST")

	router.HandleFunc("/api/repairs", m.Wrap("/api/repairs", h.CreateRepair)).Methods("POST")
	router.HandleFunc("/api/repairs/{ticketId}", m.Wrap("/api/repairs/{ticketId}", h.GetRepair)).Methods("GET")
	router.HandleFunc("/api/repairs/{ticketId}/status", m.Wrap("/api/repairs/{ticketId}/status", staff(h.UpdateRepairStatus))).Methods("PATCH")

	router.HandleFunc("/api/admin/devices", m.Wrap("/api/admin/devices", middleware.Admin(h.ListDevices))).Methods("GET")
	router.HandleFunc("/api/admin/devices", m.Wrap("/api/admin/devices", middleware.Admin(h.CreateDevice))).Methods("POST")
	router.HandleFunc("/api/admin/devices/{id}", m.Wrap("/api/admin/devices/{id}", middleware.Admin(h.UpdateDevice))).Methods("PATCH")
	router.HandleFunc("/api/admin/stats", m.Wrap("/api/admin/stats", middleware.Admin(h.BoardStats))).Methods("GET")

	router.HandleFunc("/api/fleet/{companyId}", m.Wrap("/api/fleet/{companyId}", middleware.Auth(h.ListFleet))).Methods("GET")
	router.HandleFunc("/api/fleet/{companyId}/devices", m.Wrap("/api/fleet/{companyId}/devices", middleware.Auth(h.AddFleetDevice))).Methods("POST")
	router.HandleFunc("/api/fleet/{companyId}/stats", m.Wrap("/api/fleet/{companyId}/stats", middleware.Auth(h.FleetStats))).Methods("GET")
}

// LookupWarranty handles GET /api/warranty/{serialNumber}
func (h *ServiceDeskHandler) LookupWarranty(w http.ResponseWriter, r *http.Request) {
	lookup, err := h.lookupWarranty.Handle(r.Context(), query.LookupWarrantyQuery{SerialNumber: mux.Vars(r)["serialNumber"]})
	if err != nil {
		if errors.Is(err, domain.ErrWarrantyNotFound) {
			h.warrantyLookups.WithLabelValues("not_found").Inc()
		}
		h.respondError(w, r, err, "Failed to fetch warranty information")
		return
	}

	h.warrantyLookups.WithLabelValues(string(lookup.Status)).Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Data: lookup})
}

type warrantyRequest struct {
	SerialNumber  string    `json:"serialNumber"`
	ProductID     *uint     `json:"productId"`
	PurchaseDate  Timestamp `json:"purchaseDate"`
	ExpiryDate    Timestamp `json:"expiryDate"`
	Coverage      string    `json:"coverage"`
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerEmail string    `json:"customerEmail"`
	IsActive      *bool     `json:"isActive"`
}

// CreateWarranty handles POST /api/warranties
func (h *ServiceDeskHandler) CreateWarranty(w http.ResponseWriter, r *http.Request) {
	var req warrantyRequest
	if !decode(w, r, &req) {
		return
	}

	warranty, err := h.createWarranty.Handle(r.Context(), command.CreateWarrantyCommand{Warranty: domain.Warranty{
		SerialNumber:  req.SerialNumber,
		ProductID:     req.ProductID,
		PurchaseDate:  req.PurchaseDate.Time,
		ExpiryDate:    req.ExpiryDate.Time,
		Coverage:      req.Coverage,
		InvoiceNumber: req.InvoiceNumber,
		CustomerEmail: req.CustomerEmail,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}})
	if err != nil {
		h.respondError(w, r, err, "Failed to create warranty")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Warranty registered", Data: warranty})
}

type repairRequest struct {
	SerialNumber        string          `json:"serialNumber"`
	DeviceModel         string          `json:"deviceModel"`
	IssueDescription    string          `json:"issueDescription"`
	AssignedTechnician  string          `json:"assignedTechnician"`
	EstimatedCompletion *Timestamp      `json:"estimatedCompletion"`
	CustomerInfo        domain.Customer `json:"customerInfo"`
}

// CreateRepair handles POST /api/repairs
func (h *ServiceDeskHandler) CreateRepair(w http.ResponseWriter, r *http.Request) {
	var req repairRequest
	if !decode(w, r, &req) {
		return
	}

	ticket, err := h.createRepair.Handle(r.Context(), command.CreateRepairCommand{Ticket: domain.RepairTicket{
		SerialNumber:        req.SerialNumber,
		DeviceModel:         req.DeviceModel,
		IssueDescription:    req.IssueDescription,
		AssignedTechnician:  req.AssignedTechnician,
		EstimatedCompletion: req.EstimatedCompletion.Ptr(),
		CustomerInfo:        datatypes.NewJSONType(req.CustomerInfo),
	}})
	if err != nil {
		h.respondError(w, r, err, "Failed to create repair ticket")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Repair ticket created", Data: ticket})
}

// GetRepair handles GET /api/repairs/{ticketId}
func (h *ServiceDeskHandler) GetRepair(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.getRepair.Handle(r.Context(), query.GetRepairQuery{TicketID: mux.Vars(r)["ticketId"]})
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch repair ticket")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: ticket})
}

// UpdateRepairStatus handles PATCH /api/repairs/{ticketId}/status
func (h *ServiceDeskHandler) UpdateRepairStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if !decode(w, r, &req) {
		return
	}

	ticket, err := h.updateRepairStatus.Handle(r.Context(), command.UpdateRepairStatusCommand{
		TicketID: mux.Vars(r)["ticketId"],
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to update repair ticket")
		return
	}

	h.repairUpdates.WithLabelValues(string(ticket.Status)).Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Repair status updated", Data: ticket})
}

// ListDevices handles GET /api/admin/devices
func (h *ServiceDeskHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	devices, err := h.listDevices.Handle(r.Context(), query.ListDevicesQuery{
		Status:     params.Get("status"),
		Technician: params.Get("technician"),
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch devices")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: devices})
}

type deviceRequest struct {
	SerialNumber       string          `json:"serialNumber"`
	Model              string          `json:"model"`
	Brand              string          `json:"brand"`
	DeviceType         string          `json:"deviceType"`
	Status             string          `json:"status"`
	AssignedTechnician string          `json:"assignedTechnician"`
	CustomerInfo       domain.Customer `json:"customerInfo"`
	RepairNotes        string          `json:"repairNotes"`
	EstimatedValue     *float64        `json:"estimatedValue"`
}

// CreateDevice handles POST /api/admin/devices
func (h *ServiceDeskHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if !decode(w, r, &req) {
		return
	}

	device, err := h.createDevice.Handle(r.Context(), command.CreateDeviceCommand{Device: domain.Device{
		SerialNumber:       req.SerialNumber,
		Model:              req.Model,
		Brand:              req.Brand,
		DeviceType:         req.DeviceType,
		Status:             domain.DeviceStatus(req.Status),
		AssignedTechnician: req.AssignedTechnician,
		CustomerInfo:       datatypes.NewJSONType(req.CustomerInfo),
		RepairNotes:        req.RepairNotes,
		EstimatedValue:     req.EstimatedValue,
	}})
	if err != nil {
		h.respondError(w, r, err, "Failed to create device")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Device created", Data: device})
}

// UpdateDevice handles PATCH /api/admin/devices/{id}
func (h *ServiceDeskHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid device ID"})
		return
	}

	var update domain.DeviceUpdate
	if !decode(w, r, &update) {
		return
	}

	device, err := h.updateDevice.Handle(r.Context(), command.UpdateDeviceCommand{ID: uint(id), Update: update})
	if err != nil {
		h.respondError(w, r, err, "Failed to update device")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Device updated", Data: device})
}

// BoardStats handles GET /api/admin/stats
func (h *ServiceDeskHandler) BoardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.boardStats.Handle(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch dashboard stats")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// ListFleet handles GET /api/fleet/{companyId}
func (h *ServiceDeskHandler) ListFleet(w http.ResponseWriter, r *http.Request) {
	devices, err := h.listFleet.Handle(r.Context(), query.FleetQuery{CompanyID: mux.Vars(r)["companyId"]})
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch fleet devices")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: devices})
}

type fleetDeviceRequest struct {
	DeviceID        string     `json:"deviceId"`
	DeviceModel     string     `json:"deviceModel"`
	AssignedUser    string     `json:"assignedUser"`
	Status          string     `json:"status"`
	WarrantyExpiry  *Timestamp `json:"warrantyExpiry"`
	LastMaintenance *Timestamp `json:"lastMaintenance"`
	DeploymentDate  *Timestamp `json:"deploymentDate"`
}

// AddFleetDevice handles POST /api/fleet/{companyId}/devices
func (h *ServiceDeskHandler) AddFleetDevice(w http.ResponseWriter, r *http.Request) {
	var req fleetDeviceRequest
	if !decode(w, r, &req) {
		return
	}

	device := domain.FleetDevice{
		DeviceID:        req.DeviceID,
		DeviceModel:     req.DeviceModel,
		AssignedUser:    req.AssignedUser,
		Status:          domain.FleetStatus(req.Status),
		WarrantyExpiry:  req.WarrantyExpiry.Ptr(),
		LastMaintenance: req.LastMaintenance.Ptr(),
	}
	if req.DeploymentDate != nil {
		device.DeploymentDate = req.DeploymentDate.Time
	}

	created, err := h.addFleetDevice.Handle(r.Context(), command.AddFleetDeviceCommand{
		CompanyID: mux.Vars(r)["companyId"],
		Device:    device,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to add fleet device")
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Fleet device added", Data: created})
}

// FleetStats handles GET /api/fleet/{companyId}/stats
func (h *ServiceDeskHandler) FleetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fleetStats.Handle(r.Context(), query.FleetQuery{CompanyID: mux.Vars(r)["companyId"]})
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch fleet stats")
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func (h *ServiceDeskHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "Service desk is healthy"})
	}).Methods("GET")
}

func (h *ServiceDeskHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request data", Errors: verrs})
	case errors.Is(err, domain.ErrWarrantyNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Warranty not found for this serial number"})
	case errors.Is(err, domain.ErrTicketNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Repair ticket not found"})
	case errors.Is(err, domain.ErrDeviceNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Device not found"})
	case errors.Is(err, domain.ErrDuplicateSerial):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: "A device with this serial number already exists"})
	default:
		logger.Error(r.Context()).Err(err).Msg(fallback)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return false
	}
	return true
}

// Timestamp accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Ptr returns nil for a missing or zero timestamp.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
