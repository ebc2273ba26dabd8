package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// LookupWarranty godoc
// @Summary Look up a warranty
// @Description Active warranty for a serial number with its computed status and days remaining
// @Tags Warranty
// @Produce json
// @Param serialNumber path string true "Device serial number"
// @Success 200 {object} Response{data=domain.WarrantyLookup}
// @Failure 404 {object} Response
// @Router /api/warranty/{serialNumber} [get]
func (h *ServiceDeskHandler) LookupWarrantyDoc() {}

// CreateWarranty godoc
// @Summary Register a warranty
// @Description Register a warranty (Admin only). Dates accept YYYY-MM-DD or RFC 3339.
// @Tags Warranty
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body warrantyRequest true "Warranty data"
// @Success 201 {object} Response{data=domain.Warranty}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/warranties [post]
func (h *ServiceDeskHandler) CreateWarrantyDoc() {}

// CreateRepair godoc
// @Summary Open a repair ticket
// @Tags Repairs
// @Accept json
// @Produce json
// @Param request body repairRequest true "Repair request"
// @Success 201 {object} Response{data=domain.RepairTicket}
// @Failure 400 {object} Response
// @Router /api/repairs [post]
func (h *ServiceDeskHandler) CreateRepairDoc() {}

// GetRepair godoc
// @Summary Track a repair ticket
// @Tags Repairs
// @Produce json
// @Param ticketId path string true "Ticket ID, e.g. RPR-2025-4F9A1C"
// @Success 200 {object} Response{data=domain.RepairTicket}
// @Failure 404 {object} Response
// @Router /api/repairs/{ticketId} [get]
func (h *ServiceDeskHandler) GetRepairDoc() {}

// UpdateRepairStatus godoc
// @Summary Update a repair ticket status
// @Description Append a status to the ticket history (Admin or technician)
// @Tags Repairs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ticketId path string true "Ticket ID"
// @Success 200 {object} Response{data=domain.RepairTicket}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/repairs/{ticketId}/status [patch]
func (h *ServiceDeskHandler) UpdateRepairStatusDoc() {}

// ListDevices godoc
// @Summary List intake board devices
// @Description Devices on the refurbishment board, most recently updated first (Admin only)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "received, diagnosed, repaired, qc or ready"
// @Param technician query string false "Assigned technician"
// @Success 200 {object} Response{data=[]domain.Device}
// @Router /api/admin/devices [get]
func (h *ServiceDeskHandler) ListDevicesDoc() {}

// CreateDevice godoc
// @Summary Add a device to the intake board
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body deviceRequest true "Device data"
// @Success 201 {object} Response{data=domain.Device}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/admin/devices [post]
func (h *ServiceDeskHandler) CreateDeviceDoc() {}

// UpdateDevice godoc
// @Summary Update an intake board device
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Param request body domain.DeviceUpdate true "Fields to change"
// @Success 200 {object} Response{data=domain.Device}
// @Failure 404 {object} Response
// @Router /api/admin/devices/{id} [patch]
func (h *ServiceDeskHandler) UpdateDeviceDoc() {}

// BoardStats godoc
// @Summary Intake board statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response{data=domain.BoardStats}
// @Router /api/admin/stats [get]
func (h *ServiceDeskHandler) BoardStatsDoc() {}

// ListFleet godoc
// @Summary List a company fleet
// @Tags Fleet
// @Security BearerAuth
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} Response{data=[]domain.FleetDevice}
// @Router /api/fleet/{companyId} [get]
func (h *ServiceDeskHandler) ListFleetDoc() {}

// AddFleetDevice godoc
// @Summary Add a device to a company fleet
// @Tags Fleet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param request body fleetDeviceRequest true "Fleet device"
// @Success 201 {object} Response{data=domain.FleetDevice}
// @Failure 400 {object} Response
// @Router /api/fleet/{companyId}/devices [post]
func (h *ServiceDeskHandler) AddFleetDeviceDoc() {}

// FleetStats godoc
// @Summary Fleet statistics
// @Tags Fleet
// @Security BearerAuth
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} Response{data=domain.FleetStats}
// @Router /api/fleet/{companyId}/stats [get]
func (h *ServiceDeskHandler) FleetStatsDoc() {}
