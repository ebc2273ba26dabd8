package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Estimate godoc
// @Summary Estimate a trade-in value
// @Description Price a used device. The value carries +/-5% market variance and is rounded to the nearest 10.
// @Tags TradeIn
// @Accept json
// @Produce json
// @Param request body valuation.RawRequest true "Device details"
// @Success 200 {object} valuation.Estimate
// @Failure 400 {object} ValidationResponse
// @Router /api/trade-in/estimate [post]
func (h *TradeInHandler) EstimateDoc() {}

// CreateTradeIn godoc
// @Summary Create a trade-in quote
// @Description Store a quote with customer details. The estimate is recomputed server side.
// @Tags TradeIn
// @Accept json
// @Produce json
// @Param request body createTradeInRequest true "Device and customer details"
// @Success 201 {object} Response{data=domain.TradeIn}
// @Failure 400 {object} ValidationResponse
// @Router /api/trade-in [post]
func (h *TradeInHandler) CreateTradeInDoc() {}

// ListTradeIns godoc
// @Summary List trade-ins
// @Description List stored quotes, newest first (Admin only)
// @Tags TradeIn
// @Security BearerAuth
// @Produce json
// @Param status query string false "quoted, scheduled, collected or processed"
// @Param limit query int false "Limit (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} Response{data=query.TradeInPage}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/trade-in [get]
func (h *TradeInHandler) ListTradeInsDoc() {}

// GetTradeIn godoc
// @Summary Get trade-in by ID
// @Tags TradeIn
// @Security BearerAuth
// @Produce json
// @Param id path int true "Trade-in ID"
// @Success 200 {object} Response{data=domain.TradeIn}
// @Failure 404 {object} Response
// @Router /api/trade-in/{id} [get]
func (h *TradeInHandler) GetTradeInDoc() {}

// UpdateStatus godoc
// @Summary Advance a trade-in
// @Description Move a trade-in forward through quoted, scheduled, collected and processed (Admin only)
// @Tags TradeIn
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Trade-in ID"
// @Success 200 {object} Response{data=domain.TradeIn}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/trade-in/{id}/status [patch]
func (h *TradeInHandler) UpdateStatusDoc() {}
