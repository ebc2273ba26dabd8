package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skavtech/ict-platform/internal/tradein/domain"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/command"
	"github.com/skavtech/ict-platform/internal/tradein/usecase/query"
	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/pkg/logger"
	"github.com/skavtech/ict-platform/pkg/metrics"
	"github.com/skavtech/ict-platform/pkg/middleware"
)

// TradeInHandler handles HTTP requests for trade-in valuation and quotes
type TradeInHandler struct {
	estimateHandler     *query.EstimateHandler
	getHandler          *query.GetTradeInHandler
	listHandler         *query.ListTradeInsHandler
	createHandler       *command.CreateTradeInHandler
	updateStatusHandler *command.UpdateStatusHandler

	metrics   *metrics.HTTPMetrics
	estimates *prometheus.CounterVec
	quotes    *prometheus.CounterVec
}

// NewTradeInHandler creates a trade-in handler. Used by Wire.
func NewTradeInHandler(
	estimateHandler *query.EstimateHandler,
	getHandler *query.GetTradeInHandler,
	listHandler *query.ListTradeInsHandler,
	createHandler *command.CreateTradeInHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	reg prometheus.Registerer,
) *TradeInHandler {
	m := metrics.NewHTTPMetrics(reg, "tradein_service")

	return &TradeInHandler{
		estimateHandler:     estimateHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		createHandler:       createHandler,
		updateStatusHandler: updateStatusHandler,
		metrics:             m,
		estimates:           m.Counter("estimates_total", "Trade-in estimates by device type and condition", "device_type", "condition"),
		quotes:              m.Counter("quotes_total", "Trade-in quotes by status reached", "status"),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ValidationResponse is the 400 body for rejected trade-in requests.
type ValidationResponse struct {
	Message string                 `json:"message"`
	Errors  []valuation.FieldError `json:"errors"`
}

const invalidTradeIn = "Invalid trade-in data"

func (h *TradeInHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics

	router.HandleFunc("/api/trade-in/estimate", m.Wrap("/api/trade-in/estimate", h.Estimate)).Methods("POST")
	router.HandleFunc("/api/trade-in", m.Wrap("/api/trade-in", h.CreateTradeIn)).Methods("POST")

	router.HandleFunc("/api/trade-in", m.Wrap("/api/trade-in", middleware.Admin(h.ListTradeIns))).Methods("GET")
	router.HandleFunc("/api/trade-in/{id}", m.Wrap("/api/trade-in/{id}", middleware.Admin(h.GetTradeIn))).Methods("GET")
	router.HandleFunc("/api/trade-in/{id}/status", m.Wrap("/api/trade-in/{id}/status", middleware.Admin(h.UpdateStatus))).Methods("PATCH")
}

// Estimate handles POST /api/trade-in/estimate
func (h *TradeInHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var raw valuation.RawRequest
	if !decodeRaw(w, r, &raw) {
		return
	}

	est, err := h.estimateHandler.Handle(r.Context(), query.EstimateQuery{Request: raw})
	if err != nil {
		h.respondTradeInError(w, r, err, "Failed to calculate trade-in estimate")
		return
	}

	h.estimates.WithLabelValues(string(est.Request.DeviceType), string(est.Request.Condition)).Inc()

	respondJSON(w, http.StatusOK, est)
}

type createTradeInRequest struct {
	valuation.RawRequest
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
}

// CreateTradeIn handles POST /api/trade-in
func (h *TradeInHandler) CreateTradeIn(w http.ResponseWriter, r *http.Request) {
	var req createTradeInRequest
	if !decodeRaw(w, r, &req) {
		return
	}

	tradeIn, err := h.createHandler.Handle(r.Context(), command.CreateTradeInCommand{
		Request:  req.RawRequest,
		Customer: req.CustomerInfo,
	})
	if err != nil {
		h.respondTradeInError(w, r, err, "Failed to create trade-in request")
		return
	}

	h.quotes.WithLabelValues(string(tradeIn.Status)).Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Trade-in quote created",
		Data:    tradeIn,
	})
}

// ListTradeIns handles GET /api/trade-in
func (h *TradeInHandler) ListTradeIns(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	limit, _ := strconv.Atoi(params.Get("limit"))
	offset, _ := strconv.Atoi(params.Get("offset"))

	page, err := h.listHandler.Handle(r.Context(), query.ListTradeInsQuery{
		Status: params.Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to list trade-ins")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: page})
}

// GetTradeIn handles GET /api/trade-in/{id}
func (h *TradeInHandler) GetTradeIn(w http.ResponseWriter, r *http.Request) {
	id, ok := tradeInID(w, r)
	if !ok {
		return
	}

	tradeIn, err := h.getHandler.Handle(r.Context(), query.GetTradeInQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get trade-in")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: tradeIn})
}

// UpdateStatus handles PATCH /api/trade-in/{id}/status
func (h *TradeInHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := tradeInID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	tradeIn, err := h.updateStatusHandler.Handle(r.Context(), command.UpdateStatusCommand{ID: id, Status: req.Status})
	if err != nil {
		h.respondError(w, r, err, "Failed to update trade-in")
		return
	}

	h.quotes.WithLabelValues(string(tradeIn.Status)).Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Trade-in status updated",
		Data:    tradeIn,
	})
}

func (h *TradeInHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Message: "Trade-in service is healthy"})
	}).Methods("GET")
}

// decodeRaw rejects a malformed body with the validation shape.
func decodeRaw(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationResponse{
			Message: invalidTradeIn,
			Errors:  []valuation.FieldError{{Field: "body", Message: "Request body must be a JSON object"}},
		})
		return false
	}
	return true
}

func (h *TradeInHandler) respondTradeInError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verrs valuation.ValidationErrors
	if errors.As(err, &verrs) {
		respondJSON(w, http.StatusBadRequest, ValidationResponse{Message: invalidTradeIn, Errors: verrs})
		return
	}
	logger.Error(r.Context()).Err(err).Msg(fallback)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
}

func (h *TradeInHandler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrTradeInNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Trade-in not found"})
	case errors.Is(err, domain.ErrInvalidStatus):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Status must be quoted, scheduled, collected, or processed"})
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg(fallback)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

func tradeInID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid trade-in ID"})
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
