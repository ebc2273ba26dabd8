package query

import (
	"context"

	"github.com/skavtech/ict-platform/internal/tradein/valuation"
	"github.com/skavtech/ict-platform/pkg/logger"
)

// EstimateQuery asks for a price on an unvalidated request.
type EstimateQuery struct {
	Request valuation.RawRequest
}

type EstimateHandler struct {
	estimator *valuation.Estimator
}

func NewEstimateHandler(estimator *valuation.Estimator) *EstimateHandler {
	return &EstimateHandler{estimator: estimator}
}

// Handle validates and prices the request. Validation failures are returned
// as valuation.ValidationErrors.
func (h *EstimateHandler) Handle(ctx context.Context, q EstimateQuery) (valuation.Estimate, error) {
	req, err := valuation.ParseRequest(q.Request)
	if err != nil {
		return valuation.Estimate{}, err
	}

	est := h.estimator.Estimate(req)

	logger.Info(ctx).
		Str("device_type", string(req.DeviceType)).
		Str("brand", req.Brand).
		Str("model", req.Model).
		Str("condition", string(req.Condition)).
		Int64("estimated_value", est.Value).
		Str("jitter", est.Factors.Jitter.StringFixed(4)).
		Msg("Trade-in estimate calculated")

	return est, nil
}
