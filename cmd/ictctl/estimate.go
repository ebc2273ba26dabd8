package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skavtech/ict-platform/internal/tradein/valuation"
)

// midpoint makes estimates reproducible: jitter factor 1.0.
type midpoint struct{}

func (midpoint) Float64() float64 { return 0.5 }

type estimateOutput struct {
	EstimatedValue int64              `json:"estimatedValue"`
	Breakdown      valuation.Request  `json:"breakdown"`
	Factors        *valuation.Factors `json:"factors,omitempty"`
}

func newEstimateCmd(d deps) *cobra.Command {
	var (
		raw      valuation.RawRequest
		noJitter bool
		explain  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the trade-in value of a device",
		Example: "  ictctl estimate --type laptop --brand Apple --model \"MacBook Pro\" --age 1-2 --condition good --no-jitter",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := valuation.ParseRequest(raw)
			if err != nil {
				var verrs valuation.ValidationErrors
				if errors.As(err, &verrs) {
					for _, fe := range verrs {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Field, fe.Message)
					}
				}
				return fmt.Errorf("invalid trade-in request")
			}

			jitter := d.jitter
			if noJitter {
				jitter = midpoint{}
			}
			est := valuation.NewEstimator(jitter).Estimate(req)

			out := estimateOutput{EstimatedValue: est.Value, Breakdown: est.Request}
			if explain {
				out.Factors = &est.Factors
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&raw.DeviceType, "type", "", "device type: laptop, desktop, server or tablet")
	f.StringVar(&raw.Brand, "brand", "", "manufacturer")
	f.StringVar(&raw.Model, "model", "", "model name")
	f.StringVar(&raw.Age, "age", "", "age bucket: 0-1, 1-2, 2-3, 3-5 or 5+")
	f.StringVar(&raw.Condition, "condition", "", "condition: excellent, good, fair or poor")
	f.BoolVar(&noJitter, "no-jitter", false, "disable market variance for a reproducible value")
	f.BoolVar(&explain, "explain", false, "include the applied multipliers")
	return cmd
}
