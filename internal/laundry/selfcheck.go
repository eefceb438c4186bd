package laundry

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PricingCheck is a readiness check that prices a known order and compares the bill.
type PricingCheck struct{}

// Name implements health.Checker.
func (PricingCheck) Name() string { return "pricing" }

// Check implements health.Checker.
func (PricingCheck) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, state := ComputeOrder(OrderInput{CustomerName: "readiness", CustomerAddress: "readiness", WeightKg: "5"}, false, MethodNone)
	if !state.Valid() {
		return fmt.Errorf("pricing self-check rejected: %v", state.Fields())
	}
	if want := decimal.NewFromInt(22_500); !res.NetTotal().Equal(want) {
		return fmt.Errorf("pricing self-check: net total %s, want %s", res.NetTotal(), want)
	}
	return nil
}
