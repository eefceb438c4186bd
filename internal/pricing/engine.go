package pricing

import "github.com/shopspring/decimal"

const (
	// UnitRatePerKg is the laundry price for one kilogram, in rupiah.
	UnitRatePerKg = 5000
	// DiscountThresholdKg is the minimum weight that earns the bulk discount.
	DiscountThresholdKg = 5
	// DiscountPercent is the bulk discount applied to the subtotal.
	DiscountPercent = 10
)

// DiscountRule describes a percentage discount unlocked by a minimum weight.
type DiscountRule struct {
	MinWeight decimal.Decimal
	Percent   int64
}

// DefaultDiscount is the bulk rule: 10% off from 5 kg.
func DefaultDiscount() DiscountRule {
	return DiscountRule{
		MinWeight: decimal.NewFromInt(DiscountThresholdKg),
		Percent:   DiscountPercent,
	}
}

// Applies reports whether the rule is eligible for the given weight.
func (r DiscountRule) Applies(weight decimal.Decimal) bool {
	if r.Percent <= 0 {
		return false
	}
	return weight.GreaterThanOrEqual(r.MinWeight)
}

// Compute returns the discount amount for the subtotal. Never more than the subtotal.
func (r DiscountRule) Compute(weight, subtotal decimal.Decimal) decimal.Decimal {
	if !r.Applies(weight) || !subtotal.IsPositive() {
		return decimal.Zero
	}
	discount := subtotal.Mul(decimal.New(r.Percent, -2))
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

// Summary aggregates computed pricing components.
type Summary struct {
	Weight   decimal.Decimal
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Compute prices a load of laundry using the standard unit rate and bulk discount.
func Compute(weight decimal.Decimal) Summary {
	return ComputeWithRule(weight, DefaultDiscount())
}

// ComputeWithRule prices a load of laundry with an explicit discount rule.
// Non-positive weights price to zero.
func ComputeWithRule(weight decimal.Decimal, rule DiscountRule) Summary {
	if !weight.IsPositive() {
		return Summary{Weight: weight, Subtotal: decimal.Zero, Discount: decimal.Zero, Total: decimal.Zero}
	}
	subtotal := weight.Mul(decimal.NewFromInt(UnitRatePerKg))
	discount := rule.Compute(weight, subtotal)
	return Summary{
		Weight:   weight,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}
