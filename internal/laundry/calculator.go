package laundry

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-laundry/internal/pricing"
)

const weightTag = "laundry_weight"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(weightTag, func(fl validator.FieldLevel) bool {
		_, ok := ParseWeight(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// ParseWeight converts the raw weight text into kilograms.
// The empty string and the literal "0" are rejected outright; anything else must
// parse as a plain decimal strictly greater than zero. Exponent notation is not
// accepted.
func ParseWeight(raw string) (decimal.Decimal, bool) {
	if raw == "" || raw == "0" {
		return decimal.Zero, false
	}
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, false
	}
	weight, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if !weight.IsPositive() {
		return decimal.Zero, false
	}
	return weight, true
}

// Validate runs the validation gate over the input.
func Validate(in OrderInput) ValidationState {
	var state ValidationState
	err := validate.Struct(in)
	if err == nil {
		return state
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a broken validator setup; fail closed.
		return ValidationState{NameInvalid: true, AddressInvalid: true, WeightInvalid: true}
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "CustomerName":
			state.NameInvalid = true
		case "CustomerAddress":
			state.AddressInvalid = true
		case "WeightKg":
			state.WeightInvalid = true
		}
	}
	return state
}

// ComputeOrder validates the input and prices the order. The OrderResult is only
// meaningful when the returned ValidationState is valid; otherwise it is the zero value.
func ComputeOrder(in OrderInput, isPaid bool, method PaymentMethod) (OrderResult, ValidationState) {
	state := Validate(in)
	if !state.Valid() {
		return OrderResult{}, state
	}
	weight, _ := ParseWeight(in.WeightKg)
	summary := pricing.Compute(weight)
	if !isPaid {
		method = MethodNone
	}
	return OrderResult{
		WeightKg:      summary.Weight,
		TotalCost:     summary.Subtotal,
		Discount:      summary.Discount,
		IsPaid:        isPaid,
		PaymentMethod: method,
	}, state
}

// CheckResult reprices res from its own weight and reports ErrResultMismatch when the
// amounts or the payment fields disagree with what ComputeOrder would have produced.
func CheckResult(res OrderResult) error {
	weight, ok := ParseWeight(res.WeightKg.String())
	if !ok {
		return fmt.Errorf("%w: weight %s", ErrResultMismatch, res.WeightKg)
	}
	want := pricing.Compute(weight)
	if !res.TotalCost.Equal(want.Subtotal) {
		return fmt.Errorf("%w: totalCost %s, want %s", ErrResultMismatch, res.TotalCost, want.Subtotal)
	}
	if !res.Discount.Equal(want.Discount) {
		return fmt.Errorf("%w: discount %s, want %s", ErrResultMismatch, res.Discount, want.Discount)
	}
	if !res.IsPaid && res.PaymentMethod != MethodNone {
		return fmt.Errorf("%w: unpaid order carries method %s", ErrResultMismatch, res.PaymentMethod)
	}
	return nil
}
