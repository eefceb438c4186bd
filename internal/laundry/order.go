package laundry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownPaymentMethod is returned when a payment method string is not recognised.
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethod identifies how a paid order was settled.
type PaymentMethod string

const (
	MethodNone     PaymentMethod = ""
	MethodCash     PaymentMethod = "Cash"
	MethodTransfer PaymentMethod = "Transfer"
)

// ParsePaymentMethod converts user input into a PaymentMethod. Matching ignores case.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return MethodNone, nil
	case "cash":
		return MethodCash, nil
	case "transfer":
		return MethodTransfer, nil
	default:
		return MethodNone, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PaymentMethod) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m PaymentMethod) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// OrderInput is the raw text captured by the order form.
type OrderInput struct {
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerAddress string `json:"customerAddress" validate:"required"`
	WeightKg        string `json:"weightKg" validate:"laundry_weight"`
}

// OrderResult is the bill derived from a valid OrderInput.
type OrderResult struct {
	WeightKg      decimal.Decimal `json:"weightKg"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Discount      decimal.Decimal `json:"discount"`
	IsPaid        bool            `json:"isPaid"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

// NetTotal is the amount the customer pays.
func (r OrderResult) NetTotal() decimal.Decimal {
	return r.TotalCost.Sub(r.Discount)
}

// PaymentStatus renders the paid flag the way the counter staff read it.
func (r OrderResult) PaymentStatus() string {
	return PaymentStatusLabel(r.IsPaid)
}

// PaymentStatusLabel returns "Lunas" for paid orders and "Belum Lunas" otherwise.
func PaymentStatusLabel(paid bool) string {
	if paid {
		return "Lunas"
	}
	return "Belum Lunas"
}

// Field names reported by ValidationState.Fields.
const (
	FieldCustomerName    = "customerName"
	FieldCustomerAddress = "customerAddress"
	FieldWeightKg        = "weightKg"
)

// ValidationState flags which inputs failed the validation gate.
type ValidationState struct {
	NameInvalid    bool `json:"nameInvalid"`
	AddressInvalid bool `json:"addressInvalid"`
	WeightInvalid  bool `json:"weightInvalid"`
}

// Valid reports whether every field passed.
func (v ValidationState) Valid() bool {
	return !v.NameInvalid && !v.AddressInvalid && !v.WeightInvalid
}

// Fields lists the invalid field names in form order.
func (v ValidationState) Fields() []string {
	var fields []string
	if v.NameInvalid {
		fields = append(fields, FieldCustomerName)
	}
	if v.AddressInvalid {
		fields = append(fields, FieldCustomerAddress)
	}
	if v.WeightInvalid {
		fields = append(fields, FieldWeightKg)
	}
	return fields
}

// ErrResultMismatch is returned when a submitted result does not match the bill its
// weight prices to.
var ErrResultMismatch = errors.New("order result does not match pricing")
