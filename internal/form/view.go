package form

import (
	"github.com/noah-isme/backend-laundry/internal/laundry"
)

// InvalidHint is shown under a rejected field.
const InvalidHint = "Input tidak valid"

// View is what the order screen displays for a State.
type View struct {
	Status      Status            `json:"status"`
	Lines       []string          `json:"lines"`
	FieldHints  map[string]string `json:"fieldHints,omitempty"`
	PaymentLock bool              `json:"paymentLocked"`
	CanShare    bool              `json:"canShare"`
}

// Render derives the displayed lines from s.
func Render(s State) View {
	v := View{
		Status:      s.Status(),
		PaymentLock: s.Computed,
		CanShare:    s.Computed,
	}
	for _, field := range s.Validation.Fields() {
		if v.FieldHints == nil {
			v.FieldHints = make(map[string]string, 3)
		}
		v.FieldHints[field] = InvalidHint
	}
	if !s.Computed {
		return v
	}
	v.Lines = append(v.Lines, "Total Biaya: "+laundry.FormatRupiah(s.Result.NetTotal()))
	if s.Result.Discount.IsPositive() {
		v.Lines = append(v.Lines, "Diskon: "+laundry.FormatRupiah(s.Result.Discount))
	}
	v.Lines = append(v.Lines, "Status Pembayaran: "+s.Result.PaymentStatus())
	return v
}
