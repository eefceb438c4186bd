package laundry

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const shareTemplateHeader = "Data Laundry"

// FormatShareMessage renders the summary handed to the share sink. The template is
// fixed: identical arguments always produce an identical string.
func FormatShareMessage(in OrderInput, res OrderResult, at time.Time) string {
	var b strings.Builder
	b.WriteString(shareTemplateHeader)
	b.WriteString("\nNama Pelanggan: ")
	b.WriteString(in.CustomerName)
	b.WriteString("\nAlamat: ")
	b.WriteString(in.CustomerAddress)
	b.WriteString("\nBerat Cucian: ")
	b.WriteString(in.WeightKg)
	b.WriteString(" kg\nWaktu: ")
	b.WriteString(at.Format(time.UnixDate))
	b.WriteString("\nTotal Biaya: ")
	b.WriteString(FormatRupiah(res.NetTotal()))
	b.WriteString("\nDiskon: ")
	b.WriteString(FormatRupiah(res.Discount))
	return b.String()
}

// FormatRupiah renders an amount as Rp1.234.567 or Rp1.166,50 when cents are present.
func FormatRupiah(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	negative := rounded.IsNegative()
	rounded = rounded.Abs()

	fixed := rounded.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("Rp")
	b.WriteString(groupThousands(whole))
	if frac != "" && frac != "00" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
