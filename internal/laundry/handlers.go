package laundry

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-laundry/internal/common"
	"github.com/noah-isme/backend-laundry/internal/obs"
)

// QuoteRequest is the body of POST /api/v1/laundry/quote.
type QuoteRequest struct {
	OrderInput
	IsPaid        bool          `json:"isPaid"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Quote is the priced order returned to clients.
type Quote struct {
	Result        OrderResult     `json:"result"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	PaymentStatus string          `json:"paymentStatus"`
}

// NewQuote decorates a result with its derived display values.
func NewQuote(res OrderResult) Quote {
	return Quote{Result: res, NetTotal: res.NetTotal(), PaymentStatus: res.PaymentStatus()}
}

// Handler exposes the calculator over HTTP.
type Handler struct{}

// Quote handles POST /api/v1/laundry/quote.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	res, state := ComputeOrder(req.OrderInput, req.IsPaid, req.PaymentMethod)
	obs.RecordQuote("quote", state.Fields())
	if !state.Valid() {
		common.WriteError(w, common.ValidationFailed(state))
		return
	}
	common.Data(w, http.StatusOK, NewQuote(res))
}
