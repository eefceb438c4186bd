package form

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-laundry/internal/common"
	"github.com/noah-isme/backend-laundry/internal/obs"
	"github.com/noah-isme/backend-laundry/internal/share"
)

// ShareDeliveredHeader reports whether a sink accepted the shared text.
const ShareDeliveredHeader = "X-Share-Delivered"

// Handler serves the order form over HTTP. Form state is never kept server side.
type Handler struct {
	Sink     share.Sink
	Location *time.Location
	Logger   zerolog.Logger
	Now      func() time.Time
	NewID    func() uuid.UUID
}

// Envelope is the state plus its rendering, as returned to clients.
type Envelope struct {
	State State `json:"state"`
	View  View  `json:"view"`
}

// DispatchRequest is the body of POST /api/v1/laundry/form/actions.
type DispatchRequest struct {
	State   State    `json:"state"`
	Actions []Action `json:"actions"`
}

// ShareRequest is the body of POST /api/v1/laundry/form/share.
type ShareRequest struct {
	State State `json:"state"`
}

// New handles POST /api/v1/laundry/form.
func (h *Handler) New(w http.ResponseWriter, r *http.Request) {
	s := New(h.newID(), h.now())
	common.Data(w, http.StatusCreated, Envelope{State: s, View: Render(s)})
}

// Dispatch handles POST /api/v1/laundry/form/actions.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req DispatchRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	if err := req.State.Verify(); err != nil {
		common.WriteError(w, common.BadRequest(err.Error(), err))
		return
	}
	for i, a := range req.Actions {
		if a.Type == "" {
			common.WriteError(w, common.BadRequest(fmt.Sprintf("actions[%d].type is required", i), ErrUnknownAction))
			return
		}
	}
	now := h.now()
	s := req.State
	for _, a := range req.Actions {
		a.At = now
		s = Reduce(s, a)
		if a.Type == ActionCalculate {
			obs.RecordQuote("form", s.Validation.Fields())
		}
	}
	common.Data(w, http.StatusOK, Envelope{State: s, View: Render(s)})
}

// Share handles POST /api/v1/laundry/form/share. The summary is handed to the sink
// and echoed back as text/plain.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	if err := req.State.Verify(); err != nil {
		common.WriteError(w, common.BadRequest(err.Error(), err))
		return
	}
	msg, ok := req.State.ShareMessage(h.location())
	if !ok {
		common.WriteError(w, common.NewAppError(common.CodeNotComputed, "hitung biaya sebelum membagikan", http.StatusConflict, nil))
		return
	}
	delivered := share.Deliver(h.Sink, msg)
	obs.RecordShare(delivered)
	if !delivered {
		h.Logger.Debug().Str("form_session", req.State.SessionID.String()).Msg("share skipped: no sink")
	}
	w.Header().Set(ShareDeliveredHeader, strconv.FormatBool(delivered))
	common.Text(w, http.StatusOK, share.MIMETextPlain, msg)
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) newID() uuid.UUID {
	if h.NewID != nil {
		return h.NewID()
	}
	return uuid.New()
}

func (h *Handler) location() *time.Location {
	if h.Location != nil {
		return h.Location
	}
	return time.Local
}
