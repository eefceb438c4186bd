// Package form models the laundry order screen as an explicit value: clients hold a
// State, send Actions, and receive the next State from a pure reducer.
package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-laundry/internal/laundry"
)

// ErrInvalidState is returned by Verify for states the reducer could not have produced.
var ErrInvalidState = errors.New("invalid form state")

// Status is the calculation state shown to the user.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusComputed Status = "computed"
)

// State is one session of the order form.
type State struct {
	SessionID       uuid.UUID               `json:"sessionId"`
	StartedAt       time.Time               `json:"startedAt"`
	CustomerName    string                  `json:"customerName"`
	CustomerAddress string                  `json:"customerAddress"`
	WeightKg        string                  `json:"weightKg"`
	IsPaid          bool                    `json:"isPaid"`
	PaymentMethod   laundry.PaymentMethod   `json:"paymentMethod"`
	Validation      laundry.ValidationState `json:"validation"`
	Computed        bool                    `json:"computed"`
	Result          laundry.OrderResult     `json:"result"`
}

// New opens a fresh form session.
func New(id uuid.UUID, now time.Time) State {
	return State{SessionID: id, StartedAt: now}
}

// Status reports whether a result is currently on screen.
func (s State) Status() Status {
	if s.Computed {
		return StatusComputed
	}
	return StatusIdle
}

// Input returns the raw text fields as an order input.
func (s State) Input() laundry.OrderInput {
	return laundry.OrderInput{
		CustomerName:    s.CustomerName,
		CustomerAddress: s.CustomerAddress,
		WeightKg:        s.WeightKg,
	}
}

// ShareMessage renders the share summary with the session time shown in loc.
// It reports false until a result exists.
func (s State) ShareMessage(loc *time.Location) (string, bool) {
	if !s.Computed {
		return "", false
	}
	at := s.StartedAt
	if loc != nil {
		at = at.In(loc)
	}
	return laundry.FormatShareMessage(s.Input(), s.Result, at), true
}

// Verify checks a state received from a client. A computed state must carry a
// passing validation and a result that reprices to the same bill.
func (s State) Verify() error {
	if s.SessionID == uuid.Nil {
		return fmt.Errorf("%w: state.sessionId is required", ErrInvalidState)
	}
	if s.StartedAt.IsZero() {
		return fmt.Errorf("%w: state.startedAt is required", ErrInvalidState)
	}
	if !s.Computed {
		return nil
	}
	if !s.Validation.Valid() {
		return fmt.Errorf("%w: computed with invalid fields %v", ErrInvalidState, s.Validation.Fields())
	}
	if s.IsPaid != s.Result.IsPaid || s.PaymentMethod != s.Result.PaymentMethod {
		return fmt.Errorf("%w: payment differs from result", ErrInvalidState)
	}
	if err := laundry.CheckResult(s.Result); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return nil
}
