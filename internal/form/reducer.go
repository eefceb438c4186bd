package form

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/noah-isme/backend-laundry/internal/laundry"
)

// ErrUnknownAction is returned for action types the reducer does not understand.
var ErrUnknownAction = errors.New("unknown form action")

// ActionType names a user interaction.
type ActionType string

const (
	ActionSetName    ActionType = "set_name"
	ActionSetAddress ActionType = "set_address"
	ActionSetWeight  ActionType = "set_weight"
	ActionSetPaid    ActionType = "set_paid"
	ActionSetMethod  ActionType = "set_method"
	ActionCalculate  ActionType = "calculate"
	ActionReset      ActionType = "reset"
)

// ParseActionType validates a wire action name.
func ParseActionType(value string) (ActionType, error) {
	switch t := ActionType(value); t {
	case ActionSetName, ActionSetAddress, ActionSetWeight, ActionSetPaid, ActionSetMethod, ActionCalculate, ActionReset:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ActionType) UnmarshalText(text []byte) error {
	parsed, err := ParseActionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Action is one user interaction. At is only read by reset.
type Action struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value,omitempty"`
	At    time.Time  `json:"-"`
}

// Reduce applies a to s and returns the next state. s is not modified.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetName:
		s.CustomerName = a.Value
	case ActionSetAddress:
		s.CustomerAddress = a.Value
	case ActionSetWeight:
		s.WeightKg = a.Value
	case ActionSetPaid:
		// Payment selection is locked once a bill is on screen.
		if s.Computed {
			return s
		}
		paid, err := strconv.ParseBool(a.Value)
		if err != nil {
			return s
		}
		s.IsPaid = paid
		if !paid {
			s.PaymentMethod = laundry.MethodNone
		}
	case ActionSetMethod:
		if s.Computed || !s.IsPaid {
			return s
		}
		method, err := laundry.ParsePaymentMethod(a.Value)
		if err != nil {
			return s
		}
		s.PaymentMethod = method
	case ActionCalculate:
		res, validation := laundry.ComputeOrder(s.Input(), s.IsPaid, s.PaymentMethod)
		s.Validation = validation
		if !validation.Valid() {
			s.Computed = false
			s.Result = laundry.OrderResult{}
			return s
		}
		s.Computed = true
		s.Result = res
	case ActionReset:
		return New(s.SessionID, a.At)
	}
	return s
}

// ReduceAll folds actions over s in order.
func ReduceAll(s State, actions []Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
