package availability

import "errors"

type Reason string

const (
	ReasonValidation          Reason = "validation"
	ReasonOverlap             Reason = "overlap"
	ReasonOutsideWorkingHours Reason = "outside_working_hours"
	ReasonPolicyViolation     Reason = "policy_violation"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrOverlap             = errors.New("slot overlaps an existing appointment")
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")
	ErrPolicyViolation     = errors.New("cancellation window has passed")
)

var sentinels = map[Reason]error{
	ReasonValidation:          ErrValidation,
	ReasonOverlap:             ErrOverlap,
	ReasonOutsideWorkingHours: ErrOutsideWorkingHours,
	ReasonPolicyViolation:     ErrPolicyViolation,
}

// Rejection is returned whenever the engine refuses an input. It unwraps to
// the sentinel of its Reason so callers can use errors.Is.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	if r.Message != "" {
		return r.Message
	}

	return sentinels[r.Reason].Error()
}

func (r *Rejection) Unwrap() error {
	return sentinels[r.Reason]
}

func reject(reason Reason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}

// ReasonOf extracts the rejection reason from err, if any.
func ReasonOf(err error) (Reason, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Reason, true
	}

	return "", false
}
