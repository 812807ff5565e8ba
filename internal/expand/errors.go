package expand

import "fmt"

// ConfigError reports malformed, missing, or contradictory expansion inputs
// (e.g. an undefined variant referenced, or a technology with no applicable
// variant that is not declared exempt).
type ConfigError struct {
	Subject string // offending technology or variant id, if known
	Message string
}

func (e *ConfigError) Error() string {
	if e.Subject == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Message)
}

// BoundsError reports a share bound that is out of range or internally
// inconsistent (min > max, or outside [0,1]).
type BoundsError struct {
	Base string
	Min  float64
	Max  float64
	Err  error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bounds for %s: %v", e.Base, e.Err)
}

func (e *BoundsError) Unwrap() error { return e.Err }

// DuplicateIDError reports two distinct (base, variant) pairs resolving to the
// same composite identifier.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate composite id %q", e.ID)
}
