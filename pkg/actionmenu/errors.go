package actionmenu

import (
	"errors"
	"fmt"
)

// InfrastructureError represents a host-level failure (display unavailable,
// font missing, input device gone). The builder and session APIs never
// produce these; they come from the platform host, and the consuming
// application usually cannot recover from them at the domain level.
type InfrastructureError struct {
	Op  string // operation that failed, e.g. "open_display", "load_font"
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("actionmenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("actionmenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks whether an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
