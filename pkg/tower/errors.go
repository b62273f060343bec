package tower

import "fmt"

// InvalidOperationError signals a runtime contract violation: using an item
// that cannot be used, adding to a full inventory, starting a battle twice.
// The message is user-visible; the engine surfaces it as a single response
// line and preserves state.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

// InvalidOperationf creates an InvalidOperationError with a formatted reason.
func InvalidOperationf(format string, args ...any) *InvalidOperationError {
	return &InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}
