package adventure

import "fmt"

// ArgsParseError signals that a state constructor rejected its arguments:
// unknown item, unknown monster, missing parameter. The message is
// user-visible; the transition is aborted and the original state preserved.
type ArgsParseError struct {
	Reason string
}

func (e *ArgsParseError) Error() string {
	return e.Reason
}

// ArgsParseErrorf creates an ArgsParseError with a formatted reason.
func ArgsParseErrorf(format string, args ...any) *ArgsParseError {
	return &ArgsParseError{Reason: fmt.Sprintf(format, args...)}
}
