package fatal

import (
	"errors"
	"fmt"
)

// ErrFatal is the sentinel error for fatal reports. Recovered panic values
// raised by PanicAborter satisfy errors.Is(err, ErrFatal).
var ErrFatal = errors.New("fatal error")

// Error carries a fatal report as an error value. File and Line are empty
// when the report was raised without source attribution (production-mode
// FATAL and UNIMPLEMENTED sites).
type Error struct {
	File    string
	Line    int
	Message string
}

// Error returns the formatted fatal report.
func (e *Error) Error() string {
	if e == nil {
		return ErrFatal.Error()
	}

	if e.File == "" {
		return "fatal error: " + e.Message
	}

	return fmt.Sprintf("fatal error in %s, line %d: %s", e.File, e.Line, e.Message)
}

// Unwrap returns the sentinel fatal error for errors.Is.
func (e *Error) Unwrap() error {
	return ErrFatal
}
