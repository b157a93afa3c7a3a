package fatal

import "fmt"

// Aborter terminates execution after a fatal report has been written.
//
// Implementations must not return. The Reporter backstops a misbehaving
// implementation by panicking itself, so the never-returns contract of Fatalf
// holds regardless.
type Aborter interface {
	// Abort receives the already-reported location and message. The
	// Reporter has written the banner and flushed logs before this call;
	// implementations only terminate.
	Abort(file string, line int, format string, args ...any)
}

// PanicAborter aborts by panicking with a *Error. It is the default: an
// unrecovered panic terminates the process with a stack trace, while tests
// can recover and inspect the report.
type PanicAborter struct{}

// Abort implements Aborter.
func (PanicAborter) Abort(file string, line int, format string, args ...any) {
	panic(&Error{
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}
