package status

import (
	"errors"
	"fmt"
)

// Generic status values.
const (
	// Success indicates the call completed.
	Success int32 = 0

	// Failure is the catch-all failure code.
	Failure int32 = -1
)

// Errno-style codes used by the exposition protocol and the drivers.
const (
	EIO       int32 = -5
	ENOMEM    int32 = -12
	EBUSY     int32 = -16
	EEXIST    int32 = -17
	ENODEV    int32 = -19
	EINVAL    int32 = -22
	ENOENT    int32 = -2
	ENOSPC    int32 = -28
	ENOSYS    int32 = -38
	ETIMEDOUT int32 = -110
)

// Error is an error carrying a negative status code.
type Error struct {
	// Code is the negative status code.
	Code int32

	// Op names the operation that failed (e.g. "uart_init").
	Op string

	// Err is the underlying cause, if any.
	Err error
}

// New returns an error carrying code for the named operation.
func New(code int32, op string) *Error {
	return &Error{Code: code, Op: op}
}

// Wrap returns an error carrying code that wraps err.
func Wrap(code int32, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	name := Name(e.Code)
	switch {
	case e.Op == "" && e.Err == nil:
		return fmt.Sprintf("status %d (%s)", e.Code, name)
	case e.Err == nil:
		return fmt.Sprintf("%s: status %d (%s)", e.Op, e.Code, name)
	case e.Op == "":
		return fmt.Sprintf("status %d (%s): %v", e.Code, name, e.Err)
	default:
		return fmt.Sprintf("%s: status %d (%s): %v", e.Op, e.Code, name, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code extracts the status code from err.
// A nil error is Success; an error without a code is Failure.
func Code(err error) int32 {
	if err == nil {
		return Success
	}
	var se *Error
	if errors.As(err, &se) && se.Code < 0 {
		return se.Code
	}
	return Failure
}

// Name returns a short name for a status code.
func Name(code int32) string {
	switch code {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case EIO:
		return "EIO"
	case ENOMEM:
		return "ENOMEM"
	case EBUSY:
		return "EBUSY"
	case EEXIST:
		return "EEXIST"
	case ENODEV:
		return "ENODEV"
	case EINVAL:
		return "EINVAL"
	case ENOENT:
		return "ENOENT"
	case ENOSPC:
		return "ENOSPC"
	case ENOSYS:
		return "ENOSYS"
	case ETIMEDOUT:
		return "ETIMEDOUT"
	default:
		if code < 0 {
			return "ERROR"
		}
		return "UNKNOWN"
	}
}
