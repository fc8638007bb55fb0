package wire

import "github.com/noos-go/iio-demo/pkg/status"

// Status is a response status: 0 on success, a negative errno otherwise.
type Status int32

// Response statuses.
const (
	StatusSuccess      = Status(status.Success)
	StatusInvalid      = Status(status.EINVAL)
	StatusNoDevice     = Status(status.ENODEV)
	StatusNoEntry      = Status(status.ENOENT)
	StatusBusy         = Status(status.EBUSY)
	StatusIO           = Status(status.EIO)
	StatusTimeout      = Status(status.ETIMEDOUT)
	StatusNotSupported = Status(status.ENOSYS)
)

// StatusFromError maps an error to a response status.
func StatusFromError(err error) Status {
	return Status(status.Code(err))
}

// String returns the status name.
func (s Status) String() string {
	return status.Name(int32(s))
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}
