package wire

// Operation represents an exposition protocol operation.
type Operation uint8

const (
	// OpVersion returns the server version.
	OpVersion Operation = 1

	// OpPrint returns the context description (devices, channels, attributes).
	OpPrint Operation = 2

	// OpRead reads a device or channel attribute.
	OpRead Operation = 3

	// OpWrite writes a device or channel attribute.
	OpWrite Operation = 4

	// OpOpen opens a device buffer for a channel mask and sample count.
	OpOpen Operation = 5

	// OpClose closes a device buffer.
	OpClose Operation = 6

	// OpReadBuf reads samples from an open input buffer.
	OpReadBuf Operation = 7

	// OpWriteBuf writes samples to an open output buffer.
	OpWriteBuf Operation = 8

	// OpTimeout sets the server side I/O timeout in milliseconds.
	OpTimeout Operation = 9
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpVersion:
		return "VERSION"
	case OpPrint:
		return "PRINT"
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpOpen:
		return "OPEN"
	case OpClose:
		return "CLOSE"
	case OpReadBuf:
		return "READBUF"
	case OpWriteBuf:
		return "WRITEBUF"
	case OpTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the operation is known.
func (o Operation) IsValid() bool {
	return o >= OpVersion && o <= OpTimeout
}

// NeedsDevice returns true if the operation addresses a device.
func (o Operation) NeedsDevice() bool {
	switch o {
	case OpRead, OpWrite, OpOpen, OpClose, OpReadBuf, OpWriteBuf:
		return true
	default:
		return false
	}
}
