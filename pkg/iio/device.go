package iio

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// Device errors.
var (
	ErrDuplicateDevice = errors.New("device already registered")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrBufferNotOpen   = errors.New("buffer not open")
	ErrBufferOpen      = errors.New("buffer already open")
	ErrInvalidMask     = errors.New("invalid channel mask")
)

// ServerOps is the byte-level capability the server runs on.
// Read blocks until at least one byte is available.
type ServerOps interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Device is a device exposed by the server.
type Device interface {
	// Name is the unique, human readable device name.
	Name() string

	// Info describes the device's channels and attributes. The ID field is
	// assigned by the server.
	Info() wire.DeviceInfo

	// ReadAttr reads a device attribute (ch nil) or a channel attribute.
	ReadAttr(ch *uint16, attr string) (string, error)

	// WriteAttr writes a device attribute (ch nil) or a channel attribute.
	WriteAttr(ch *uint16, attr, value string) error

	// ReadSamples fills p with interleaved samples of the channels in mask.
	ReadSamples(mask uint32, p []byte) (int, error)

	// WriteSamples consumes interleaved samples of the channels in mask.
	WriteSamples(mask uint32, p []byte) (int, error)
}

// Registry is the device management contract devices register through.
type Registry interface {
	Register(dev Device) error
}

// ScanSize returns the number of bytes one scan (one sample of every
// channel in mask) occupies for the described device.
func ScanSize(info wire.DeviceInfo, mask uint32) (int, error) {
	if mask == 0 {
		return 0, status.Wrap(status.EINVAL, "scan_size", ErrInvalidMask)
	}
	if n := len(info.Channels); n < 32 && mask>>uint(n) != 0 {
		return 0, status.Wrap(status.EINVAL, "scan_size", fmt.Errorf("%w: %#x for %d channels", ErrInvalidMask, mask, n))
	}
	size := 0
	for m := mask; m != 0; m &= m - 1 {
		idx := bits.TrailingZeros32(m)
		size += int(info.Channels[idx].Scan.StorageBits) / 8
	}
	return size, nil
}

// buffer is the server side state of an open device buffer.
type buffer struct {
	mask     uint32
	samples  uint32
	scanSize int
	cyclic   bool
	pushed   bool
}

// byteLimit returns the byte size of one full buffer.
func (b *buffer) byteLimit() int {
	return int(b.samples) * b.scanSize
}

// entry is a registered device.
type entry struct {
	id     string
	dev    Device
	output bool
	buf    *buffer
}

func isOutput(info wire.DeviceInfo) bool {
	for _, ch := range info.Channels {
		if ch.Output {
			return true
		}
	}
	return false
}
