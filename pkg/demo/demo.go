package demo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// Attribute names.
const (
	AttrGlobal      = "dev_global_attr"
	AttrChannel     = "ch_attr"
	AttrBaseAddress = "base_address"
	AttrBufferSize  = "buffer_size"
)

// Device names used by the application.
const (
	OutputName = "demo_device_output"
	InputName  = "demo_device_input"
)

// Limits.
const (
	DefaultNumChannels = 4
	MaxChannels        = 16
	SampleSize         = 2
	TrianglePeriod     = 256
)

// Errors.
var (
	ErrNoName      = errors.New("device name required")
	ErrChannels    = errors.New("invalid channel count")
	ErrNoBuffer    = errors.New("backing buffer too small")
	ErrNoRegistry  = errors.New("registry required")
	ErrNoAttribute = errors.New("no such attribute")
	ErrNoChannel   = errors.New("no such channel")
	ErrReadOnly    = errors.New("attribute is read-only")
)

// Direction of a demo device's channels.
type Direction uint8

const (
	Output Direction = iota
	Input
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// InitParam configures a demo device.
type InitParam struct {
	Name        string
	NumChannels uint16

	// Base is the address of Buffer in the platform memory map.
	Base uint64

	// Buffer is the backing region. It must hold at least one scan.
	Buffer []byte

	Direction Direction

	// Registry is the server the device registers with. Required.
	Registry iio.Registry

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// Desc is a demo device descriptor.
type Desc struct {
	name      string
	channels  uint16
	base      uint64
	dir       Direction
	logger    *slog.Logger
	scanBytes int

	mu        sync.Mutex
	region    []byte
	scans     int
	cursor    int
	globalVal uint32
	chanVals  []uint32
}

// Init constructs a device on param.Buffer and registers it with
// param.Registry. A registration failure is returned unchanged.
func Init(param InitParam) (*Desc, error) {
	switch {
	case param.Name == "":
		return nil, status.Wrap(status.EINVAL, "iio_demo_init", ErrNoName)
	case param.NumChannels == 0 || param.NumChannels > MaxChannels:
		return nil, status.Wrap(status.EINVAL, "iio_demo_init", fmt.Errorf("%w: %d", ErrChannels, param.NumChannels))
	case param.Registry == nil:
		return nil, status.Wrap(status.EINVAL, "iio_demo_init", ErrNoRegistry)
	}

	scanBytes := int(param.NumChannels) * SampleSize
	if len(param.Buffer) < scanBytes {
		return nil, status.Wrap(status.ENOMEM, "iio_demo_init",
			fmt.Errorf("%w: %d < %d", ErrNoBuffer, len(param.Buffer), scanBytes))
	}

	d := &Desc{
		name:      param.Name,
		channels:  param.NumChannels,
		base:      param.Base,
		dir:       param.Direction,
		logger:    param.Logger,
		scanBytes: scanBytes,
		region:    param.Buffer,
		scans:     len(param.Buffer) / scanBytes,
		chanVals:  make([]uint32, param.NumChannels),
	}
	if d.dir == Input {
		d.fillTriangle()
	}

	if err := param.Registry.Register(d); err != nil {
		return nil, err
	}
	d.debugLog("demo device ready", "name", d.name, "direction", d.dir, "channels", d.channels, "scans", d.scans)
	return d, nil
}

// Name returns the device name.
func (d *Desc) Name() string { return d.name }

// NumChannels returns the channel count.
func (d *Desc) NumChannels() uint16 { return d.channels }

// Base returns the backing region's address.
func (d *Desc) Base() uint64 { return d.base }

// Direction returns the channel direction.
func (d *Desc) Direction() Direction { return d.dir }

// Scans returns the number of scans the backing region holds.
func (d *Desc) Scans() int { return d.scans }

// Sample returns the stored sample of channel ch in scan i.
func (d *Desc) Sample(i int, ch uint16) int16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sampleLocked(i%d.scans, ch)
}

// Info describes the device.
func (d *Desc) Info() wire.DeviceInfo {
	info := wire.DeviceInfo{
		Name:       d.name,
		Attributes: []string{AttrBaseAddress, AttrBufferSize, AttrGlobal},
		Channels:   make([]wire.ChannelInfo, d.channels),
	}
	for i := range info.Channels {
		info.Channels[i] = wire.ChannelInfo{
			ID:     "voltage" + strconv.Itoa(i),
			Index:  uint16(i),
			Output: d.dir == Output,
			Scan: wire.ScanFormat{
				Signed:      true,
				Bits:        16,
				StorageBits: 16,
			},
			Attributes: []string{AttrChannel},
		}
	}
	return info
}

// ReadAttr reads a device attribute (ch nil) or a channel attribute.
func (d *Desc) ReadAttr(ch *uint16, attr string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ch != nil {
		if err := d.checkChannel(*ch, attr); err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(d.chanVals[*ch]), 10), nil
	}
	switch attr {
	case AttrGlobal:
		return strconv.FormatUint(uint64(d.globalVal), 10), nil
	case AttrBaseAddress:
		return fmt.Sprintf("0x%08x", d.base), nil
	case AttrBufferSize:
		return strconv.Itoa(len(d.region)), nil
	}
	return "", status.Wrap(status.ENOENT, "read_attr", fmt.Errorf("%w: %s", ErrNoAttribute, attr))
}

// WriteAttr writes a device attribute (ch nil) or a channel attribute.
// Values are unsigned 32-bit integers in any base strconv accepts.
func (d *Desc) WriteAttr(ch *uint16, attr, value string) error {
	v, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return status.Wrap(status.EINVAL, "write_attr", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if ch != nil {
		if err := d.checkChannel(*ch, attr); err != nil {
			return err
		}
		d.chanVals[*ch] = uint32(v)
		return nil
	}
	switch attr {
	case AttrGlobal:
		d.globalVal = uint32(v)
		return nil
	case AttrBaseAddress, AttrBufferSize:
		return status.Wrap(status.EINVAL, "write_attr", fmt.Errorf("%w: %s", ErrReadOnly, attr))
	}
	return status.Wrap(status.ENOENT, "write_attr", fmt.Errorf("%w: %s", ErrNoAttribute, attr))
}

func (d *Desc) checkChannel(ch uint16, attr string) error {
	if ch >= d.channels {
		return status.Wrap(status.ENOENT, "channel_attr", fmt.Errorf("%w: %d", ErrNoChannel, ch))
	}
	if attr != AttrChannel {
		return status.Wrap(status.ENOENT, "channel_attr", fmt.Errorf("%w: %s", ErrNoAttribute, attr))
	}
	return nil
}

// ReadSamples replays stored scans from the cursor, wrapping at the end of
// the region, keeping only the channels in mask.
func (d *Desc) ReadSamples(mask uint32, p []byte) (int, error) {
	if d.dir != Input {
		return 0, status.New(status.ENOSYS, "read_samples")
	}
	chans, err := d.maskChannels(mask)
	if err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	out := len(chans) * SampleSize
	n := 0
	for ; n+out <= len(p); n += out {
		off := d.cursor * d.scanBytes
		for i, ch := range chans {
			src := off + int(ch)*SampleSize
			copy(p[n+i*SampleSize:], d.region[src:src+SampleSize])
		}
		d.cursor = (d.cursor + 1) % d.scans
	}
	return n, nil
}

// WriteSamples stores scans at the cursor, wrapping at the end of the
// region. Channels outside mask keep their previous values.
func (d *Desc) WriteSamples(mask uint32, p []byte) (int, error) {
	if d.dir != Output {
		return 0, status.New(status.ENOSYS, "write_samples")
	}
	chans, err := d.maskChannels(mask)
	if err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	in := len(chans) * SampleSize
	n := 0
	for ; n+in <= len(p); n += in {
		off := d.cursor * d.scanBytes
		for i, ch := range chans {
			dst := off + int(ch)*SampleSize
			copy(d.region[dst:dst+SampleSize], p[n+i*SampleSize:])
		}
		d.cursor = (d.cursor + 1) % d.scans
	}
	return n, nil
}

// Rewind moves the sample cursor back to the first scan.
func (d *Desc) Rewind() {
	d.mu.Lock()
	d.cursor = 0
	d.mu.Unlock()
}

func (d *Desc) maskChannels(mask uint32) ([]uint16, error) {
	if mask == 0 || (d.channels < 32 && mask>>d.channels != 0) {
		return nil, status.Wrap(status.EINVAL, "channel_mask", fmt.Errorf("%w: %#x", iio.ErrInvalidMask, mask))
	}
	chans := make([]uint16, 0, d.channels)
	for ch := uint16(0); ch < d.channels; ch++ {
		if mask&(1<<ch) != 0 {
			chans = append(chans, ch)
		}
	}
	return chans, nil
}

// fillTriangle writes a triangle wave into every channel, each channel a
// quarter period (for four channels) behind the previous one.
func (d *Desc) fillTriangle() {
	shift := TrianglePeriod / int(d.channels)
	for i := 0; i < d.scans; i++ {
		for ch := uint16(0); ch < d.channels; ch++ {
			v := Triangle(i + int(ch)*shift)
			off := i*d.scanBytes + int(ch)*SampleSize
			binary.LittleEndian.PutUint16(d.region[off:], uint16(v))
		}
	}
}

// Triangle returns the triangle wave value at step k. It rises from -16384
// to 16384 over half a period and falls back over the other half.
func Triangle(k int) int16 {
	k %= TrianglePeriod
	if k < 0 {
		k += TrianglePeriod
	}
	half := TrianglePeriod / 2
	if k > half {
		k = TrianglePeriod - k
	}
	return int16(k*(32768/half) - 16384)
}

func (d *Desc) sampleLocked(i int, ch uint16) int16 {
	off := i*d.scanBytes + int(ch)*SampleSize
	return int16(binary.LittleEndian.Uint16(d.region[off:]))
}

func (d *Desc) debugLog(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}

// Driver constructs demo devices with a shared logger.
type Driver struct {
	Logger *slog.Logger
}

// Init constructs a device. param.Logger takes precedence.
func (drv Driver) Init(param InitParam) (iio.Device, error) {
	if param.Logger == nil {
		param.Logger = drv.Logger
	}
	d, err := Init(param)
	if err != nil {
		return nil, err
	}
	return d, nil
}

var _ iio.Device = (*Desc)(nil)
