package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/noos-go/iio-demo/pkg/log"
)

const (
	// LengthPrefixSize is the size of the big-endian length prefix.
	LengthPrefixSize = 4

	// DefaultMaxMessageSize bounds a single frame payload. It leaves room
	// for a full 10000 B device region plus the CBOR envelope.
	DefaultMaxMessageSize = 16384

	// MaxLogFrameDataSize caps the bytes copied into a frame event.
	MaxLogFrameDataSize = 512
)

var (
	// ErrMessageTooLarge indicates the payload exceeds the maximum size.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMessageEmpty indicates a zero-length payload.
	ErrMessageEmpty = errors.New("message is empty")

	// ErrFrameTruncated indicates the stream ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrShortWrite indicates the line accepted fewer bytes than offered.
	ErrShortWrite = errors.New("short write")

	// ErrLineReset is returned by a line when its peer changed. Bytes of a
	// partially read frame are gone; the next frame starts fresh.
	ErrLineReset = errors.New("line reset")
)

// frameTap emits frame events for one direction of a stream.
type frameTap struct {
	logger log.Logger
	connID string
}

func (t *frameTap) emit(payload []byte, dir log.Direction) {
	if t.logger == nil {
		return
	}
	data := payload
	truncated := false
	if len(data) > MaxLogFrameDataSize {
		data = data[:MaxLogFrameDataSize]
		truncated = true
	}
	log.Emit(t.logger, log.Event{
		ConnectionID: t.connID,
		Direction:    dir,
		Layer:        log.LayerTransport,
		Category:     log.CategoryMessage,
		Frame: &log.FrameEvent{
			Size:      FrameSize(len(payload)),
			Data:      append([]byte(nil), data...),
			Truncated: truncated,
		},
	})
}

// FrameWriter writes length-prefixed frames.
type FrameWriter struct {
	w              io.Writer
	maxMessageSize uint32
	mu             sync.Mutex
	tap            frameTap
}

// NewFrameWriter returns a FrameWriter with DefaultMaxMessageSize.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return NewFrameWriterWithMaxSize(w, DefaultMaxMessageSize)
}

// NewFrameWriterWithMaxSize returns a FrameWriter bounded by maxSize.
func NewFrameWriterWithMaxSize(w io.Writer, maxSize uint32) *FrameWriter {
	return &FrameWriter{w: w, maxMessageSize: maxSize}
}

// SetLogger configures frame event capture. Pass nil to disable.
func (fw *FrameWriter) SetLogger(logger log.Logger, connID string) {
	fw.tap = frameTap{logger: logger, connID: connID}
}

// WriteFrame writes prefix and payload as a single line write, so a
// serial peer never sees a prefix without its payload. Safe for
// concurrent use.
func (fw *FrameWriter) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrMessageEmpty
	}
	if uint32(len(data)) > fw.maxMessageSize {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(data), fw.maxMessageSize)
	}

	frame := make([]byte, FrameSize(len(data)))
	binary.BigEndian.PutUint32(frame, uint32(len(data)))
	copy(frame[LengthPrefixSize:], data)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	n, err := fw.w.Write(frame)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("%w: %d of %d", ErrShortWrite, n, len(frame))
	}
	fw.tap.emit(data, log.DirectionOut)
	return nil
}

// FrameReader reads length-prefixed frames.
type FrameReader struct {
	r              io.Reader
	maxMessageSize uint32
	lengthBuf      [LengthPrefixSize]byte
	tap            frameTap
}

// NewFrameReader returns a FrameReader with DefaultMaxMessageSize.
func NewFrameReader(r io.Reader) *FrameReader {
	return NewFrameReaderWithMaxSize(r, DefaultMaxMessageSize)
}

// NewFrameReaderWithMaxSize returns a FrameReader bounded by maxSize.
func NewFrameReaderWithMaxSize(r io.Reader, maxSize uint32) *FrameReader {
	return &FrameReader{r: r, maxMessageSize: maxSize}
}

// SetLogger configures frame event capture. Pass nil to disable.
func (fr *FrameReader) SetLogger(logger log.Logger, connID string) {
	fr.tap = frameTap{logger: logger, connID: connID}
}

// SetMaxMessageSize updates the maximum payload size.
func (fr *FrameReader) SetMaxMessageSize(size uint32) {
	fr.maxMessageSize = size
}

// ReadFrame reads one frame and returns its payload. A clean end of stream
// between frames returns io.EOF.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.lengthBuf[:]); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return nil, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("read length prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(fr.lengthBuf[:])
	if length == 0 {
		return nil, ErrMessageEmpty
	}
	if length > fr.maxMessageSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, length, fr.maxMessageSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("read payload: %w", err)
	}

	fr.tap.emit(payload, log.DirectionIn)
	return payload, nil
}

// Framer combines frame reading and writing over one stream.
type Framer struct {
	*FrameReader
	*FrameWriter
}

// NewFramer returns a Framer with DefaultMaxMessageSize.
func NewFramer(rw io.ReadWriter) *Framer {
	return NewFramerWithMaxSize(rw, DefaultMaxMessageSize)
}

// NewFramerWithMaxSize returns a Framer bounded by maxSize.
func NewFramerWithMaxSize(rw io.ReadWriter, maxSize uint32) *Framer {
	return &Framer{
		FrameReader: NewFrameReaderWithMaxSize(rw, maxSize),
		FrameWriter: NewFrameWriterWithMaxSize(rw, maxSize),
	}
}

// SetLogger configures frame event capture in both directions.
func (f *Framer) SetLogger(logger log.Logger, connID string) {
	f.FrameReader.SetLogger(logger, connID)
	f.FrameWriter.SetLogger(logger, connID)
}

// FrameSize returns the on-line size of a frame carrying payloadSize bytes.
func FrameSize(payloadSize int) int {
	return LengthPrefixSize + payloadSize
}
