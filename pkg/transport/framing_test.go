package transport

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/noos-go/iio-demo/pkg/log"
)

func TestFrameWriterReader(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"single byte", []byte{0x42}},
		{"binary data", []byte{0x00, 0xFF, 0x7F, 0x80}},
		{"region sized", bytes.Repeat([]byte("x"), 10000)},
		{"max size", bytes.Repeat([]byte("y"), DefaultMaxMessageSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := NewFrameWriter(buf).WriteFrame(tt.payload); err != nil {
				t.Fatalf("WriteFrame: %v", err)
			}
			if buf.Len() != FrameSize(len(tt.payload)) {
				t.Errorf("frame size = %d, want %d", buf.Len(), FrameSize(len(tt.payload)))
			}
			got, err := NewFrameReader(buf).ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame: %v", err)
			}
			if !bytes.Equal(got, tt.payload) {
				t.Errorf("payload mismatch: got %d bytes, want %d", len(got), len(tt.payload))
			}
		})
	}
}

func TestFrameWriterRejects(t *testing.T) {
	w := NewFrameWriterWithMaxSize(io.Discard, 8)
	if err := w.WriteFrame(nil); !errors.Is(err, ErrMessageEmpty) {
		t.Errorf("empty: got %v", err)
	}
	if err := w.WriteFrame(make([]byte, 9)); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("too large: got %v", err)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }

func TestFrameWriterShortWrite(t *testing.T) {
	if err := NewFrameWriter(shortWriter{}).WriteFrame([]byte("abc")); !errors.Is(err, ErrShortWrite) {
		t.Errorf("got %v, want ErrShortWrite", err)
	}
}

func TestFrameReaderErrors(t *testing.T) {
	prefix := func(n uint32) []byte {
		b := make([]byte, LengthPrefixSize)
		binary.BigEndian.PutUint32(b, n)
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"eof", nil, io.EOF},
		{"truncated prefix", []byte{0, 0}, ErrFrameTruncated},
		{"zero length", prefix(0), ErrMessageEmpty},
		{"too large", prefix(DefaultMaxMessageSize + 1), ErrMessageTooLarge},
		{"truncated payload", append(prefix(10), 1, 2, 3), ErrFrameTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameReader(bytes.NewReader(tt.data)).ReadFrame()
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

// oneByteReader returns a single byte per Read, like a slow serial line.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func TestFrameReaderShortReads(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewFrameWriter(buf)
	_ = w.WriteFrame([]byte("first"))
	_ = w.WriteFrame([]byte("second"))

	r := NewFrameReader(oneByteReader{buf})
	for _, want := range []string{"first", "second"} {
		got, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

type capturingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *capturingLogger) Log(event log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *capturingLogger) Events() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

func TestFramerLogsBothDirections(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := &capturingLogger{}
	f := NewFramer(buf)
	f.SetLogger(logger, "conn-123")

	big := bytes.Repeat([]byte{0xAB}, MaxLogFrameDataSize+10)
	if err := f.WriteFrame(big); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if _, err := f.ReadFrame(); err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}

	events := logger.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Direction != log.DirectionOut || events[1].Direction != log.DirectionIn {
		t.Errorf("directions = %v, %v", events[0].Direction, events[1].Direction)
	}
	for _, e := range events {
		if e.ConnectionID != "conn-123" || e.Layer != log.LayerTransport {
			t.Errorf("unexpected event %+v", e)
		}
		if e.Frame == nil || !e.Frame.Truncated || len(e.Frame.Data) != MaxLogFrameDataSize {
			t.Fatalf("frame not truncated: %+v", e.Frame)
		}
		if e.Frame.Size != FrameSize(len(big)) {
			t.Errorf("Frame.Size = %d", e.Frame.Size)
		}
		if e.Timestamp.IsZero() {
			t.Error("timestamp not set")
		}
	}
}

func TestDialSendReceive(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		f := NewFramer(conn)
		data, err := f.ReadFrame()
		if err != nil {
			return
		}
		_ = f.WriteFrame(append([]byte("echo:"), data...))
	}()

	c, err := Dial(context.Background(), ln.Addr().String(), ClientConfig{})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if err := c.Send([]byte("ping")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got, err := c.Receive(5 * time.Second)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if string(got) != "echo:ping" {
		t.Errorf("got %q", got)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Send([]byte("x")); !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("Send after close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
