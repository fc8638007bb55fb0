package transport

import (
	"net"
	"time"
)

// FrameReadWriter provides length-prefixed frame I/O.
// Implemented by Framer.
type FrameReadWriter interface {
	// ReadFrame reads a length-prefixed frame.
	ReadFrame() ([]byte, error)

	// WriteFrame writes a length-prefixed frame.
	WriteFrame(data []byte) error
}

// ClientConnection is a client-side framed connection to a server.
// Implemented by ClientConn.
type ClientConnection interface {
	LocalAddr() net.Addr
	RemoteAddr() net.Addr

	// Send writes one frame.
	Send(data []byte) error

	// Receive reads one frame, waiting at most timeout (0 waits forever).
	Receive(timeout time.Duration) ([]byte, error)

	Close() error
}

var (
	_ FrameReadWriter  = (*Framer)(nil)
	_ ClientConnection = (*ClientConn)(nil)
)
