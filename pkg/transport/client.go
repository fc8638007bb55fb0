package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/noos-go/iio-demo/pkg/log"
)

// ErrConnectionClosed is returned by a closed ClientConn.
var ErrConnectionClosed = errors.New("connection closed")

// ClientConfig configures Dial.
type ClientConfig struct {
	// MaxMessageSize is the maximum frame payload (default DefaultMaxMessageSize).
	MaxMessageSize uint32

	// ConnectTimeout bounds the dial when ctx has no deadline (default 10s).
	ConnectTimeout time.Duration

	// ProtocolLogger receives frame events. Nil disables capture.
	ProtocolLogger log.Logger

	// ConnID tags captured events.
	ConnID string
}

// ClientConn is a framed TCP connection to an iio-demo server.
type ClientConn struct {
	conn    net.Conn
	framer  *Framer
	closeCh chan struct{}

	closeOnce sync.Once
	writeMu   sync.Mutex
	readMu    sync.Mutex
}

// Dial connects to address.
func Dial(ctx context.Context, address string, config ClientConfig) (*ClientConn, error) {
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = DefaultMaxMessageSize
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = 10 * time.Second
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.ConnectTimeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return NewClientConn(conn, config), nil
}

// NewClientConn wraps an established stream.
func NewClientConn(conn net.Conn, config ClientConfig) *ClientConn {
	if config.MaxMessageSize == 0 {
		config.MaxMessageSize = DefaultMaxMessageSize
	}
	framer := NewFramerWithMaxSize(conn, config.MaxMessageSize)
	framer.SetLogger(config.ProtocolLogger, config.ConnID)
	return &ClientConn{
		conn:    conn,
		framer:  framer,
		closeCh: make(chan struct{}),
	}
}

// LocalAddr returns the local network address.
func (c *ClientConn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address.
func (c *ClientConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Send writes one frame to the server.
func (c *ClientConn) Send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.closeCh:
		return ErrConnectionClosed
	default:
	}
	return c.framer.WriteFrame(data)
}

// Receive reads one frame from the server.
func (c *ClientConn) Receive(timeout time.Duration) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	select {
	case <-c.closeCh:
		return nil, ErrConnectionClosed
	default:
	}

	if timeout > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(timeout))
		defer func() { _ = c.conn.SetReadDeadline(time.Time{}) }()
	}
	return c.framer.ReadFrame()
}

// Close closes the connection. Safe to call more than once.
func (c *ClientConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		err = c.conn.Close()
	})
	return err
}
