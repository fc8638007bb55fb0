package iio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/version"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// Client errors.
var (
	ErrClientClosed        = errors.New("client is closed")
	ErrIncompatibleVersion = errors.New("incompatible protocol version")
)

// Conn is the framed connection a Client talks over.
// transport.ClientConn implements it.
type Conn interface {
	Send(data []byte) error
	Receive(timeout time.Duration) ([]byte, error)
	Close() error
}

// Client issues requests to an exposition server. One request is in flight
// at a time; responses to abandoned requests are skipped by message id.
type Client struct {
	mu        sync.Mutex
	conn      Conn
	timeout   time.Duration
	nextMsgID uint32
	closed    bool
}

// NewClient returns a client over conn.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn, timeout: 5 * time.Second}
}

// SetTimeout sets the per-request response timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

// Close closes the client and its connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

func (c *Client) roundTrip(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	c.nextMsgID++
	if c.nextMsgID == 0 {
		c.nextMsgID = 1
	}
	req.MessageID = c.nextMsgID

	data, err := wire.EncodeRequest(req)
	if err != nil {
		return nil, err
	}
	if err := c.conn.Send(data); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wait := time.Until(deadline)
		if wait <= 0 {
			return nil, status.Wrap(status.ETIMEDOUT, req.Operation.String(), context.DeadlineExceeded)
		}
		frame, err := c.conn.Receive(wait)
		if err != nil {
			return nil, err
		}
		resp, err := wire.DecodeResponse(frame)
		if err != nil {
			return nil, err
		}
		if resp.MessageID == req.MessageID {
			return resp, nil
		}
	}
}

// do sends req and converts a failed status into an error.
func (c *Client) do(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return resp, statusError(req.Operation, resp)
	}
	return resp, nil
}

func statusError(op wire.Operation, resp *wire.Response) error {
	code := int32(resp.Status)
	if code >= 0 {
		code = status.Failure
	}
	if resp.Value != "" {
		return status.Wrap(code, op.String(), errors.New(resp.Value))
	}
	return status.New(code, op.String())
}

// Version returns the server version string and checks that it speaks a
// compatible protocol.
func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, &wire.Request{Operation: wire.OpVersion})
	if err != nil {
		return "", err
	}
	remote, err := version.Parse(resp.Value)
	if err != nil {
		return resp.Value, err
	}
	if !version.MustCurrent().Compatible(remote) {
		return resp.Value, fmt.Errorf("%w: server %s, client %s", ErrIncompatibleVersion, remote, version.Current)
	}
	return resp.Value, nil
}

// Print returns the context description.
func (c *Client) Print(ctx context.Context) (*wire.ContextInfo, error) {
	resp, err := c.do(ctx, &wire.Request{Operation: wire.OpPrint})
	if err != nil {
		return nil, err
	}
	if resp.Context == nil {
		return nil, fmt.Errorf("PRINT: empty context")
	}
	return resp.Context, nil
}

// ReadAttr reads a device attribute (ch nil) or a channel attribute.
func (c *Client) ReadAttr(ctx context.Context, device string, ch *uint16, attr string) (string, error) {
	resp, err := c.do(ctx, &wire.Request{Operation: wire.OpRead, Device: device, Channel: ch, Attr: attr})
	if err != nil {
		return "", err
	}
	return resp.Value, nil
}

// WriteAttr writes a device attribute (ch nil) or a channel attribute.
func (c *Client) WriteAttr(ctx context.Context, device string, ch *uint16, attr, value string) error {
	_, err := c.do(ctx, &wire.Request{Operation: wire.OpWrite, Device: device, Channel: ch, Attr: attr, Value: value})
	return err
}

// OpenBuffer opens a buffer of samples scans for the channels in mask.
func (c *Client) OpenBuffer(ctx context.Context, device string, mask, samples uint32, cyclic bool) error {
	_, err := c.do(ctx, &wire.Request{Operation: wire.OpOpen, Device: device, Mask: mask, Count: samples, Cyclic: cyclic})
	return err
}

// CloseBuffer closes the device's buffer.
func (c *Client) CloseBuffer(ctx context.Context, device string) error {
	_, err := c.do(ctx, &wire.Request{Operation: wire.OpClose, Device: device})
	return err
}

// ReadBuffer reads up to n bytes of samples.
func (c *Client) ReadBuffer(ctx context.Context, device string, n uint32) ([]byte, error) {
	resp, err := c.do(ctx, &wire.Request{Operation: wire.OpReadBuf, Device: device, Count: n})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// WriteBuffer pushes samples and returns the number of bytes accepted.
func (c *Client) WriteBuffer(ctx context.Context, device string, data []byte) (int, error) {
	resp, err := c.do(ctx, &wire.Request{Operation: wire.OpWriteBuf, Device: device, Data: data})
	if err != nil {
		return 0, err
	}
	return int(resp.Count), nil
}

// SetServerTimeout sets the server side I/O timeout.
func (c *Client) SetServerTimeout(ctx context.Context, timeout time.Duration) error {
	_, err := c.do(ctx, &wire.Request{Operation: wire.OpTimeout, Count: uint32(timeout.Milliseconds())})
	return err
}
