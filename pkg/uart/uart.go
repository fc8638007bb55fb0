package uart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/noos-go/iio-demo/pkg/irq"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/transport"
)

// UART errors.
var (
	ErrClosed = errors.New("uart closed")
	ErrNoLine = errors.New("no physical line configured")
)

// SupportedBaudRates lists the rates accepted by Init.
var SupportedBaudRates = []uint32{9600, 19200, 38400, 57600, 115200, 230400, 460800, 921600}

// Port is an initialized serial channel.
type Port interface {
	// Read blocks until at least one byte is available.
	Read(p []byte) (int, error)

	// Write transmits all of p.
	Write(p []byte) (int, error)
}

// InitParam configures a UART.
type InitParam struct {
	DeviceID uint32
	BaudRate uint32

	// Extra is one of *XilinxExtra, *ADuCMExtra or *HostExtra.
	Extra any
}

// XilinxExtra configures a Zynq UART. The interrupt controller is required:
// reception is interrupt-driven.
type XilinxExtra struct {
	Type  platform.UARTKind
	IRQID uint32
	IRQ   irq.Controller
}

// ADuCMExtra configures the ADuCM UART line settings.
type ADuCMExtra struct {
	Parity     platform.Parity
	StopBits   uint8
	WordLength uint8
}

// HostExtra configures a host UART. IRQ is optional.
type HostExtra struct {
	// Address is the TCP listen address of the line.
	Address string

	IRQID uint32
	IRQ   irq.Controller
}

// Config holds driver level options that are not part of InitParam.
type Config struct {
	// Line, when set, is used as the physical line of every descriptor.
	Line io.ReadWriteCloser

	// Address attaches the line to a TCP listener. It overrides
	// HostExtra.Address and gives non-host profiles a line on a host.
	Address string

	// RxBufferSize is the receive ring capacity.
	// Default: DefaultRxBufferSize.
	RxBufferSize int

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// Desc is a UART descriptor.
type Desc struct {
	id   uint32
	baud uint32
	kind platform.UARTKind

	irq   irq.Controller
	irqID uint32

	rx     *ringBuffer
	notify chan struct{}
	space  chan struct{}

	mu       sync.Mutex
	conn     io.ReadWriteCloser
	listener net.Listener

	closed    chan struct{}
	closeOnce sync.Once

	txBytes atomic.Uint64
	rxBytes atomic.Uint64

	logger *slog.Logger
}

// Init initializes a UART. The line is served until ctx is cancelled or
// Close is called.
func Init(ctx context.Context, param InitParam, cfg Config) (*Desc, error) {
	if !supportedBaud(param.BaudRate) {
		return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("unsupported baud rate %d", param.BaudRate))
	}

	d := &Desc{
		id:     param.DeviceID,
		baud:   param.BaudRate,
		notify: make(chan struct{}, 1),
		space:  make(chan struct{}, 1),
		closed: make(chan struct{}),
		logger: cfg.Logger,
	}

	size := cfg.RxBufferSize
	if size <= 0 {
		size = DefaultRxBufferSize
	}
	d.rx = newRingBuffer(size)

	address := cfg.Address
	switch x := param.Extra.(type) {
	case *XilinxExtra:
		if x.Type != platform.UARTPS && x.Type != platform.UARTPL {
			return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("xilinx uart type %s", x.Type))
		}
		if x.IRQ == nil {
			return nil, status.Wrap(status.EINVAL, "uart_init", errors.New("xilinx uart requires an interrupt controller"))
		}
		d.kind = x.Type
		d.irq, d.irqID = x.IRQ, x.IRQID
	case *ADuCMExtra:
		if x.WordLength < 5 || x.WordLength > 8 {
			return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("word length %d", x.WordLength))
		}
		if x.StopBits < 1 || x.StopBits > 2 {
			return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("stop bits %d", x.StopBits))
		}
		if x.Parity > platform.ParityEven {
			return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("parity %d", x.Parity))
		}
		d.kind = platform.UARTADuCM
	case *HostExtra:
		d.kind = platform.UARTHost
		d.irq, d.irqID = x.IRQ, x.IRQID
		if address == "" {
			address = x.Address
		}
	default:
		return nil, status.Wrap(status.EINVAL, "uart_init", fmt.Errorf("unsupported extra %T", param.Extra))
	}

	if d.irq != nil {
		if err := d.irq.Register(d.irqID, d.handleInterrupt); err != nil {
			return nil, status.Wrap(status.Code(err), "uart_init", err)
		}
		if err := d.irq.Enable(d.irqID); err != nil {
			_ = d.irq.Unregister(d.irqID)
			return nil, status.Wrap(status.Code(err), "uart_init", err)
		}
	}

	switch {
	case cfg.Line != nil:
		d.conn = cfg.Line
		go d.serveLine(cfg.Line, true)
	case address != "":
		ln, err := net.Listen("tcp", address)
		if err != nil {
			d.releaseIRQ()
			return nil, status.Wrap(status.EIO, "uart_init", err)
		}
		d.listener = ln
		go d.acceptLoop(ln)
	default:
		d.releaseIRQ()
		return nil, status.Wrap(status.ENODEV, "uart_init", ErrNoLine)
	}

	go func() {
		select {
		case <-ctx.Done():
			_ = d.Close()
		case <-d.closed:
		}
	}()

	d.debugLog("uart initialized", "device_id", d.id, "baud", d.baud, "kind", d.kind.String(), "irq", d.irq != nil)
	return d, nil
}

// DeviceID returns the UART device id.
func (d *Desc) DeviceID() uint32 { return d.id }

// BaudRate returns the configured baud rate.
func (d *Desc) BaudRate() uint32 { return d.baud }

// Kind returns the UART variant.
func (d *Desc) Kind() platform.UARTKind { return d.kind }

// Addr returns the line listen address, or nil without a listener.
func (d *Desc) Addr() net.Addr {
	if d.listener == nil {
		return nil
	}
	return d.listener.Addr()
}

// Read blocks until received bytes are available and copies them into p.
// After a listener peer detaches, Read returns transport.ErrLineReset once
// before any byte of the next peer.
func (d *Desc) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, reset := d.rx.Get(p)
		if reset {
			return 0, transport.ErrLineReset
		}
		if n > 0 {
			d.freed()
			return n, nil
		}
		select {
		case <-d.notify:
		case <-d.closed:
			if n, _ := d.rx.Get(p); n > 0 {
				return n, nil
			}
			return 0, status.Wrap(status.EIO, "uart_read", ErrClosed)
		}
	}
}

// Write transmits p on the line. Without a connected peer, or while the
// reader has not yet seen a peer change, the bytes are shifted out onto an
// idle line and dropped.
func (d *Desc) Write(p []byte) (int, error) {
	select {
	case <-d.closed:
		return 0, status.Wrap(status.EIO, "uart_write", ErrClosed)
	default:
	}

	d.mu.Lock()
	conn := d.conn
	d.mu.Unlock()

	if conn == nil || d.rx.ResetPending() {
		d.txBytes.Add(uint64(len(p)))
		return len(p), nil
	}

	n, err := conn.Write(p)
	d.txBytes.Add(uint64(n))
	if err != nil {
		return n, status.Wrap(status.EIO, "uart_write", err)
	}
	return n, nil
}

// Close releases the line. Blocked readers return an error.
func (d *Desc) Close() error {
	d.closeOnce.Do(func() {
		close(d.closed)

		d.mu.Lock()
		conn, ln := d.conn, d.listener
		d.conn = nil
		d.mu.Unlock()

		if ln != nil {
			_ = ln.Close()
		}
		if conn != nil {
			_ = conn.Close()
		}
		d.releaseIRQ()
	})
	return nil
}

// Stats returns transferred byte counts and the number of received bytes
// discarded because their peer detached before they were read.
func (d *Desc) Stats() (rx, tx, discarded uint64) {
	return d.rxBytes.Load(), d.txBytes.Load(), d.rx.Discarded()
}

func (d *Desc) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			d.debugLog("uart listener stopped", "error", err)
			return
		}
		d.mu.Lock()
		select {
		case <-d.closed:
			d.mu.Unlock()
			_ = conn.Close()
			return
		default:
		}
		d.conn = conn
		d.mu.Unlock()

		d.debugLog("uart peer attached", "remote", conn.RemoteAddr().String())
		d.serveLine(conn, false)
		d.debugLog("uart peer detached", "remote", conn.RemoteAddr().String())
	}
}

// serveLine pumps received bytes into the rx ring until the line fails.
// A fixed line closes the UART when it ends. A listener peer detaches: its
// unread bytes are discarded and the reader is told about the boundary.
func (d *Desc) serveLine(conn io.ReadWriteCloser, fixed bool) {
	buf := make([]byte, 512)
	for {
		n, err := conn.Read(buf)
		if n > 0 && !d.receive(buf[:n]) {
			break
		}
		if err != nil {
			break
		}
	}

	if fixed {
		_ = d.Close()
		return
	}

	d.mu.Lock()
	if d.conn == conn {
		d.conn = nil
	}
	d.mu.Unlock()
	_ = conn.Close()

	d.rx.Reset()
	d.handleInterrupt()
}

// receive stores p in the rx ring, waiting for the reader to free space
// when the ring is full. It returns false if the UART closed first.
func (d *Desc) receive(p []byte) bool {
	for {
		n := d.rx.Put(p)
		if n > 0 {
			d.rxBytes.Add(uint64(n))
			d.raise()
		}
		p = p[n:]
		if len(p) == 0 {
			return true
		}
		select {
		case <-d.space:
		case <-d.closed:
			return false
		}
	}
}

// raise signals received data through the interrupt line, or directly
// without a controller.
func (d *Desc) raise() {
	if d.irq == nil {
		d.handleInterrupt()
		return
	}
	if err := d.irq.Raise(d.irqID); err != nil {
		d.debugLog("uart irq raise failed", "error", err)
	}
}

func (d *Desc) freed() {
	select {
	case d.space <- struct{}{}:
	default:
	}
}

// handleInterrupt is the UART receive interrupt service routine.
func (d *Desc) handleInterrupt() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

func (d *Desc) releaseIRQ() {
	if d.irq == nil {
		return
	}
	_ = d.irq.Disable(d.irqID)
	_ = d.irq.Unregister(d.irqID)
}

func (d *Desc) debugLog(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}

func supportedBaud(baud uint32) bool {
	for _, b := range SupportedBaudRates {
		if b == baud {
			return true
		}
	}
	return false
}

// Driver initializes UARTs with a fixed driver configuration.
type Driver struct {
	Config Config
}

// Init implements the transport service.
func (drv Driver) Init(ctx context.Context, param InitParam) (Port, error) {
	d, err := Init(ctx, param, drv.Config)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Compile-time interface satisfaction check.
var _ Port = (*Desc)(nil)
