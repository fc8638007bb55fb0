package iio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/transport"
	"github.com/noos-go/iio-demo/pkg/version"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// Defaults.
const (
	DefaultName    = "iio-demo"
	DefaultTimeout = 1000 * time.Millisecond
)

// ErrNoServerOps is returned by Init without a capability to run on.
var ErrNoServerOps = errors.New("server ops required")

// InitParam configures an App.
type InitParam struct {
	// Ops is the transport capability. Required.
	Ops ServerOps

	// Name and Description appear in the context description.
	Name        string
	Description string

	// Attributes are extra context attributes (e.g. uart baud rate).
	Attributes map[string]string

	// MaxMessageSize bounds a single frame (default transport.DefaultMaxMessageSize).
	MaxMessageSize uint32

	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// ProtocolLogger receives frame and message events. Nil disables capture.
	ProtocolLogger log.Logger
}

// App is the exposition server. It is the device registry and, once Run is
// called, the sole user of its ServerOps.
type App struct {
	ops      ServerOps
	name     string
	desc     string
	attrs    map[string]string
	maxSize  uint32
	logger   *slog.Logger
	protoLog log.Logger

	mu      sync.Mutex
	devices []*entry
	timeout time.Duration
	running bool
}

// Init constructs an App bound to param.Ops.
func Init(param InitParam) (*App, error) {
	if param.Ops == nil {
		return nil, status.Wrap(status.EINVAL, "iio_app_init", ErrNoServerOps)
	}
	a := &App{
		ops:      param.Ops,
		name:     param.Name,
		desc:     param.Description,
		attrs:    make(map[string]string, len(param.Attributes)),
		maxSize:  param.MaxMessageSize,
		logger:   param.Logger,
		protoLog: param.ProtocolLogger,
		timeout:  DefaultTimeout,
	}
	if a.name == "" {
		a.name = DefaultName
	}
	if a.maxSize == 0 {
		a.maxSize = transport.DefaultMaxMessageSize
	}
	for k, v := range param.Attributes {
		a.attrs[k] = v
	}
	return a, nil
}

// Register adds a device. Names must be unique; devices get ids
// "iio:device0", "iio:device1"... in registration order.
func (a *App) Register(dev Device) error {
	if dev == nil {
		return status.New(status.EINVAL, "iio_register")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, e := range a.devices {
		if e.dev.Name() == dev.Name() {
			return status.Wrap(status.EEXIST, "iio_register", fmt.Errorf("%w: %s", ErrDuplicateDevice, dev.Name()))
		}
	}
	e := &entry{
		id:     "iio:device" + strconv.Itoa(len(a.devices)),
		dev:    dev,
		output: isOutput(dev.Info()),
	}
	a.devices = append(a.devices, e)
	a.debugLog("device registered", "id", e.id, "name", dev.Name())
	return nil
}

// Devices returns the registered device names in registration order.
func (a *App) Devices() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, len(a.devices))
	for i, e := range a.devices {
		names[i] = e.dev.Name()
	}
	return names
}

// Timeout returns the I/O timeout last requested by a client.
func (a *App) Timeout() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timeout
}

// Context builds the context description returned by PRINT.
func (a *App) Context() *wire.ContextInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := version.MustCurrent()
	ctx := &wire.ContextInfo{
		Name:        a.name,
		Description: a.desc,
		Version:     wire.Version{Major: v.Major, Minor: v.Minor, Git: version.Git},
		Attributes:  make(map[string]string, len(a.attrs)+1),
		Devices:     make([]wire.DeviceInfo, 0, len(a.devices)),
	}
	for k, v := range a.attrs {
		ctx.Attributes[k] = v
	}
	ctx.Attributes["timeout_ms"] = strconv.FormatInt(a.timeout.Milliseconds(), 10)
	for _, e := range a.devices {
		info := e.dev.Info()
		info.ID = e.id
		info.Name = e.dev.Name()
		sort.Strings(info.Attributes)
		ctx.Devices = append(ctx.Devices, info)
	}
	return ctx
}

// Run serves requests until ctx is cancelled (returning 0) or the transport
// fails (returning its negative status code). Run may be called once.
func (a *App) Run(ctx context.Context) int {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return int(status.EBUSY)
	}
	a.running = true
	a.mu.Unlock()

	connID := uuid.NewString()
	framer := transport.NewFramerWithMaxSize(a.ops, a.maxSize)
	framer.SetLogger(a.protoLog, connID)
	a.sessionEvent(connID, "", "running", "")
	a.debugLog("server running", "conn_id", connID, "devices", len(a.Devices()))

	type frameResult struct {
		data []byte
		err  error
	}
	frames := make(chan frameResult)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			data, err := framer.ReadFrame()
			select {
			case frames <- frameResult{data, err}:
			case <-done:
				return
			}
			if err != nil && fatalFrameError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.sessionEvent(connID, "running", "stopped", ctx.Err().Error())
			return int(status.Success)
		case fr := <-frames:
			if errors.Is(fr.err, transport.ErrLineReset) {
				// The peer changed; any partial frame went with it.
				a.sessionEvent(connID, "running", "running", "line reset")
				a.debugLog("line reset", "conn_id", connID)
				continue
			}
			if fr.err != nil && fatalFrameError(fr.err) {
				code := transportCode(fr.err)
				a.sessionEvent(connID, "running", "failed", fr.err.Error())
				log.Emit(a.protoLog, log.ErrorEvent(log.LayerTransport, "read_frame", fr.err.Error(), code))
				a.debugLog("transport failed", "error", fr.err, "code", code)
				return int(code)
			}

			received := time.Now()
			var resp *wire.Response
			var req *wire.Request
			if fr.err != nil {
				// An empty frame carries no request; answer and carry on.
				resp = wire.ErrorResponse(0, wire.StatusInvalid, fr.err.Error())
			} else {
				resp, req = a.handleFrame(connID, fr.data)
			}
			if err := a.reply(framer, connID, resp, req, received); err != nil {
				code := transportCode(err)
				a.sessionEvent(connID, "running", "failed", err.Error())
				a.debugLog("reply failed", "error", err, "code", code)
				return int(code)
			}
		}
	}
}

// fatalFrameError reports whether the stream can no longer be framed.
func fatalFrameError(err error) bool {
	return !errors.Is(err, transport.ErrMessageEmpty) && !errors.Is(err, transport.ErrLineReset)
}

// transportCode maps a transport error to a negative status code.
func transportCode(err error) int32 {
	if errors.Is(err, io.EOF) || errors.Is(err, transport.ErrFrameTruncated) {
		return status.EIO
	}
	if errors.Is(err, transport.ErrMessageTooLarge) {
		return status.ENOSPC
	}
	return status.Code(err)
}

func (a *App) handleFrame(connID string, data []byte) (*wire.Response, *wire.Request) {
	req, err := wire.DecodeRequest(data)
	if req == nil {
		return wire.ErrorResponse(0, wire.StatusInvalid, err.Error()), nil
	}
	a.messageEvent(connID, req, nil, nil)
	if err != nil {
		return wire.ErrorResponse(req.MessageID, wire.StatusInvalid, err.Error()), req
	}
	return a.HandleRequest(req), req
}

func (a *App) reply(framer *transport.Framer, connID string, resp *wire.Response, req *wire.Request, received time.Time) error {
	data, err := wire.EncodeResponse(resp)
	if err != nil {
		return err
	}
	if err := framer.WriteFrame(data); err != nil {
		return err
	}
	elapsed := time.Since(received)
	a.messageEvent(connID, req, resp, &elapsed)
	return nil
}

func (a *App) messageEvent(connID string, req *wire.Request, resp *wire.Response, elapsed *time.Duration) {
	if a.protoLog == nil {
		return
	}
	ev := log.Event{
		ConnectionID: connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		Message:      &log.MessageEvent{Type: log.MessageTypeRequest},
	}
	if req != nil {
		op := req.Operation
		ev.Device = req.Device
		ev.Message.MessageID = req.MessageID
		ev.Message.Operation = &op
		ev.Message.Attr = req.Attr
		ev.Message.Channel = req.Channel
	}
	if resp != nil {
		st := resp.Status
		ev.Direction = log.DirectionOut
		ev.Message.Type = log.MessageTypeResponse
		ev.Message.MessageID = resp.MessageID
		ev.Message.Status = &st
		ev.Message.ProcessingTime = elapsed
	}
	log.Emit(a.protoLog, ev)
}

func (a *App) sessionEvent(connID, oldState, newState, reason string) {
	log.Emit(a.protoLog, log.Event{
		ConnectionID: connID,
		Direction:    log.DirectionNone,
		Layer:        log.LayerServer,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

func (a *App) debugLog(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

var _ Registry = (*App)(nil)
