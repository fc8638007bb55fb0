package iio

import (
	"errors"
	"fmt"
	"time"

	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/version"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// responseOverhead is reserved for the CBOR envelope around READBUF data.
const responseOverhead = 64

// HandleRequest processes a decoded request and returns its response.
func (a *App) HandleRequest(req *wire.Request) *wire.Response {
	switch req.Operation {
	case wire.OpVersion:
		return a.handleVersion(req)
	case wire.OpPrint:
		return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess, Context: a.Context()}
	case wire.OpTimeout:
		return a.handleTimeout(req)
	}

	e, err := a.lookup(req.Device)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}

	switch req.Operation {
	case wire.OpRead:
		return a.handleRead(req, e)
	case wire.OpWrite:
		return a.handleWrite(req, e)
	case wire.OpOpen:
		return a.handleOpen(req, e)
	case wire.OpClose:
		return a.handleClose(req, e)
	case wire.OpReadBuf:
		return a.handleReadBuf(req, e)
	case wire.OpWriteBuf:
		return a.handleWriteBuf(req, e)
	default:
		return wire.ErrorResponse(req.MessageID, wire.StatusNotSupported, "unknown operation")
	}
}

func (a *App) handleVersion(req *wire.Request) *wire.Response {
	v := version.MustCurrent()
	return &wire.Response{
		MessageID: req.MessageID,
		Status:    wire.StatusSuccess,
		Value:     wire.Version{Major: v.Major, Minor: v.Minor, Git: version.Git}.String(),
	}
}

func (a *App) handleTimeout(req *wire.Request) *wire.Response {
	if req.Count == 0 {
		return wire.ErrorResponse(req.MessageID, wire.StatusInvalid, "timeout must be positive")
	}
	a.mu.Lock()
	a.timeout = time.Duration(req.Count) * time.Millisecond
	a.mu.Unlock()
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess}
}

func (a *App) handleRead(req *wire.Request, e *entry) *wire.Response {
	value, err := e.dev.ReadAttr(req.Channel, req.Attr)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess, Value: value}
}

func (a *App) handleWrite(req *wire.Request, e *entry) *wire.Response {
	if err := e.dev.WriteAttr(req.Channel, req.Attr, req.Value); err != nil {
		return errorFrom(req.MessageID, err)
	}
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess}
}

func (a *App) handleOpen(req *wire.Request, e *entry) *wire.Response {
	scan, err := ScanSize(e.dev.Info(), req.Mask)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if e.buf != nil {
		return errorFrom(req.MessageID, status.Wrap(status.EBUSY, "open", ErrBufferOpen))
	}
	if limit := int(req.Count) * scan; limit > int(a.maxSize)-responseOverhead {
		return errorFrom(req.MessageID, status.Wrap(status.EINVAL, "open",
			fmt.Errorf("buffer of %d bytes exceeds frame limit", limit)))
	}
	e.buf = &buffer{
		mask:     req.Mask,
		samples:  req.Count,
		scanSize: scan,
		cyclic:   req.Cyclic,
	}
	a.debugLog("buffer opened", "device", e.dev.Name(), "mask", req.Mask, "samples", req.Count)
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess}
}

func (a *App) handleClose(req *wire.Request, e *entry) *wire.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e.buf == nil {
		return errorFrom(req.MessageID, status.Wrap(status.EINVAL, "close", ErrBufferNotOpen))
	}
	e.buf = nil
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess}
}

func (a *App) handleReadBuf(req *wire.Request, e *entry) *wire.Response {
	if e.output {
		return wire.ErrorResponse(req.MessageID, wire.StatusNotSupported, "device has no input channels")
	}
	buf, err := a.openBuffer(e)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}

	n := int(req.Count)
	if limit := buf.byteLimit(); n > limit {
		n = limit
	}
	n -= n % buf.scanSize
	if n == 0 {
		return wire.ErrorResponse(req.MessageID, wire.StatusInvalid, "count smaller than one scan")
	}

	data := make([]byte, n)
	got, err := e.dev.ReadSamples(buf.mask, data)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess, Data: data[:got], Count: uint32(got)}
}

func (a *App) handleWriteBuf(req *wire.Request, e *entry) *wire.Response {
	if !e.output {
		return wire.ErrorResponse(req.MessageID, wire.StatusNotSupported, "device has no output channels")
	}
	buf, err := a.openBuffer(e)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}
	if buf.cyclic && buf.pushed {
		return errorFrom(req.MessageID, status.Wrap(status.EBUSY, "writebuf", errors.New("cyclic buffer already pushed")))
	}

	data := req.Data
	if limit := buf.byteLimit(); len(data) > limit {
		data = data[:limit]
	}
	data = data[:len(data)-len(data)%buf.scanSize]
	if len(data) == 0 {
		return wire.ErrorResponse(req.MessageID, wire.StatusInvalid, "data smaller than one scan")
	}

	n, err := e.dev.WriteSamples(buf.mask, data)
	if err != nil {
		return errorFrom(req.MessageID, err)
	}
	a.mu.Lock()
	buf.pushed = true
	a.mu.Unlock()
	return &wire.Response{MessageID: req.MessageID, Status: wire.StatusSuccess, Count: uint32(n)}
}

func (a *App) openBuffer(e *entry) (*buffer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e.buf == nil {
		return nil, status.Wrap(status.EINVAL, "buffer", ErrBufferNotOpen)
	}
	return e.buf, nil
}

// lookup finds a device by id or name.
func (a *App) lookup(idOrName string) (*entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.devices {
		if e.id == idOrName || e.dev.Name() == idOrName {
			return e, nil
		}
	}
	return nil, status.Wrap(status.ENODEV, "lookup", fmt.Errorf("%w: %q", ErrDeviceNotFound, idOrName))
}

func errorFrom(messageID uint32, err error) *wire.Response {
	return wire.ErrorResponse(messageID, wire.StatusFromError(err), err.Error())
}
