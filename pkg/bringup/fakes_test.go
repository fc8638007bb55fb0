package bringup_test

import (
	"context"
	"sync"

	"github.com/noos-go/iio-demo/pkg/bringup"
	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/irq"
	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/power"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/uart"
)

// recorder counts collaborator invocations in order and fails the named one.
type recorder struct {
	calls  []string
	failAt string
	code   int32
}

func (r *recorder) hit(name string) error {
	r.calls = append(r.calls, name)
	if name == r.failAt {
		return status.New(r.code, name)
	}
	return nil
}

type fakePower struct {
	r        *recorder
	dividers map[power.Clock]uint32
}

func (p *fakePower) Init() error { return p.r.hit("power.init") }

func (p *fakePower) SetClockDivider(clk power.Clock, div uint32) error {
	if p.dividers == nil {
		p.dividers = make(map[power.Clock]uint32)
	}
	p.dividers[clk] = div
	return p.r.hit("power.clock." + clk.String())
}

func (p *fakePower) InitComponents() error { return p.r.hit("power.components") }

type fakeController struct {
	r *recorder
}

func (c *fakeController) GlobalEnable() error                { return c.r.hit("irq.enable") }
func (c *fakeController) GlobalDisable() error               { return nil }
func (c *fakeController) Register(uint32, irq.Handler) error { return nil }
func (c *fakeController) Unregister(uint32) error            { return nil }
func (c *fakeController) Enable(uint32) error                { return nil }
func (c *fakeController) Disable(uint32) error               { return nil }
func (c *fakeController) Raise(uint32) error                 { return nil }

type fakeIRQ struct {
	r     *recorder
	ctrl  *fakeController
	param irq.InitParam
}

func (f *fakeIRQ) Init(param irq.InitParam) (irq.Controller, error) {
	f.param = param
	if err := f.r.hit("irq.init"); err != nil {
		return nil, err
	}
	return f.ctrl, nil
}

// capturePort records writes and serves reads from a fixed input.
type capturePort struct {
	mu      sync.Mutex
	written []byte
	input   []byte
}

func (p *capturePort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := copy(b, p.input)
	p.input = p.input[n:]
	return n, nil
}

func (p *capturePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.written = append(p.written, b...)
	return len(b), nil
}

type fakeUART struct {
	r     *recorder
	port  *capturePort
	param uart.InitParam
}

func (f *fakeUART) Init(_ context.Context, param uart.InitParam) (uart.Port, error) {
	f.param = param
	if err := f.r.hit("uart.init"); err != nil {
		return nil, err
	}
	return f.port, nil
}

type fakeApp struct {
	r          *recorder
	registered []string
	runs       int
	code       int
}

func (a *fakeApp) Register(dev iio.Device) error {
	a.registered = append(a.registered, dev.Name())
	return nil
}

func (a *fakeApp) Run(context.Context) int {
	a.runs++
	if err := a.r.hit("run"); err != nil {
		return int(status.Code(err))
	}
	return a.code
}

type fakeServer struct {
	r     *recorder
	app   *fakeApp
	param iio.InitParam
}

func (f *fakeServer) Init(param iio.InitParam) (bringup.App, error) {
	f.param = param
	if err := f.r.hit("server.init"); err != nil {
		return nil, err
	}
	return f.app, nil
}

type fakeDevices struct {
	r      *recorder
	params []demo.InitParam
}

func (f *fakeDevices) Init(param demo.InitParam) (iio.Device, error) {
	f.params = append(f.params, param)
	if err := f.r.hit("device." + param.Name); err != nil {
		return nil, err
	}
	return demo.Init(param)
}

type fakeMemory struct {
	mapped []platform.Region
}

func (m *fakeMemory) Map(r platform.Region) ([]byte, error) {
	m.mapped = append(m.mapped, r)
	return make([]byte, r.Size), nil
}

type fakePlatform struct {
	rec     *recorder
	power   *fakePower
	irq     *fakeIRQ
	uart    *fakeUART
	server  *fakeServer
	devices *fakeDevices
	memory  *fakeMemory
}

func newFakePlatform(failAt string, code int32) *fakePlatform {
	r := &recorder{failAt: failAt, code: code}
	return &fakePlatform{
		rec:     r,
		power:   &fakePower{r: r},
		irq:     &fakeIRQ{r: r, ctrl: &fakeController{r: r}},
		uart:    &fakeUART{r: r, port: &capturePort{}},
		server:  &fakeServer{r: r, app: &fakeApp{r: r}},
		devices: &fakeDevices{r: r},
		memory:  &fakeMemory{},
	}
}

func (f *fakePlatform) platform() bringup.Platform {
	return bringup.Platform{
		Power:   f.power,
		IRQ:     f.irq,
		UART:    f.uart,
		Server:  f.server,
		Devices: f.devices,
		Memory:  f.memory,
	}
}

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *recordingLogger) Log(ev log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *recordingLogger) stages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, ev := range l.events {
		if ev.StateChange != nil && ev.StateChange.Entity == log.StateEntityStage {
			out = append(out, ev.StateChange.NewState)
		}
	}
	return out
}

type nilIRQ struct{}

func (nilIRQ) Init(irq.InitParam) (irq.Controller, error) { return nil, nil }

// typedNilIRQ returns a nil *irq.Desc wrapped in a non-nil interface.
type typedNilIRQ struct{}

func (typedNilIRQ) Init(irq.InitParam) (irq.Controller, error) { return (*irq.Desc)(nil), nil }
