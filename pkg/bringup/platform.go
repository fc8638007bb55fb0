package bringup

import (
	"context"
	"io"
	"log/slog"

	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/irq"
	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/memory"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/power"
	"github.com/noos-go/iio-demo/pkg/uart"
)

// Power is the power and clock service.
type Power interface {
	Init() error
	SetClockDivider(clk power.Clock, div uint32) error
	InitComponents() error
}

// IRQ is the interrupt controller service.
type IRQ interface {
	Init(param irq.InitParam) (irq.Controller, error)
}

// UART is the serial transport service.
type UART interface {
	Init(ctx context.Context, param uart.InitParam) (uart.Port, error)
}

// App is a constructed exposition server.
type App interface {
	iio.Registry
	Run(ctx context.Context) int
}

// Server is the exposition server service.
type Server interface {
	Init(param iio.InitParam) (App, error)
}

// Devices is the virtual device service.
type Devices interface {
	Init(param demo.InitParam) (iio.Device, error)
}

// Memory maps the backing regions of the devices.
type Memory interface {
	Map(r platform.Region) ([]byte, error)
}

// Platform bundles the collaborators of one target. Power may be nil for
// profiles without a power subsystem.
type Platform struct {
	Power   Power
	IRQ     IRQ
	UART    UART
	Server  Server
	Devices Devices
	Memory  Memory
}

// Options configures the concrete collaborators built by Default.
type Options struct {
	// Line, when set, is the physical UART line.
	Line io.ReadWriteCloser

	// Address serves the UART line on a TCP listener. It overrides the
	// profile's host address.
	Address string

	// Logger is the optional logger for debug output.
	Logger *slog.Logger

	// ProtocolLogger receives frame and message events of the server.
	ProtocolLogger log.Logger
}

// Default returns the concrete collaborators for profile.
func Default(profile platform.Profile, opts Options) Platform {
	p := Platform{
		IRQ: irq.Driver{},
		UART: uart.Driver{Config: uart.Config{
			Line:    opts.Line,
			Address: opts.Address,
			Logger:  opts.Logger,
		}},
		Server:  serverDriver{iio.Driver{Logger: opts.Logger, ProtocolLogger: opts.ProtocolLogger}},
		Devices: demo.Driver{Logger: opts.Logger},
		Memory:  memory.ForProfile(profile),
	}
	if profile.HasPower {
		p.Power = power.NewSim()
	}
	return p
}

// serverDriver adapts iio.Driver to Server.
type serverDriver struct {
	drv iio.Driver
}

func (s serverDriver) Init(param iio.InitParam) (App, error) {
	app, err := s.drv.Init(param)
	if err != nil {
		return nil, err
	}
	return app, nil
}

var (
	_ IRQ     = irq.Driver{}
	_ UART    = uart.Driver{}
	_ Server  = serverDriver{}
	_ Devices = demo.Driver{}
	_ Memory  = (*memory.Bank)(nil)
	_ Power   = (*power.Sim)(nil)
	_ App     = (*iio.App)(nil)
)
