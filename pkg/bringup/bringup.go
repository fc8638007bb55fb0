package bringup

import (
	"context"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/irq"
	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/power"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/uart"
)

// Config is the input of Boot and Run.
type Config struct {
	Profile  platform.Profile
	Platform Platform

	// Logger is the optional logger for stage progress.
	Logger *slog.Logger

	// ProtocolLogger receives stage transition events. It is also handed
	// to the server unless the Server collaborator has its own.
	ProtocolLogger log.Logger
}

// System holds the descriptors of a completed bring-up.
type System struct {
	Profile platform.Profile
	IRQ     irq.Controller
	Port    uart.Port
	Ops     *uart.ServerOps
	App     App
	Output  iio.Device
	Input   iio.Device
}

// sequencer tracks the current stage for logging.
type sequencer struct {
	cfg     *Config
	current string
}

func (s *sequencer) enter(stage Stage) {
	next := stage.String()
	log.Emit(s.cfg.ProtocolLogger, log.StageEvent(s.cfg.Profile.Name, s.current, next, ""))
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("bring-up stage", "stage", next, "profile", s.cfg.Profile.Name)
	}
	s.current = next
}

func (s *sequencer) fail(stage Stage, err error) *Failure {
	f := newFailure(stage, err)
	log.Emit(s.cfg.ProtocolLogger, log.ErrorEvent(log.LayerBringup, stage.String(), err.Error(), f.Code))
	log.Emit(s.cfg.ProtocolLogger, log.StageEvent(s.cfg.Profile.Name, s.current, "failed", err.Error()))
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("bring-up stage failed", "stage", stage.String(), "code", f.Code, "error", err)
	}
	return f
}

// Boot runs every stage up to, not including, the run handoff. The first
// failure is returned as a *Failure and nothing later is attempted.
func Boot(ctx context.Context, cfg Config) (*System, error) {
	seq := &sequencer{cfg: &cfg}
	p := cfg.Platform
	prof := cfg.Profile
	sys := &System{Profile: prof}

	seq.enter(StagePower)
	if err := initPower(prof, p.Power); err != nil {
		return nil, seq.fail(StagePower, err)
	}

	seq.enter(StageIRQInit)
	ctrl, err := p.IRQ.Init(irqParam(prof))
	if err == nil && missing(ctrl) {
		err = ErrNoDescriptor
	}
	if err != nil {
		return nil, seq.fail(StageIRQInit, err)
	}

	seq.enter(StageIRQEnable)
	if err := ctrl.GlobalEnable(); err != nil {
		return nil, seq.fail(StageIRQEnable, err)
	}
	sys.IRQ = ctrl

	seq.enter(StageTransport)
	port, err := p.UART.Init(ctx, uartParam(prof, ctrl))
	if err == nil && missing(port) {
		err = ErrNoDescriptor
	}
	if err != nil {
		return nil, seq.fail(StageTransport, err)
	}
	sys.Port = port

	seq.enter(StageServer)
	sys.Ops = uart.NewServerOps(port)
	app, err := p.Server.Init(serverParam(cfg, sys.Ops))
	if err == nil && missing(app) {
		err = ErrNoDescriptor
	}
	if err != nil {
		return nil, seq.fail(StageServer, err)
	}
	sys.App = app

	seq.enter(StageOutputDevice)
	out, err := initDevice(p, prof, prof.Output, demo.OutputName, demo.Output, app)
	if err != nil {
		return nil, seq.fail(StageOutputDevice, err)
	}
	sys.Output = out

	seq.enter(StageInputDevice)
	in, err := initDevice(p, prof, prof.Input, demo.InputName, demo.Input, app)
	if err != nil {
		return nil, seq.fail(StageInputDevice, err)
	}
	sys.Input = in

	if cfg.Logger != nil {
		cfg.Logger.Info("bring-up complete", "profile", prof.Name)
	}
	return sys, nil
}

// Run boots and hands control to the server. The result is the first
// failing stage's status code, or whatever the server's run loop returns.
func Run(ctx context.Context, cfg Config) int {
	sys, err := Boot(ctx, cfg)
	if err != nil {
		return ExitStatus(err)
	}
	return Handoff(ctx, cfg, sys)
}

// Handoff runs the server of a booted system until it returns.
func Handoff(ctx context.Context, cfg Config, sys *System) int {
	seq := &sequencer{cfg: &cfg, current: StageInputDevice.String()}
	seq.enter(StageRun)
	code := sys.App.Run(ctx)
	log.Emit(cfg.ProtocolLogger, log.StageEvent(cfg.Profile.Name, StageRun.String(), "returned", "status "+strconv.Itoa(code)))
	return code
}

// initPower performs power init, both clock dividers and the component
// init, in that order. Profiles without a power subsystem skip it.
func initPower(prof platform.Profile, p Power) error {
	if !prof.HasPower {
		return nil
	}
	if p == nil {
		return status.Wrap(status.ENODEV, "platform_init", ErrNoDescriptor)
	}
	if err := p.Init(); err != nil {
		return err
	}
	if err := p.SetClockDivider(power.ClockHCLK, 1); err != nil {
		return err
	}
	if err := p.SetClockDivider(power.ClockPCLK, 1); err != nil {
		return err
	}
	return p.InitComponents()
}

func irqParam(prof platform.Profile) irq.InitParam {
	param := irq.InitParam{
		ControllerID: prof.IRQ.ControllerID,
		Kind:         prof.IRQ.Kind,
	}
	if prof.Kind == platform.KindXilinx {
		param.Extra = &irq.XilinxExtra{Type: prof.IRQ.Kind}
	}
	return param
}

func uartParam(prof platform.Profile, ctrl irq.Controller) uart.InitParam {
	param := uart.InitParam{
		DeviceID: prof.UART.DeviceID,
		BaudRate: prof.UART.BaudRate,
	}
	switch prof.Kind {
	case platform.KindXilinx:
		param.Extra = &uart.XilinxExtra{Type: prof.UART.Kind, IRQID: prof.UART.IRQID, IRQ: ctrl}
	case platform.KindADuCM:
		param.Extra = &uart.ADuCMExtra{
			Parity:     prof.UART.Parity,
			StopBits:   prof.UART.StopBits,
			WordLength: prof.UART.WordLength,
		}
	default:
		param.Extra = &uart.HostExtra{Address: prof.UART.Address, IRQID: prof.UART.IRQID, IRQ: ctrl}
	}
	return param
}

func serverParam(cfg Config, ops *uart.ServerOps) iio.InitParam {
	prof := cfg.Profile
	return iio.InitParam{
		Ops:         ops,
		Description: prof.Name,
		Attributes: map[string]string{
			"platform":  prof.Kind.String(),
			"uart_baud": strconv.FormatUint(uint64(prof.UART.BaudRate), 10),
		},
		Logger:         cfg.Logger,
		ProtocolLogger: cfg.ProtocolLogger,
	}
}

func initDevice(p Platform, prof platform.Profile, region platform.Region, name string, dir demo.Direction, reg iio.Registry) (iio.Device, error) {
	buf, err := p.Memory.Map(region)
	if err != nil {
		return nil, err
	}
	dev, err := p.Devices.Init(demo.InitParam{
		Name:        name,
		NumChannels: uint16(prof.NumChannels),
		Base:        region.Base,
		Buffer:      buf,
		Direction:   dir,
		Registry:    reg,
	})
	if err == nil && missing(dev) {
		err = ErrNoDescriptor
	}
	return dev, err
}

// missing reports whether a returned descriptor is nil, including a nil
// pointer held in a non-nil interface.
func missing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
