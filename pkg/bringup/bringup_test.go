package bringup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/bringup"
	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/power"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/uart"
)

func mustProfile(t *testing.T, name string) platform.Profile {
	t.Helper()
	p, err := platform.Lookup(name)
	require.NoError(t, err)
	return p
}

var fullSequence = []string{
	"power.init",
	"power.clock.HCLK",
	"power.clock.PCLK",
	"power.components",
	"irq.init",
	"irq.enable",
	"uart.init",
	"server.init",
	"device." + demo.OutputName,
	"device." + demo.InputName,
	"run",
}

func TestAllStagesSucceed(t *testing.T) {
	fp := newFakePlatform("", 0)
	fp.server.app.code = 0
	events := &recordingLogger{}

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:        mustProfile(t, platform.ProfileADuCM),
		Platform:       fp.platform(),
		ProtocolLogger: events,
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, fullSequence, fp.rec.calls)
	assert.Equal(t, 1, fp.server.app.runs, "run handoff invoked exactly once")
	assert.Equal(t, []string{demo.OutputName, demo.InputName}, fp.server.app.registered)
	assert.Equal(t, uint32(1), fp.power.dividers[power.ClockHCLK])
	assert.Equal(t, uint32(1), fp.power.dividers[power.ClockPCLK])
	assert.Equal(t, []string{
		"power", "irq_init", "irq_enable", "uart_init", "iio_app_init",
		"output_device", "input_device", "run", "returned",
	}, events.stages())
}

func TestRunReturnsServerStatus(t *testing.T) {
	fp := newFakePlatform("", 0)
	fp.server.app.code = -110

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileXilinxPS),
		Platform: fp.platform(),
	})
	assert.Equal(t, -110, code)
	assert.Equal(t, 1, fp.server.app.runs)
}

func TestFailureAtEachStage(t *testing.T) {
	stages := map[string]bringup.Stage{
		"power.init":                bringup.StagePower,
		"power.clock.HCLK":          bringup.StagePower,
		"power.clock.PCLK":          bringup.StagePower,
		"power.components":          bringup.StagePower,
		"irq.init":                  bringup.StageIRQInit,
		"irq.enable":                bringup.StageIRQEnable,
		"uart.init":                 bringup.StageTransport,
		"server.init":               bringup.StageServer,
		"device." + demo.OutputName: bringup.StageOutputDevice,
		"device." + demo.InputName:  bringup.StageInputDevice,
	}

	for i, step := range fullSequence {
		t.Run(step, func(t *testing.T) {
			code := int32(-(i + 2))
			fp := newFakePlatform(step, code)
			cfg := bringup.Config{
				Profile:  mustProfile(t, platform.ProfileADuCM),
				Platform: fp.platform(),
			}

			got := bringup.Run(context.Background(), cfg)

			assert.Equal(t, int(code), got, "injected code is the result")
			assert.Equal(t, fullSequence[:i+1], fp.rec.calls, "nothing after the failing step runs")

			if step == "run" {
				return
			}
			fp2 := newFakePlatform(step, code)
			cfg.Platform = fp2.platform()
			sys, err := bringup.Boot(context.Background(), cfg)
			assert.Nil(t, sys)
			var f *bringup.Failure
			require.True(t, errors.As(err, &f))
			assert.Equal(t, stages[step], f.Stage)
			assert.Equal(t, code, f.Code)
			assert.Equal(t, int(code), bringup.ExitStatus(err))
		})
	}
}

func TestPowerFailureLeavesLaterStagesUntouched(t *testing.T) {
	fp := newFakePlatform("power.init", -1)

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileADuCM),
		Platform: fp.platform(),
	})

	assert.Equal(t, -1, code)
	assert.Equal(t, []string{"power.init"}, fp.rec.calls)
	assert.Empty(t, fp.memory.mapped)
	assert.Empty(t, fp.devices.params)
	assert.Zero(t, fp.server.app.runs)
}

func TestGlobalEnableFailureSkipsTransport(t *testing.T) {
	fp := newFakePlatform("irq.enable", -2)

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileXilinxPL),
		Platform: fp.platform(),
	})

	assert.Equal(t, -2, code)
	assert.Equal(t, []string{"irq.init", "irq.enable"}, fp.rec.calls)
	assert.Zero(t, fp.uart.param.BaudRate, "uart init never invoked")
}

func TestProfilesWithoutPowerSkipIt(t *testing.T) {
	for _, name := range []string{platform.ProfileXilinxPS, platform.ProfileXilinxPL, platform.ProfileHost} {
		t.Run(name, func(t *testing.T) {
			fp := newFakePlatform("", 0)
			code := bringup.Run(context.Background(), bringup.Config{
				Profile:  mustProfile(t, name),
				Platform: fp.platform(),
			})
			assert.Equal(t, 0, code)
			assert.Equal(t, fullSequence[4:], fp.rec.calls)
		})
	}
}

func TestMissingPowerServiceIsAFailure(t *testing.T) {
	fp := newFakePlatform("", 0)
	p := fp.platform()
	p.Power = nil

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileADuCM),
		Platform: p,
	})
	assert.Equal(t, int(status.ENODEV), code)
	assert.Empty(t, fp.rec.calls)
}

func TestTransportGetsTheEnabledController(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, fp *fakePlatform)
	}{
		{platform.ProfileXilinxPS, func(t *testing.T, fp *fakePlatform) {
			x, ok := fp.uart.param.Extra.(*uart.XilinxExtra)
			require.True(t, ok)
			assert.Same(t, fp.irq.ctrl, x.IRQ)
			assert.Equal(t, platform.UARTPS, x.Type)
			assert.Equal(t, uint32(82), x.IRQID)
		}},
		{platform.ProfileHost, func(t *testing.T, fp *fakePlatform) {
			x, ok := fp.uart.param.Extra.(*uart.HostExtra)
			require.True(t, ok)
			assert.Same(t, fp.irq.ctrl, x.IRQ)
			assert.Equal(t, platform.DefaultHostAddress, x.Address)
		}},
		{platform.ProfileADuCM, func(t *testing.T, fp *fakePlatform) {
			x, ok := fp.uart.param.Extra.(*uart.ADuCMExtra)
			require.True(t, ok)
			assert.Equal(t, platform.ParityNone, x.Parity)
			assert.Equal(t, uint8(1), x.StopBits)
			assert.Equal(t, uint8(8), x.WordLength)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			fp := newFakePlatform("", 0)
			prof := mustProfile(t, tt.profile)
			sys, err := bringup.Boot(context.Background(), bringup.Config{Profile: prof, Platform: fp.platform()})
			require.NoError(t, err)
			assert.Same(t, fp.irq.ctrl, sys.IRQ)
			assert.Equal(t, prof.UART.BaudRate, fp.uart.param.BaudRate)
			tt.check(t, fp)
		})
	}
}

func TestServerOpsForwardBytesUnchanged(t *testing.T) {
	fp := newFakePlatform("", 0)
	fp.uart.port.input = []byte{0x00, 0x00, 0x00, 0x02, 0xA1, 0x01}

	sys, err := bringup.Boot(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileHost),
		Platform: fp.platform(),
	})
	require.NoError(t, err)

	assert.Same(t, sys.Ops, fp.server.param.Ops, "server built on the capability")
	assert.Same(t, fp.uart.port, sys.Ops.Port())

	payload := []byte{0xDE, 0xAD, 0x00, 0xBE, 0xEF}
	n, err := sys.Ops.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, fp.uart.port.written)

	buf := make([]byte, 16)
	n, err = sys.Ops.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 0xA1, 0x01}, buf[:n])
}

func TestDevicesUseProfileRegions(t *testing.T) {
	fp := newFakePlatform("", 0)
	prof := mustProfile(t, platform.ProfileXilinxPS)

	sys, err := bringup.Boot(context.Background(), bringup.Config{Profile: prof, Platform: fp.platform()})
	require.NoError(t, err)

	assert.Equal(t, []platform.Region{prof.Output, prof.Input}, fp.memory.mapped)
	require.Len(t, fp.devices.params, 2)
	out, in := fp.devices.params[0], fp.devices.params[1]
	assert.Equal(t, demo.OutputName, out.Name)
	assert.Equal(t, demo.Output, out.Direction)
	assert.Equal(t, uint64(0x0A000000), out.Base)
	assert.Equal(t, uint16(4), out.NumChannels)
	assert.Len(t, out.Buffer, 10000)
	assert.Equal(t, demo.InputName, in.Name)
	assert.Equal(t, demo.Input, in.Direction)
	assert.Equal(t, uint64(0x00800000), in.Base)
	assert.Same(t, fp.server.app, out.Registry, "devices register with the composed server")
	assert.Equal(t, demo.OutputName, sys.Output.Name())
	assert.Equal(t, demo.InputName, sys.Input.Name())
}

func TestNilDescriptorIsAFailure(t *testing.T) {
	tests := []struct {
		name string
		irq  bringup.IRQ
	}{
		{"untyped nil", nilIRQ{}},
		{"typed nil", typedNilIRQ{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := newFakePlatform("", 0)
			p := fp.platform()
			p.IRQ = tt.irq

			_, err := bringup.Boot(context.Background(), bringup.Config{
				Profile:  mustProfile(t, platform.ProfileHost),
				Platform: p,
			})
			require.ErrorIs(t, err, bringup.ErrNoDescriptor)
			assert.Equal(t, int(status.Failure), bringup.ExitStatus(err))
			assert.Empty(t, fp.rec.calls)
		})
	}
}

func TestFailureEvents(t *testing.T) {
	fp := newFakePlatform("uart.init", status.ENODEV)
	events := &recordingLogger{}

	bringup.Run(context.Background(), bringup.Config{
		Profile:        mustProfile(t, platform.ProfileHost),
		Platform:       fp.platform(),
		ProtocolLogger: events,
	})

	assert.Equal(t, []string{"power", "irq_init", "irq_enable", "uart_init", "failed"}, events.stages())
	var errEv *log.ErrorEventData
	for _, ev := range events.events {
		if ev.Error != nil {
			errEv = ev.Error
		}
	}
	require.NotNil(t, errEv)
	assert.Equal(t, "uart_init", errEv.Context)
	assert.Equal(t, status.ENODEV, *errEv.Code)
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, bringup.ExitStatus(nil))
	assert.Equal(t, -22, bringup.ExitStatus(status.New(status.EINVAL, "x")))
	assert.Equal(t, -1, bringup.ExitStatus(errors.New("plain")))
	f := &bringup.Failure{Stage: bringup.StageServer, Code: -12, Err: errors.New("oom")}
	assert.Equal(t, -12, bringup.ExitStatus(f))
	assert.Contains(t, f.Error(), "iio_app_init")
}

func TestStageNames(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range bringup.Stages {
		seen[s.String()] = true
	}
	assert.Len(t, seen, len(bringup.Stages))
	assert.Equal(t, "stage(99)", bringup.Stage(99).String())
}
