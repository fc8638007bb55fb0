package bringup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/bringup"
	"github.com/noos-go/iio-demo/pkg/bringup/mocks"
	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/irq"
	irqmocks "github.com/noos-go/iio-demo/pkg/irq/mocks"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/power"
	"github.com/noos-go/iio-demo/pkg/status"
	"github.com/noos-go/iio-demo/pkg/uart"
)

type mockPlatform struct {
	power   *mocks.MockPower
	irq     *mocks.MockIRQ
	ctrl    *irqmocks.MockController
	uart    *mocks.MockUART
	server  *mocks.MockServer
	app     *mocks.MockApp
	devices *mocks.MockDevices
	memory  *mocks.MockMemory
}

func newMockPlatform(t *testing.T) *mockPlatform {
	return &mockPlatform{
		power:   mocks.NewMockPower(t),
		irq:     mocks.NewMockIRQ(t),
		ctrl:    irqmocks.NewMockController(t),
		uart:    mocks.NewMockUART(t),
		server:  mocks.NewMockServer(t),
		app:     mocks.NewMockApp(t),
		devices: mocks.NewMockDevices(t),
		memory:  mocks.NewMockMemory(t),
	}
}

func (m *mockPlatform) platform() bringup.Platform {
	return bringup.Platform{
		Power:   m.power,
		IRQ:     m.irq,
		UART:    m.uart,
		Server:  m.server,
		Devices: m.devices,
		Memory:  m.memory,
	}
}

func (m *mockPlatform) assertTransportUntouched(t *testing.T) {
	m.uart.AssertNotCalled(t, "Init", mock.Anything, mock.Anything)
	m.server.AssertNotCalled(t, "Init", mock.Anything)
	m.memory.AssertNotCalled(t, "Map", mock.Anything)
	m.devices.AssertNotCalled(t, "Init", mock.Anything)
	m.app.AssertNotCalled(t, "Run", mock.Anything)
}

func TestMockedPowerFailureStopsEverything(t *testing.T) {
	m := newMockPlatform(t)
	m.power.EXPECT().Init().Return(status.New(status.Failure, "pwr_init")).Once()

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileADuCM),
		Platform: m.platform(),
	})

	assert.Equal(t, -1, code)
	m.power.AssertNotCalled(t, "SetClockDivider", mock.Anything, mock.Anything)
	m.power.AssertNotCalled(t, "InitComponents")
	m.irq.AssertNotCalled(t, "Init", mock.Anything)
	m.assertTransportUntouched(t)
}

func TestMockedGlobalEnableFailure(t *testing.T) {
	m := newMockPlatform(t)
	m.irq.EXPECT().Init(mock.Anything).Return(m.ctrl, nil).Once()
	m.ctrl.EXPECT().GlobalEnable().Return(status.New(-2, "irq_global_enable")).Once()

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileXilinxPS),
		Platform: m.platform(),
	})

	assert.Equal(t, -2, code)
	m.assertTransportUntouched(t)
}

func TestMockedDeviceFailureSkipsRun(t *testing.T) {
	m := newMockPlatform(t)
	m.irq.EXPECT().Init(mock.Anything).Return(m.ctrl, nil).Once()
	m.ctrl.EXPECT().GlobalEnable().Return(nil).Once()
	m.uart.EXPECT().Init(mock.Anything, mock.Anything).Return(&capturePort{}, nil).Once()
	m.server.EXPECT().Init(mock.Anything).Return(m.app, nil).Once()
	m.memory.EXPECT().Map(mock.Anything).Return(make([]byte, 64), nil).Once()
	m.devices.EXPECT().Init(mock.Anything).Return(nil, status.New(status.ENOMEM, "iio_demo_init")).Once()

	code := bringup.Run(context.Background(), bringup.Config{
		Profile:  mustProfile(t, platform.ProfileHost),
		Platform: m.platform(),
	})

	assert.Equal(t, int(status.ENOMEM), code)
	m.app.AssertNotCalled(t, "Run", mock.Anything)
}

func TestMockedFullSequence(t *testing.T) {
	m := newMockPlatform(t)
	prof := mustProfile(t, platform.ProfileADuCM)

	registerDevice := func(p demo.InitParam) (iio.Device, error) {
		return demo.Init(p)
	}
	isOutput := func(p demo.InitParam) bool { return p.Direction == demo.Output }
	isInput := func(p demo.InitParam) bool { return p.Direction == demo.Input }

	mock.InOrder(
		m.power.EXPECT().Init().Return(nil).Call,
		m.power.EXPECT().SetClockDivider(power.ClockHCLK, uint32(1)).Return(nil).Call,
		m.power.EXPECT().SetClockDivider(power.ClockPCLK, uint32(1)).Return(nil).Call,
		m.power.EXPECT().InitComponents().Return(nil).Call,
		m.irq.EXPECT().Init(mock.MatchedBy(func(p irq.InitParam) bool {
			return p.Kind == platform.IRQNVIC
		})).Return(m.ctrl, nil).Call,
		m.ctrl.EXPECT().GlobalEnable().Return(nil).Call,
		m.uart.EXPECT().Init(mock.Anything, mock.MatchedBy(func(p uart.InitParam) bool {
			return p.BaudRate == prof.UART.BaudRate
		})).Return(&capturePort{}, nil).Call,
		m.server.EXPECT().Init(mock.MatchedBy(func(p iio.InitParam) bool {
			return p.Ops != nil
		})).Return(m.app, nil).Call,
		m.memory.EXPECT().Map(prof.Output).Return(make([]byte, prof.Output.Size), nil).Call,
		m.devices.EXPECT().Init(mock.MatchedBy(isOutput)).RunAndReturn(registerDevice).Call,
		m.memory.EXPECT().Map(prof.Input).Return(make([]byte, prof.Input.Size), nil).Call,
		m.devices.EXPECT().Init(mock.MatchedBy(isInput)).RunAndReturn(registerDevice).Call,
		m.app.EXPECT().Run(mock.Anything).Return(42).Call,
	)
	m.app.EXPECT().Register(mock.Anything).Return(nil).Times(2)

	code := bringup.Run(context.Background(), bringup.Config{Profile: prof, Platform: m.platform()})

	require.Equal(t, 42, code)
	m.app.AssertNumberOfCalls(t, "Run", 1)
	m.app.AssertNumberOfCalls(t, "Register", 2)
}
