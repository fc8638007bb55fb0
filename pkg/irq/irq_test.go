package irq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
)

func newController(t *testing.T) *Desc {
	t.Helper()
	d, err := Init(InitParam{Kind: platform.IRQGeneric})
	require.NoError(t, err)
	return d
}

func TestInitVariants(t *testing.T) {
	tests := []struct {
		name     string
		param    InitParam
		wantKind platform.IRQKind
		wantCode int32
	}{
		{name: "generic", param: InitParam{Kind: platform.IRQGeneric}, wantKind: platform.IRQGeneric},
		{name: "nvic", param: InitParam{Kind: platform.IRQNVIC}, wantKind: platform.IRQNVIC},
		{name: "xilinx ps", param: InitParam{Extra: &XilinxExtra{Type: platform.IRQPS}}, wantKind: platform.IRQPS},
		{name: "xilinx pl second controller", param: InitParam{ControllerID: 1, Extra: &XilinxExtra{Type: platform.IRQPL}}, wantKind: platform.IRQPL},
		{name: "xilinx bad type", param: InitParam{Extra: &XilinxExtra{Type: platform.IRQNVIC}}, wantCode: status.EINVAL},
		{name: "missing controller", param: InitParam{ControllerID: 3, Kind: platform.IRQPS}, wantCode: status.ENODEV},
		{name: "unknown kind", param: InitParam{Kind: platform.IRQKind(42)}, wantCode: status.EINVAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Init(tt.param)
			if tt.wantCode != 0 {
				assert.Nil(t, d)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, d.Kind())
			assert.Equal(t, tt.param.ControllerID, d.ID())
			assert.False(t, d.Enabled(), "controller starts globally disabled")
		})
	}
}

func TestRaiseDelivery(t *testing.T) {
	d := newController(t)
	calls := 0
	require.NoError(t, d.Register(5, func() { calls++ }))

	// Line disabled, global disabled: latched.
	require.NoError(t, d.Raise(5))
	assert.Equal(t, 0, calls)
	assert.True(t, d.Pending(5))

	// Line enabled, global still disabled: still latched.
	require.NoError(t, d.Enable(5))
	assert.Equal(t, 0, calls)

	// Global enable flushes the pending interrupt.
	require.NoError(t, d.GlobalEnable())
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending(5))

	require.NoError(t, d.Raise(5))
	assert.Equal(t, 2, calls)

	require.NoError(t, d.Disable(5))
	require.NoError(t, d.Raise(5))
	assert.Equal(t, 2, calls)

	// Re-enabling the line delivers the latched interrupt.
	require.NoError(t, d.Enable(5))
	assert.Equal(t, 3, calls)
}

func TestGlobalDisableLatches(t *testing.T) {
	d := newController(t)
	calls := 0
	require.NoError(t, d.Register(1, func() { calls++ }))
	require.NoError(t, d.Enable(1))
	require.NoError(t, d.GlobalEnable())

	require.NoError(t, d.GlobalDisable())
	require.NoError(t, d.Raise(1))
	assert.Equal(t, 0, calls)

	require.NoError(t, d.GlobalEnable())
	assert.Equal(t, 1, calls)
}

func TestPendingFlushOrder(t *testing.T) {
	d := newController(t)
	var order []uint32
	for _, id := range []uint32{9, 2, 7} {
		id := id
		require.NoError(t, d.Register(id, func() { order = append(order, id) }))
		require.NoError(t, d.Enable(id))
		require.NoError(t, d.Raise(id))
	}

	require.NoError(t, d.GlobalEnable())
	assert.Equal(t, []uint32{2, 7, 9}, order)
}

func TestRegisterErrors(t *testing.T) {
	d := newController(t)

	assert.Equal(t, status.EINVAL, status.Code(d.Register(MaxLines, func() {})))
	assert.Equal(t, status.EINVAL, status.Code(d.Register(1, nil)))

	require.NoError(t, d.Register(1, func() {}))
	assert.Equal(t, status.EBUSY, status.Code(d.Register(1, func() {})))

	require.NoError(t, d.Unregister(1))
	assert.Equal(t, status.ENOENT, status.Code(d.Unregister(1)))
	assert.Equal(t, status.ENOENT, status.Code(d.Raise(1)))
	assert.Equal(t, status.ENOENT, status.Code(d.Enable(1)))
	assert.Equal(t, status.ENOENT, status.Code(d.Disable(1)))
}

func TestDriverInit(t *testing.T) {
	c, err := Driver{}.Init(InitParam{Kind: platform.IRQPS})
	require.NoError(t, err)
	assert.IsType(t, &Desc{}, c)

	c, err = Driver{}.Init(InitParam{ControllerID: 9, Kind: platform.IRQPS})
	assert.Error(t, err)
	assert.Nil(t, c)
}
