package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
)

func TestMapProfileRegions(t *testing.T) {
	for _, name := range platform.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := platform.Lookup(name)
			require.NoError(t, err)

			bank := ForProfile(p)
			out, err := bank.Map(p.Output)
			require.NoError(t, err)
			in, err := bank.Map(p.Input)
			require.NoError(t, err)

			assert.Len(t, out, p.Output.Size)
			assert.Len(t, in, p.Input.Size)
			assert.Equal(t, 2, bank.Mapped())

			out[0] = 0xAA
			assert.Zero(t, in[0], "device regions must not alias")
		})
	}
}

func TestMapAlias(t *testing.T) {
	bank := NewBank("test", 0x1000, 0x1000)
	outer, err := bank.Map(platform.Region{Base: 0x1000, Size: 256})
	require.NoError(t, err)

	inner, err := bank.Map(platform.Region{Base: 0x1010, Size: 16})
	require.NoError(t, err)
	inner[0] = 0x42
	assert.Equal(t, byte(0x42), outer[0x10])
	assert.Equal(t, 1, bank.Mapped())
}

func TestMapErrors(t *testing.T) {
	bank := NewSRAM()

	_, err := bank.Map(platform.Region{Base: SRAMBase, Size: 0})
	assert.Equal(t, status.EINVAL, status.Code(err))

	_, err = bank.Map(platform.Region{Base: 0, Size: 16})
	assert.Equal(t, status.ENOMEM, status.Code(err))

	_, err = bank.Map(platform.Region{Base: SRAMBase + SRAMSize - 8, Size: 16})
	assert.Equal(t, status.ENOMEM, status.Code(err))

	_, err = bank.Map(platform.Region{Base: SRAMBase, Size: 100})
	require.NoError(t, err)
	_, err = bank.Map(platform.Region{Base: SRAMBase + 50, Size: 100})
	assert.Equal(t, status.EBUSY, status.Code(err))
}
