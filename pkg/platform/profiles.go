package platform

// Built-in profile names.
const (
	ProfileXilinxPS = "xilinx-ps"
	ProfileXilinxPL = "xilinx-pl"
	ProfileADuCM    = "aducm3029"
	ProfileHost     = "host"
)

// Default values shared by the profiles.
const (
	DefaultNumChannels = 4

	// DefaultHostAddress is the host line address (the IIOD port).
	DefaultHostAddress = "127.0.0.1:30431"

	xilinxDDRBase     = 0x00000000
	xilinxOutputBase  = xilinxDDRBase + 0x0A000000
	xilinxInputBase   = xilinxDDRBase + 0x00800000
	xilinxRegionSize  = 10000
	xilinxBaudRate    = 921600
	xilinxUARTIRQ     = 82
	aducmBufferSize   = 3000
	aducmBaudRate     = 115200
	aducmSRAMBase     = 0x20000000
	hostRegionSize    = 10000
	hostBaudRate      = 115200
	hostUARTIRQ       = 1
	hostInputBaseAddr = 0x10000000
)

func init() {
	register(Profile{
		Name: ProfileXilinxPS,
		Kind: KindXilinx,
		IRQ:  IRQConfig{ControllerID: 0, Kind: IRQPS},
		UART: UARTConfig{
			DeviceID: 0,
			BaudRate: xilinxBaudRate,
			Kind:     UARTPS,
			IRQID:    xilinxUARTIRQ,
		},
		Output:      Region{Base: xilinxOutputBase, Size: xilinxRegionSize},
		Input:       Region{Base: xilinxInputBase, Size: xilinxRegionSize},
		NumChannels: DefaultNumChannels,
	})

	register(Profile{
		Name: ProfileXilinxPL,
		Kind: KindXilinx,
		IRQ:  IRQConfig{ControllerID: 0, Kind: IRQPL},
		UART: UARTConfig{
			DeviceID: 0,
			BaudRate: xilinxBaudRate,
			Kind:     UARTPL,
			IRQID:    xilinxUARTIRQ,
		},
		Output:      Region{Base: xilinxOutputBase, Size: xilinxRegionSize},
		Input:       Region{Base: xilinxInputBase, Size: xilinxRegionSize},
		NumChannels: DefaultNumChannels,
	})

	// Static buffers: input first, output right after it.
	register(Profile{
		Name:     ProfileADuCM,
		Kind:     KindADuCM,
		HasPower: true,
		IRQ:      IRQConfig{ControllerID: 0, Kind: IRQNVIC},
		UART: UARTConfig{
			DeviceID:   0,
			BaudRate:   aducmBaudRate,
			Kind:       UARTADuCM,
			Parity:     ParityNone,
			StopBits:   1,
			WordLength: 8,
		},
		Output:      Region{Base: aducmSRAMBase + aducmBufferSize, Size: aducmBufferSize},
		Input:       Region{Base: aducmSRAMBase, Size: aducmBufferSize},
		NumChannels: DefaultNumChannels,
	})

	register(Profile{
		Name: ProfileHost,
		Kind: KindHost,
		IRQ:  IRQConfig{ControllerID: 0, Kind: IRQGeneric},
		UART: UARTConfig{
			DeviceID: 0,
			BaudRate: hostBaudRate,
			Kind:     UARTHost,
			IRQID:    hostUARTIRQ,
			Address:  DefaultHostAddress,
		},
		Output:      Region{Base: 0, Size: hostRegionSize},
		Input:       Region{Base: hostInputBaseAddr, Size: hostRegionSize},
		NumChannels: DefaultNumChannels,
	})
}
