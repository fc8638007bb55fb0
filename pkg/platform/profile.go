package platform

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration errors.
var (
	ErrUnknownProfile  = errors.New("unknown platform profile")
	ErrInvalidProfile  = errors.New("invalid platform profile")
	ErrOverlappingArea = errors.New("device regions overlap")
)

// Kind identifies the hardware family of a profile.
type Kind uint8

const (
	// KindHost runs on a development host with simulated peripherals.
	KindHost Kind = iota

	// KindXilinx is a Zynq-class target with external DDR.
	KindXilinx

	// KindADuCM is a memory-constrained Cortex-M target with a power subsystem.
	KindADuCM
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindXilinx:
		return "xilinx"
	case KindADuCM:
		return "aducm"
	default:
		return "unknown"
	}
}

// IRQKind identifies the interrupt controller variant.
type IRQKind uint8

const (
	IRQGeneric IRQKind = iota
	IRQPS              // Processing-system GIC
	IRQPL              // Programmable-logic AXI INTC
	IRQNVIC            // Cortex-M NVIC
)

// String returns the interrupt controller kind name.
func (k IRQKind) String() string {
	switch k {
	case IRQGeneric:
		return "generic"
	case IRQPS:
		return "ps"
	case IRQPL:
		return "pl"
	case IRQNVIC:
		return "nvic"
	default:
		return "unknown"
	}
}

// UARTKind identifies the UART variant.
type UARTKind uint8

const (
	UARTHost  UARTKind = iota
	UARTPS             // Processing-system UART
	UARTPL             // Programmable-logic UART-lite
	UARTADuCM          // ADuCM UART
)

// String returns the UART kind name.
func (k UARTKind) String() string {
	switch k {
	case UARTHost:
		return "host"
	case UARTPS:
		return "ps"
	case UARTPL:
		return "pl"
	case UARTADuCM:
		return "aducm"
	default:
		return "unknown"
	}
}

// Parity is the UART parity setting.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// Region is a backing memory region for a device.
type Region struct {
	// Base is the base address of the region.
	Base uint64 `yaml:"base"`

	// Size is the region size in bytes.
	Size int `yaml:"size"`
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Base + uint64(r.Size)
}

// Overlaps reports whether r and o share at least one byte.
func (r Region) Overlaps(o Region) bool {
	if r.Size == 0 || o.Size == 0 {
		return false
	}
	return r.Base < o.End() && o.Base < r.End()
}

// IRQConfig holds interrupt controller parameters.
type IRQConfig struct {
	ControllerID uint32
	Kind         IRQKind
}

// UARTConfig holds transport parameters.
type UARTConfig struct {
	DeviceID uint32
	BaudRate uint32
	Kind     UARTKind

	// IRQID is the interrupt line of the UART on the controller.
	IRQID uint32

	// Line settings (ADuCM).
	Parity     Parity
	StopBits   uint8
	WordLength uint8

	// Address is the host line listen address (host profile only).
	Address string
}

// Profile is one mutually exclusive hardware configuration.
type Profile struct {
	Name string
	Kind Kind

	// HasPower is set when the target has a distinct power/clock subsystem.
	HasPower bool

	IRQ  IRQConfig
	UART UARTConfig

	// Output and Input are the backing regions of the two demo devices.
	Output Region
	Input  Region

	// NumChannels is the channel count of each demo device.
	NumChannels int
}

// Validate checks that the profile is internally consistent.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	if p.UART.BaudRate == 0 {
		return fmt.Errorf("%w: %s: baud rate is zero", ErrInvalidProfile, p.Name)
	}
	if p.NumChannels <= 0 {
		return fmt.Errorf("%w: %s: channel count must be positive", ErrInvalidProfile, p.Name)
	}
	if p.Output.Size <= 0 || p.Input.Size <= 0 {
		return fmt.Errorf("%w: %s: device regions must be non-empty", ErrInvalidProfile, p.Name)
	}
	if p.Output.Overlaps(p.Input) {
		return fmt.Errorf("%w: %s: output [%#x,%#x) input [%#x,%#x)", ErrOverlappingArea,
			p.Name, p.Output.Base, p.Output.End(), p.Input.Base, p.Input.End())
	}
	if p.Kind == KindHost && p.UART.Address == "" {
		return fmt.Errorf("%w: %s: host line address is empty", ErrInvalidProfile, p.Name)
	}
	return nil
}

var profiles = map[string]Profile{}

func register(p Profile) {
	if _, exists := profiles[p.Name]; exists {
		panic("platform: duplicate profile " + p.Name)
	}
	if err := p.Validate(); err != nil {
		panic("platform: " + err.Error())
	}
	profiles[p.Name] = p
}

// Lookup returns the built-in profile with the given name.
func Lookup(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProfile, name, Names())
	}
	return p, nil
}

// Names returns the sorted names of the built-in profiles.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
