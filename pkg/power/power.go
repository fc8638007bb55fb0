// Package power implements the power and clock service used on targets
// that have a distinct power subsystem.
//
// Sim keeps the controller state in memory. It enforces the hardware
// ordering rules: dividers can only be set once the subsystem is
// initialized, and vendor components only after that.
package power

import (
	"fmt"
	"sync"

	"github.com/noos-go/iio-demo/pkg/status"
)

// Clock identifies a clock domain.
type Clock uint8

const (
	// ClockHCLK is the core/AHB clock domain.
	ClockHCLK Clock = iota

	// ClockPCLK is the peripheral clock domain.
	ClockPCLK
)

// String returns the clock domain name.
func (c Clock) String() string {
	switch c {
	case ClockHCLK:
		return "HCLK"
	case ClockPCLK:
		return "PCLK"
	default:
		return "UNKNOWN"
	}
}

// Divider limits.
const (
	MinDivider = 1
	MaxDivider = 32
)

// Sim is an in-memory power controller.
type Sim struct {
	mu sync.Mutex

	initialized bool
	components  bool
	dividers    map[Clock]uint32
}

// NewSim creates a powered-down controller.
func NewSim() *Sim {
	return &Sim{dividers: make(map[Clock]uint32)}
}

// Init powers up the subsystem. Calling it twice is allowed.
func (s *Sim) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
	return nil
}

// SetClockDivider programs the divider of a clock domain.
func (s *Sim) SetClockDivider(clk Clock, div uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return status.New(status.EBUSY, "pwr_set_clock_divider")
	}
	if clk > ClockPCLK {
		return status.Wrap(status.EINVAL, "pwr_set_clock_divider", fmt.Errorf("unknown clock %d", clk))
	}
	if div < MinDivider || div > MaxDivider {
		return status.Wrap(status.EINVAL, "pwr_set_clock_divider",
			fmt.Errorf("%s divider %d out of range [%d,%d]", clk, div, MinDivider, MaxDivider))
	}
	s.dividers[clk] = div
	return nil
}

// InitComponents runs the remaining vendor component initialization.
func (s *Sim) InitComponents() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return status.New(status.EBUSY, "init_components")
	}
	s.components = true
	return nil
}

// Initialized reports whether Init has run.
func (s *Sim) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// ComponentsReady reports whether InitComponents has run.
func (s *Sim) ComponentsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.components
}

// Divider returns the programmed divider of clk, or 0 if unset.
func (s *Sim) Divider(clk Clock) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dividers[clk]
}
