// Package memory provides the backing regions of the demo devices.
//
// A Bank models one physical memory: the static SRAM buffers of a small
// target or the external DDR of a larger one. Mapping a region returns a
// byte slice that stays valid for the life of the process. Mapping a region
// that lies inside an already mapped one returns an alias of it.
package memory

import (
	"fmt"
	"sync"

	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
)

// Well known banks.
const (
	DDRSize  = 1 << 30
	SRAMBase = 0x20000000
	SRAMSize = 64 << 10
)

type segment struct {
	region platform.Region
	data   []byte
}

// Bank is an address range that regions are mapped from.
type Bank struct {
	name string
	base uint64
	size uint64

	mu       sync.Mutex
	segments []segment
}

// NewBank creates a bank covering [base, base+size).
func NewBank(name string, base, size uint64) *Bank {
	return &Bank{name: name, base: base, size: size}
}

// NewDDR returns the external memory bank of a Zynq-class target.
func NewDDR() *Bank {
	return NewBank("ddr", 0, DDRSize)
}

// NewSRAM returns the on-chip memory bank that holds static buffers.
func NewSRAM() *Bank {
	return NewBank("sram", SRAMBase, SRAMSize)
}

// ForProfile returns the bank that holds the device regions of p.
func ForProfile(p platform.Profile) *Bank {
	switch p.Kind {
	case platform.KindADuCM:
		return NewSRAM()
	case platform.KindXilinx:
		return NewDDR()
	default:
		return NewBank("host", 0, DDRSize)
	}
}

// Name returns the bank name.
func (b *Bank) Name() string { return b.name }

// Map returns the bytes backing r.
func (b *Bank) Map(r platform.Region) ([]byte, error) {
	if r.Size <= 0 {
		return nil, status.Wrap(status.EINVAL, "memory_map", fmt.Errorf("%s: empty region at %#x", b.name, r.Base))
	}
	if r.Base < b.base || r.End() > b.base+b.size {
		return nil, status.Wrap(status.ENOMEM, "memory_map",
			fmt.Errorf("%s: region [%#x,%#x) outside bank [%#x,%#x)", b.name, r.Base, r.End(), b.base, b.base+b.size))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.segments {
		if !s.region.Overlaps(r) {
			continue
		}
		if r.Base >= s.region.Base && r.End() <= s.region.End() {
			off := r.Base - s.region.Base
			return s.data[off : off+uint64(r.Size) : off+uint64(r.Size)], nil
		}
		return nil, status.Wrap(status.EBUSY, "memory_map",
			fmt.Errorf("%s: region [%#x,%#x) partially overlaps a mapped region", b.name, r.Base, r.End()))
	}

	data := make([]byte, r.Size)
	b.segments = append(b.segments, segment{region: r, data: data})
	return data, nil
}

// Mapped returns the number of mapped segments.
func (b *Bank) Mapped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.segments)
}
