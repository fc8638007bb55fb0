package irq

import (
	"fmt"
	"sort"
	"sync"

	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/status"
)

// MaxLines is the number of interrupt lines a controller exposes.
const MaxLines = 256

// Handler is an interrupt service routine.
type Handler func()

// Controller is an initialized interrupt controller.
type Controller interface {
	// GlobalEnable enables interrupt delivery.
	GlobalEnable() error

	// GlobalDisable masks all interrupts. Raised interrupts stay pending.
	GlobalDisable() error

	// Register installs the handler for an interrupt id.
	Register(id uint32, h Handler) error

	// Unregister removes the handler for an interrupt id.
	Unregister(id uint32) error

	// Enable unmasks a single interrupt line.
	Enable(id uint32) error

	// Disable masks a single interrupt line.
	Disable(id uint32) error

	// Raise signals an interrupt on a line.
	Raise(id uint32) error
}

// InitParam configures a controller.
type InitParam struct {
	// ControllerID selects the controller instance.
	ControllerID uint32

	// Kind is the controller variant selected by the platform profile.
	Kind platform.IRQKind

	// Extra carries platform specific parameters (e.g. *XilinxExtra).
	Extra any
}

// XilinxExtra selects between the PS GIC and the PL interrupt controller.
type XilinxExtra struct {
	Type platform.IRQKind
}

// Controllers available per variant.
var controllerCount = map[platform.IRQKind]uint32{
	platform.IRQGeneric: 1,
	platform.IRQPS:      1,
	platform.IRQPL:      2,
	platform.IRQNVIC:    1,
}

type line struct {
	handler Handler
	enabled bool
	pending bool
}

// Desc is an interrupt controller descriptor.
type Desc struct {
	mu sync.Mutex

	id      uint32
	kind    platform.IRQKind
	enabled bool
	lines   map[uint32]*line
}

// Init allocates and initializes an interrupt controller.
func Init(param InitParam) (*Desc, error) {
	kind := param.Kind
	if x, ok := param.Extra.(*XilinxExtra); ok {
		if x.Type != platform.IRQPS && x.Type != platform.IRQPL {
			return nil, status.Wrap(status.EINVAL, "irq_ctrl_init",
				fmt.Errorf("xilinx controller type %s", x.Type))
		}
		kind = x.Type
	}

	count, ok := controllerCount[kind]
	if !ok {
		return nil, status.Wrap(status.EINVAL, "irq_ctrl_init", fmt.Errorf("controller kind %d", kind))
	}
	if param.ControllerID >= count {
		return nil, status.Wrap(status.ENODEV, "irq_ctrl_init",
			fmt.Errorf("%s controller %d not present", kind, param.ControllerID))
	}

	return &Desc{
		id:    param.ControllerID,
		kind:  kind,
		lines: make(map[uint32]*line),
	}, nil
}

// ID returns the controller id.
func (d *Desc) ID() uint32 { return d.id }

// Kind returns the controller variant.
func (d *Desc) Kind() platform.IRQKind { return d.kind }

// Enabled reports whether interrupts are globally enabled.
func (d *Desc) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

// GlobalEnable enables delivery and flushes pending interrupts.
func (d *Desc) GlobalEnable() error {
	d.mu.Lock()
	d.enabled = true
	due := d.collectPendingLocked()
	d.mu.Unlock()

	for _, h := range due {
		h()
	}
	return nil
}

// GlobalDisable masks delivery.
func (d *Desc) GlobalDisable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = false
	return nil
}

// Register installs h for id. The line starts disabled.
func (d *Desc) Register(id uint32, h Handler) error {
	if err := checkLine(id, "irq_register"); err != nil {
		return err
	}
	if h == nil {
		return status.Wrap(status.EINVAL, "irq_register", fmt.Errorf("nil handler for irq %d", id))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if l, exists := d.lines[id]; exists && l.handler != nil {
		return status.Wrap(status.EBUSY, "irq_register", fmt.Errorf("irq %d already has a handler", id))
	}
	d.lines[id] = &line{handler: h}
	return nil
}

// Unregister removes the handler for id.
func (d *Desc) Unregister(id uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.lines[id]; !exists {
		return status.Wrap(status.ENOENT, "irq_unregister", fmt.Errorf("irq %d has no handler", id))
	}
	delete(d.lines, id)
	return nil
}

// Enable unmasks id and delivers a pending interrupt if possible.
func (d *Desc) Enable(id uint32) error {
	d.mu.Lock()
	l, exists := d.lines[id]
	if !exists {
		d.mu.Unlock()
		return status.Wrap(status.ENOENT, "irq_enable", fmt.Errorf("irq %d has no handler", id))
	}
	l.enabled = true
	var h Handler
	if d.enabled && l.pending {
		l.pending = false
		h = l.handler
	}
	d.mu.Unlock()

	if h != nil {
		h()
	}
	return nil
}

// Disable masks id.
func (d *Desc) Disable(id uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, exists := d.lines[id]
	if !exists {
		return status.Wrap(status.ENOENT, "irq_disable", fmt.Errorf("irq %d has no handler", id))
	}
	l.enabled = false
	return nil
}

// Raise signals id. The handler runs on the calling goroutine when the
// line can be delivered; otherwise the interrupt is latched.
func (d *Desc) Raise(id uint32) error {
	d.mu.Lock()
	l, exists := d.lines[id]
	if !exists {
		d.mu.Unlock()
		return status.Wrap(status.ENOENT, "irq_raise", fmt.Errorf("irq %d has no handler", id))
	}
	if !d.enabled || !l.enabled {
		l.pending = true
		d.mu.Unlock()
		return nil
	}
	h := l.handler
	d.mu.Unlock()

	h()
	return nil
}

// Pending reports whether id has a latched interrupt.
func (d *Desc) Pending(id uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, exists := d.lines[id]
	return exists && l.pending
}

func (d *Desc) collectPendingLocked() []Handler {
	ids := make([]uint32, 0, len(d.lines))
	for id, l := range d.lines {
		if l.pending && l.enabled {
			ids = append(ids, id)
		}
	}
	// Lower ids have higher priority.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	due := make([]Handler, 0, len(ids))
	for _, id := range ids {
		l := d.lines[id]
		l.pending = false
		due = append(due, l.handler)
	}
	return due
}

func checkLine(id uint32, op string) error {
	if id >= MaxLines {
		return status.Wrap(status.EINVAL, op, fmt.Errorf("irq %d out of range", id))
	}
	return nil
}

// Driver initializes controllers through Init.
type Driver struct{}

// Init implements the interrupt controller service.
func (Driver) Init(param InitParam) (Controller, error) {
	d, err := Init(param)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Compile-time interface satisfaction check.
var _ Controller = (*Desc)(nil)
