// Package irq implements the interrupt controller service.
//
// A controller owns a table of handlers keyed by interrupt id. A raised
// interrupt is delivered to its handler only when the controller is
// globally enabled and the line itself is enabled; otherwise it is latched
// as pending and delivered on the next enable.
//
// Handlers run on the goroutine that raises the interrupt, which plays the
// role of interrupt context. They must not block.
package irq
