// Package uart implements the serial transport service.
//
// A descriptor is created by Init from a device id, a baud rate and a
// platform specific extra payload. On platforms with interrupt-driven
// reception the extra payload carries the interrupt controller: received
// bytes are queued in a ring buffer and the UART interrupt is raised; the
// interrupt handler wakes blocked readers. While interrupts are globally
// disabled, readers stay blocked even if bytes are queued.
//
// On a host the physical line is either a caller supplied stream or a TCP
// listener that accepts one peer at a time, in the way a serial port server
// exposes a UART. The line is never lossy: when the ring is full the pump
// stops reading the peer until Read frees space. When a peer leaves, its
// unread bytes are discarded and the next Read returns
// transport.ErrLineReset so a framer can start over.
package uart
