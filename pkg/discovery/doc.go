// Package discovery advertises and browses exposition servers over
// mDNS/DNS-SD.
//
// A server reachable over a TCP line registers one instance of the
// _iio._tcp service. The instance name is the context name; the TXT
// records describe the platform:
//
//	profile   platform profile name (e.g. "host", "xilinx-ps")
//	platform  platform family
//	ver       exposition protocol version
//	baud      UART baud rate of the line
//	devs      comma-separated device names (optional)
//
// Clients browse the same service type and connect to the first address
// of an entry.
package discovery
