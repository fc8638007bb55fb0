// Package platform selects the hardware profile the application is brought
// up on.
//
// A profile is a plain value resolved once at startup. It carries every
// constant the bring-up sequence hands to the drivers: interrupt controller
// id and kind, UART device id, baud rate and kind, the UART interrupt line,
// and the backing regions of the two demo devices.
//
// Profiles replace build-time platform switches: the same binary can be
// configured for any of them, and the logic that branches on the profile
// kind runs on any host.
//
//	p, err := platform.Lookup("xilinx-ps")
//	if err != nil {
//	    // configuration error, nothing has been initialized yet
//	}
package platform
