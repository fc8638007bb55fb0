// Package demo implements the virtual demo device.
//
// A device owns a backing region holding scans of NumChannels 16-bit
// little-endian samples. An input device is pre-filled with a triangle
// pattern (phase shifted per channel) and replays it to READBUF; an output
// device stores WRITEBUF samples into its region. Every device carries a
// device attribute dev_global_attr and a channel attribute ch_attr.
package demo
