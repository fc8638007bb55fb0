// Package iio implements the device exposition server and its client.
//
// The server (App) owns every byte of the transport once constructed. It
// reads length-prefixed CBOR requests through a ServerOps capability,
// dispatches them to the registered devices and writes the responses back
// on the same capability. Devices register themselves through the Registry
// contract while they are being constructed, so the App must exist before
// any device does.
//
// Supported operations:
//   - VERSION, PRINT: server version and context description
//   - READ, WRITE: device or channel attributes
//   - OPEN, CLOSE: buffer lifecycle for a channel mask
//   - READBUF, WRITEBUF: sample transfer
//   - TIMEOUT: client requested I/O timeout
//
// Client speaks the same protocol over any framed connection (typically
// transport.Dial on a host).
package iio
