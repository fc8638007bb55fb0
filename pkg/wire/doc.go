// Package wire defines the CBOR wire format of the exposition protocol.
//
// Messages are CBOR (RFC 8949) maps with integer keys, carried in
// length-prefixed frames over the serial transport.
//
// # Message Types
//
// There are two message types:
//   - Request: client to server (VERSION, PRINT, READ, WRITE, OPEN, CLOSE,
//     READBUF, WRITEBUF, TIMEOUT)
//   - Response: server to client, with a signed status (0 or a negative
//     errno) and an optional value, sample data or context description
//
// The operation set follows the IIO daemon command set; attribute values
// travel as strings, sample data as raw little-endian bytes.
package wire
