// Package transport frames exposition protocol messages on a byte stream.
//
// Every message is a CBOR payload preceded by its length as a 4-byte
// big-endian integer:
//
//	┌──────────────┬──────────────────────┐
//	│ length (4 B) │ CBOR payload         │
//	└──────────────┴──────────────────────┘
//
// The same framing runs over the UART line on target and over TCP on a
// host. The server side wraps the UART capability (anything with Read and
// Write); the client side dials TCP with Dial, or with DialRetry to wait
// for a server that is still coming up.
package transport
