// Package status defines the signed status codes shared by every
// subsystem of the iio-demo application.
//
// Every initializing call reports success as 0 and failure as a negative
// value. The bring-up sequence does not interpret codes; it propagates the
// first negative code it sees verbatim to the process exit status.
//
// Subsystems return ordinary Go errors. An error that carries a code is a
// *Error; any other non-nil error maps to Failure.
package status
