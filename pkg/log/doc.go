// Package log provides structured event capture for the iio-demo
// application.
//
// This package defines the Logger interface and Event types for capturing
// bring-up and protocol events at multiple layers (transport, wire, server,
// bring-up). It is separate from operational logging (slog): event capture
// gives a complete machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// On target: write to a binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/iio-demo.ilog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(console, file)
//
// # Event Types
//
// Events are captured at multiple layers:
//   - Transport: raw frame bytes (FrameEvent)
//   - Wire: decoded messages (MessageEvent)
//   - Server / Bring-up: state changes (StateChangeEvent)
//
// Errors at any layer have a dedicated event type.
//
// # File Format
//
// Log files are a sequence of CBOR-encoded events (.ilog extension); Reader
// streams them back with optional filtering.
package log
