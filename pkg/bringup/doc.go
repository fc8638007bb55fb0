// Package bringup assembles the application in a fixed order and hands
// control to the exposition server.
//
// Stages run strictly in sequence, each consuming the descriptor produced
// by the one before it:
//
//	power → irq init → irq enable → uart init → server → output device → input device → run
//
// The first failing stage ends the sequence; its negative status code is
// the result, verbatim. Stages that already succeeded are not undone: a
// failed boot halts before the run loop is ever entered.
//
// Every collaborator is an interface so tests can substitute instrumented
// fakes for the concrete drivers returned by Default.
package bringup
