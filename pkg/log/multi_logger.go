package log

import "time"

// MultiLogger fans events out to several loggers, e.g. a SlogAdapter for
// the console and a FileLogger for later analysis.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over loggers. Nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)

// Emit stamps event with the current time when unset and hands it to l.
// A nil l discards the event.
func Emit(l Logger, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	l.Log(event)
}

// StageEvent builds a bring-up stage transition event.
func StageEvent(profile, oldStage, newStage, reason string) Event {
	return Event{
		Direction: DirectionNone,
		Layer:     LayerBringup,
		Category:  CategoryState,
		Profile:   profile,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityStage,
			OldState: oldStage,
			NewState: newStage,
			Reason:   reason,
		},
	}
}

// ErrorEvent builds an error event for layer.
func ErrorEvent(layer Layer, context, msg string, code int32) Event {
	c := code
	return Event{
		Direction: DirectionNone,
		Layer:     layer,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Layer:   layer,
			Message: msg,
			Code:    &c,
			Context: context,
		},
	}
}
