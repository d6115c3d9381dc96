package model

//
// Logger
//

// DebugLogger is a logger emitting only debug messages.
type DebugLogger interface {
	// Debug emits a debug message.
	Debug(msg string)

	// Debugf formats and emits a debug message.
	Debugf(format string, v ...any)
}

// InfoLogger is a logger emitting debug and info messages.
type InfoLogger interface {
	// An InfoLogger is also a DebugLogger.
	DebugLogger

	// Info emits an informational message.
	Info(msg string)

	// Infof formats and emits an informational message.
	Infof(format string, v ...any)
}

// Logger is the logger used across the simulator. The `log.Log`
// logger of `apex/log` implements it out of the box.
type Logger interface {
	// A Logger is also an InfoLogger.
	InfoLogger

	// Warn emits a warning message.
	Warn(msg string)

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...any)
}

// DiscardLogger is a [Logger] that discards its input.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debug(msg string) {}

func (logDiscarder) Debugf(format string, v ...any) {}

func (logDiscarder) Info(msg string) {}

func (logDiscarder) Infof(format string, v ...any) {}

func (logDiscarder) Warn(msg string) {}

func (logDiscarder) Warnf(format string, v ...any) {}

// ValidLoggerOrDefault returns logger when not nil and
// [DiscardLogger] otherwise.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
