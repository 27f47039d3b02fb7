// Package monitoring provides the diagnostic sink for the control pipeline.
package monitoring

import "log"

// Level classifies a diagnostic line.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Logger is an instance-scoped diagnostic sink. Each camera owns one, so
// concurrent cameras never contend on a shared logger and tests can capture
// diagnostics per instance. Diagnostics are observational only: nothing in
// the control path reads them back.
type Logger struct {
	prefix string
	logf   func(format string, v ...interface{})
}

// New returns a Logger writing through logf with the given prefix. A nil
// logf discards all output.
func New(prefix string, logf func(format string, v ...interface{})) *Logger {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Logger{prefix: prefix, logf: logf}
}

// Default returns a Logger backed by the standard library logger.
func Default(prefix string) *Logger {
	return New(prefix, log.Printf)
}

// Logf emits one diagnostic line at the given level.
func (l *Logger) Logf(level Level, format string, v ...interface{}) {
	args := make([]interface{}, 0, len(v)+2)
	args = append(args, l.prefix, level)
	args = append(args, v...)
	l.logf("%s [%s] "+format, args...)
}

// Debugf emits a debug-level diagnostic.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Logf(Debug, format, v...)
}

// Infof emits an info-level diagnostic.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.Logf(Info, format, v...)
}

// Warningf emits a warning-level diagnostic.
func (l *Logger) Warningf(format string, v ...interface{}) {
	l.Logf(Warning, format, v...)
}

// Errorf emits an error-level diagnostic.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.Logf(Error, format, v...)
}
