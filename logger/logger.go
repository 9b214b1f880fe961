package logger

import (
	"fmt"
)

type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	OffLevel

	_minLevel = TraceLevel
	_maxLevel = OffLevel
)

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case OffLevel:
		return "off"
	default:
		return "unknown"
	}
}

type Sink interface {
	Log(lvl Level, f func() string)
	Level() Level
}

// Logger is a thin facade over a Sink. The zero value discards everything.
type Logger struct {
	Sink
}

// Enabled reports whether a message of level lvl would reach the sink.
func (l Logger) Enabled(lvl Level) bool {
	return l.Sink != nil && lvl < OffLevel && lvl >= l.Sink.Level()
}

func (l Logger) log(lvl Level, f func() string) {
	if !l.Enabled(lvl) {
		return
	}
	l.Sink.Log(lvl, f)
}

func (l Logger) Trace(f func() string) {
	l.log(TraceLevel, f)
}

func (l Logger) Tracef(format string, values ...interface{}) {
	l.log(TraceLevel, func() string {
		return fmt.Sprintf(format, values...)
	})
}

func (l Logger) Debug(f func() string) {
	l.log(DebugLevel, f)
}

func (l Logger) Debugf(format string, values ...interface{}) {
	l.log(DebugLevel, func() string {
		return fmt.Sprintf(format, values...)
	})
}

func (l Logger) Info(f func() string) {
	l.log(InfoLevel, f)
}

func (l Logger) Infof(format string, values ...interface{}) {
	l.log(InfoLevel, func() string {
		return fmt.Sprintf(format, values...)
	})
}

func (l Logger) Warnf(format string, values ...interface{}) {
	l.log(WarnLevel, func() string {
		return fmt.Sprintf(format, values...)
	})
}

func (l Logger) Errorf(format string, values ...interface{}) {
	l.log(ErrorLevel, func() string {
		return fmt.Errorf(format, values...).Error()
	})
}
