/*
Package logger provides leveled diagnostic output for go-commons.

Log levels for the logger.Logger are:
  - TraceLevel : Every single accumulation step of a hash builder. Very verbose.
  - DebugLevel : Structural events, e.g. traversed types and skipped cyclic references.
  - InfoLevel  : An informational message.
  - WarnLevel  : A warning message.
  - ErrorLevel : An error message.
  - OffLevel   : Do not log anything.

TraceLevel < DebugLevel < InfoLevel < WarnLevel < ErrorLevel < OffLevel.
A sink must produce no output for messages below its own level.

Messages are passed as functions, so a disabled level never pays for formatting:

	log := logger.Logger{Sink: sink}
	log.Trace(func() string {
		return fmt.Sprintf("%d = %d * %d + %d", total, old, multiplier, value)
	})

You can provide a custom sink that implements logger.Sink

	type Sink interface {
		Log(lvl Level, f func() string)
		Level() Level
	}

or use the default wrapper around log.Logger created with [NewSink]. [Nop] discards everything.
*/
package logger
