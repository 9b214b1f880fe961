package hashcode

import (
	"github.com/source-c/go-commons/logger"
	"log"
	"os"
	"sync/atomic"
)

var (
	debug     atomic.Bool
	debugSink logger.Sink = mustSink(log.New(os.Stderr, "hashcode ", log.LstdFlags|log.Lmicroseconds), logger.TraceLevel)
)

// SetDebug enables or disables tracing of every folding step to stderr for builders without a custom sink.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// IsDebug reports whether stderr tracing is enabled.
func IsDebug() bool {
	return debug.Load()
}

func mustSink(l *log.Logger, lvl logger.Level) logger.Sink {
	sink, err := logger.NewSink(l, lvl)
	if err != nil {
		panic(err)
	}
	return sink
}

func (b *Builder) logger() logger.Logger {
	if b.sink != nil {
		return logger.Logger{Sink: b.sink}
	}
	if IsDebug() {
		return logger.Logger{Sink: debugSink}
	}
	return logger.Logger{}
}
