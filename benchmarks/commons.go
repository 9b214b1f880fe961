package benchmarks

import (
	"os"
	"strconv"
	"strings"
	"testing"
)

const (
	EnvWarmupCount   = "WARMUPS"
	defaultWarmupCnt = 3
)

// HashBenchmarker builds the fixture once, runs f warmups times unmeasured and then measures it.
func HashBenchmarker[T any](b *testing.B, fixture func() T, f func(b *testing.B, value T)) {
	warmups := warmupCount()
	if warmups > 0 {
		b.Logf("Warmups: %d", warmups)
	}
	value := fixture()
	for i := 0; i < warmups; i++ {
		f(b, value)
	}
	b.ReportAllocs()
	b.ResetTimer()
	f(b, value)
}

func warmupCount() int {
	if s := getEnv(EnvWarmupCount); len(s) > 0 {
		if i, err := strconv.ParseInt(s, 10, 32); err != nil {
			panic(err)
		} else {
			return int(i)
		}
	}
	return defaultWarmupCnt
}

func getEnv(name string) string {
	if s := os.Getenv(name); len(s) > 0 {
		s = strings.TrimSpace(s)
		return s
	}
	return ""
}
