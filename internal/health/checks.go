package health

import (
	"runtime"
)

// Thresholds for the built-in runtime checks.
const (
	// heapWarnRatio is the in-use fraction of the heap reserved from the
	// OS above which the heap check degrades to warn.
	heapWarnRatio = 0.98

	// goroutineWarnCount is the goroutine count above which the
	// goroutine check degrades to warn.
	goroutineWarnCount = 10_000
)

// BuiltinChecks returns the default set of runtime probes registered with
// every composed server: heap memory usage and goroutine count.
func BuiltinChecks() []Check {
	return []Check{heapMemoryCheck(), goroutineCheck()}
}

func heapMemoryCheck() Check {
	return CheckFunc{
		CheckName: "heapMemory",
		Fn: func() Result {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)

			status := Pass
			ratio := 0.0
			if ms.HeapSys > 0 {
				ratio = float64(ms.HeapAlloc) / float64(ms.HeapSys)
			}
			if ratio >= heapWarnRatio {
				status = Warn
			}

			return Result{
				Status: status,
				Detail: map[string]any{
					"used": ms.HeapAlloc,
					"max":  ms.HeapSys,
				},
			}
		},
	}
}

func goroutineCheck() Check {
	return CheckFunc{
		CheckName: "goroutines",
		Fn: func() Result {
			count := runtime.NumGoroutine()

			status := Pass
			if count > goroutineWarnCount {
				status = Warn
			}

			return Result{
				Status: status,
				Detail: map[string]any{"count": count},
			}
		},
	}
}
