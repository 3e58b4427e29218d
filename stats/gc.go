package stats

import (
	"runtime"
	"time"

	"github.com/Ennakelch/nodelist/utils"
)

type GcMonitor struct {
	utils.Closable

	lastPauseTotal uint64
}

func (m *GcMonitor) GetCounter() interface{} {
	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)
	pause := memStats.PauseTotalNs - m.lastPauseTotal
	m.lastPauseTotal = memStats.PauseTotalNs
	return []StatItem{
		{"pause", COUNT_TYPE, pause},
		{"heap_alloc", GAUGE_TYPE, memStats.HeapAlloc},
		{"num_gc", GAUGE_TYPE, memStats.NumGC},
	}
}

// RegisterGcMonitor的返回值Close后，统计循环会自动摘除该源
func RegisterGcMonitor() *GcMonitor {
	monitor := &GcMonitor{}
	registerCountable("gc", monitor, OptionInterval(time.Second))
	return monitor
}
