package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)
)

// StartSystemMetricsCollector запускает фоновый опрос CPU и памяти.
// Останавливается вместе с процессом, отдельного cancel нет.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
}
