package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// Usage is a snapshot of the resources held by the current process.
type Usage struct {
	RSSBytes   uint64
	CPUPercent float64
	AllocMb    uint64
	NumGC      uint32
	Goroutines int
}

func ProcessUsage() (Usage, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Usage{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return Usage{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return Usage{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Usage{
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpu,
		AllocMb:    m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}

// LogProcessUsage logs a usage snapshot at debug level. Collection failures are only logged.
func LogProcessUsage(ctx context.Context, log *slog.Logger, msg string) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	usage, err := ProcessUsage()
	if err != nil {
		log.Warn("Failed to collect process usage", "error", err)
		return
	}
	log.Debug(msg,
		"rss_bytes", usage.RSSBytes,
		"cpu_percent", usage.CPUPercent,
		"alloc_mb", usage.AllocMb,
		"num_gc", usage.NumGC,
		"goroutines", usage.Goroutines)
}
