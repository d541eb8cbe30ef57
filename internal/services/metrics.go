package services

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// SystemSnapshot is a point-in-time view of the host, taken on request.
type SystemSnapshot struct {
	CapturedAt        time.Time `json:"captured_at"`
	ProcessRSSBytes   int64     `json:"process_rss_bytes"`
	GoHeapBytes       int64     `json:"go_heap_bytes"`
	Goroutines        int       `json:"goroutines"`
	SystemMemoryTotal int64     `json:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `json:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `json:"disk_total_bytes"`
	DiskUsedBytes     int64     `json:"disk_used_bytes"`
	ProcessCPULoad    float64   `json:"process_cpu_load"`
	SystemCPULoad     float64   `json:"system_cpu_load"`
}

func CaptureSystemSnapshot(diskPath string) (SystemSnapshot, error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return SystemSnapshot{}, WrapError(err, "memory stats")
	}
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, err = disk.Usage("/")
		if err != nil {
			return SystemSnapshot{}, WrapError(err, "disk stats")
		}
	}
	var heap runtime.MemStats
	runtime.ReadMemStats(&heap)

	snapshot := SystemSnapshot{
		CapturedAt:        time.Now().UTC(),
		GoHeapBytes:       int64(heap.HeapAlloc),
		Goroutines:        runtime.NumGoroutine(),
		SystemMemoryTotal: int64(memStat.Total),
		SystemMemoryUsed:  int64(memStat.Total - memStat.Available),
		DiskTotalBytes:    int64(diskStat.Total),
		DiskUsedBytes:     int64(diskStat.Used),
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if rss, err := proc.MemoryInfo(); err == nil && rss != nil {
			snapshot.ProcessRSSBytes = int64(rss.RSS)
		}
		if perc, err := proc.CPUPercent(); err == nil {
			snapshot.ProcessCPULoad = perc / 100.0
		}
	}
	if sysCPU, err := cpu.Percent(0, false); err == nil && len(sysCPU) > 0 {
		snapshot.SystemCPULoad = sysCPU[0] / 100.0
	}
	return snapshot, nil
}
