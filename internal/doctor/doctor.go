package doctor

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Report summarizes the host from a tethering point of view:
// is there enough disk for downloads, enough memory, and what
// machine are we on.
type Report struct {
	Hostname    string
	OS          string
	Platform    string
	UptimeSec   uint64
	MemTotal    uint64
	MemUsed     uint64
	MemPercent  float64
	DiskPath    string
	DiskTotal   uint64
	DiskFree    uint64
	DiskPercent float64
	Warnings    []string
}

// lowDiskThreshold warns when less than this many bytes remain
// under the download directory. A raw file can reach 100 MB.
const lowDiskThreshold = 1 << 30

// Collect gathers host facts. downloadDir decides which filesystem the
// disk numbers describe. Individual probes failing is not fatal; the
// failure lands in Warnings instead.
func Collect(downloadDir string) *Report {
	r := &Report{DiskPath: downloadDir}

	if hostInfo, err := host.Info(); err == nil {
		r.Hostname = hostInfo.Hostname
		r.OS = hostInfo.OS
		r.Platform = hostInfo.Platform
		r.UptimeSec = hostInfo.Uptime
	} else {
		r.Warnings = append(r.Warnings, fmt.Sprintf("host info unavailable: %v", err))
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		r.MemTotal = memInfo.Total
		r.MemUsed = memInfo.Used
		r.MemPercent = memInfo.UsedPercent
	} else {
		r.Warnings = append(r.Warnings, fmt.Sprintf("memory info unavailable: %v", err))
	}

	if diskInfo, err := disk.Usage(downloadDir); err == nil {
		r.DiskTotal = diskInfo.Total
		r.DiskFree = diskInfo.Free
		r.DiskPercent = diskInfo.UsedPercent
		if diskInfo.Free < lowDiskThreshold {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("low disk space under %s: %s free", downloadDir, FormatBytes(diskInfo.Free)))
		}
	} else {
		r.Warnings = append(r.Warnings, fmt.Sprintf("disk usage unavailable for %s: %v", downloadDir, err))
	}

	return r
}

// FormatBytes renders a byte count in a human unit.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
