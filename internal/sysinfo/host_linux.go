//go:build linux

package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

func residentMemory(ms *runtime.MemStats) uint64 {
	proc, err := procfs.Self()
	if err != nil {
		return estimatedResidentMemory(ms)
	}
	stat, err := proc.Stat()
	if err != nil {
		return estimatedResidentMemory(ms)
	}
	return uint64(stat.ResidentMemory())
}

// processStartTime derives the start time from /proc/self/stat and the boot
// time in /proc/stat, at clock tick resolution.
func processStartTime() (time.Time, error) {
	proc, err := procfs.Self()
	if err != nil {
		return time.Time{}, err
	}
	stat, err := proc.Stat()
	if err != nil {
		return time.Time{}, err
	}
	seconds, err := stat.StartTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(seconds*float64(time.Second))), nil
}

func readOSInfo() (OS, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return OS{}, fmt.Errorf("uname failed: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return OS{}, fmt.Errorf("failed to get hostname: %w", err)
	}

	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return OS{}, fmt.Errorf("failed to open procfs: %w", err)
	}

	meminfo, err := fs.Meminfo()
	if err != nil {
		return OS{}, fmt.Errorf("failed to read meminfo: %w", err)
	}
	if meminfo.MemTotal == nil {
		return OS{}, fmt.Errorf("meminfo has no MemTotal")
	}
	// Values in /proc/meminfo are in kB
	free := meminfo.MemFree
	if meminfo.MemAvailable != nil {
		free = meminfo.MemAvailable
	}
	var freeBytes uint64
	if free != nil {
		freeBytes = *free * 1024
	}

	load, err := fs.LoadAvg()
	if err != nil {
		return OS{}, fmt.Errorf("failed to read loadavg: %w", err)
	}

	info := OS{
		Type:        unix.ByteSliceToString(uts.Sysname[:]),
		Release:     unix.ByteSliceToString(uts.Release[:]),
		Hostname:    hostname,
		TotalMemory: *meminfo.MemTotal * 1024,
		FreeMemory:  freeBytes,
		LoadAverage: [3]float64{load.Load1, load.Load5, load.Load15},
		CPUCores:    runtime.NumCPU(),
		CPUModel:    unknownCPUModel,
	}

	// cpuinfo layout varies by architecture; a parse failure only loses the model
	if cpus, err := fs.CPUInfo(); err == nil && len(cpus) > 0 {
		info.CPUCores = len(cpus)
		if cpus[0].ModelName != "" {
			info.CPUModel = cpus[0].ModelName
		}
	}

	return info, nil
}
