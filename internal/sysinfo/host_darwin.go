//go:build darwin

package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

func residentMemory(ms *runtime.MemStats) uint64 {
	return estimatedResidentMemory(ms)
}

func processStartTime() (time.Time, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", os.Getpid())
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(kp.Proc.P_starttime.Unix()), nil
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

	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return OS{}, fmt.Errorf("failed to read hw.memsize: %w", err)
	}
	freePages, err := unix.SysctlUint32("vm.page_free_count")
	if err != nil {
		return OS{}, fmt.Errorf("failed to read vm.page_free_count: %w", err)
	}
	pageSize, err := unix.SysctlUint32("hw.pagesize")
	if err != nil {
		return OS{}, fmt.Errorf("failed to read hw.pagesize: %w", err)
	}

	raw, err := unix.SysctlRaw("vm.loadavg")
	if err != nil {
		return OS{}, fmt.Errorf("failed to read vm.loadavg: %w", err)
	}
	load, err := decodeLoadAvg(raw)
	if err != nil {
		return OS{}, err
	}

	info := OS{
		Type:        unix.ByteSliceToString(uts.Sysname[:]),
		Release:     unix.ByteSliceToString(uts.Release[:]),
		Hostname:    hostname,
		TotalMemory: total,
		FreeMemory:  uint64(freePages) * uint64(pageSize),
		LoadAverage: load,
		CPUCores:    runtime.NumCPU(),
		CPUModel:    unknownCPUModel,
	}

	// A missing brand string only loses the model
	if model, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil && model != "" {
		info.CPUModel = model
	}

	return info, nil
}
