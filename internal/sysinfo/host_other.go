//go:build !linux && !darwin

package sysinfo

import (
	"fmt"
	"runtime"
)

func residentMemory(ms *runtime.MemStats) uint64 {
	return estimatedResidentMemory(ms)
}

// TODO: read host statistics through sysctl on the BSDs.
func readOSInfo() (OS, error) {
	return OS{}, fmt.Errorf("host statistics are not supported on %s", runtime.GOOS)
}
