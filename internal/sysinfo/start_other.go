//go:build !linux && !darwin && !windows

package sysinfo

import (
	"fmt"
	"runtime"
	"time"
)

func processStartTime() (time.Time, error) {
	return time.Time{}, fmt.Errorf("process start time is not available on %s", runtime.GOOS)
}
