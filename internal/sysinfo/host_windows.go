//go:build windows

package sysinfo

import (
	"time"

	"golang.org/x/sys/windows"
)

// NOTE: Windows has no numeric user or group ids.
func ids() (string, string) {
	return NotAvailable, NotAvailable
}

func cpuUsage() (CPUUsage, error) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return CPUUsage{}, err
	}
	return CPUUsage{
		User:   filetimeMicros(user),
		System: filetimeMicros(kernel),
	}, nil
}

func processStartTime() (time.Time, error) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, creation.Nanoseconds()), nil
}

// filetimeMicros converts a FILETIME duration (100ns ticks) to microseconds.
func filetimeMicros(ft windows.Filetime) int64 {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return ticks / 10
}
