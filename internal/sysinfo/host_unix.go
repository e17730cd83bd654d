//go:build unix

package sysinfo

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

func ids() (string, string) {
	return strconv.Itoa(os.Geteuid()), strconv.Itoa(os.Getegid())
}

func cpuUsage() (CPUUsage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return CPUUsage{}, err
	}
	return CPUUsage{
		User:   ru.Utime.Nano() / 1000,
		System: ru.Stime.Nano() / 1000,
	}, nil
}
