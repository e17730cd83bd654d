package sysinfo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/runs-on/envinfo/internal/display"
	"github.com/runs-on/envinfo/internal/utils"
)

const (
	RunnerTitle = "Runner Information"
	SystemTitle = "System Information"

	// OSInfoErrorKey replaces the host fields when they cannot be read.
	OSInfoErrorKey = "OS Info Error"

	unknownCPUModel = "Unknown"
	bytesPerGB      = 1024 * 1024 * 1024
)

// RunnerInfo reports the runtime version, platform, architecture and
// working directory.
func RunnerInfo(p Provider) ([]display.Pair, error) {
	rt, err := p.Runtime()
	if err != nil {
		return nil, err
	}
	return []display.Pair{
		{Key: "Go Version", Value: rt.Version},
		{Key: "Platform", Value: rt.Platform},
		{Key: "Architecture", Value: rt.Arch},
		{Key: "Current Directory", Value: rt.WorkingDir},
	}, nil
}

// SystemInfo reports process details and, outside Windows, host details.
// A failure reading the host is reported inline under OSInfoErrorKey
// instead of being returned.
func SystemInfo(p Provider, format utils.Format) ([]display.Pair, error) {
	rt, err := p.Runtime()
	if err != nil {
		return nil, err
	}
	proc, err := p.Process()
	if err != nil {
		return nil, err
	}

	pairs := []display.Pair{
		{Key: "Process ID", Value: strconv.Itoa(proc.PID)},
		{Key: "Parent Process ID", Value: strconv.Itoa(proc.PPID)},
		{Key: "User ID", Value: orNotAvailable(proc.UID)},
		{Key: "Group ID", Value: orNotAvailable(proc.GID)},
		{Key: "Memory Usage", Value: utils.PrettyPrint(proc.Memory, format)},
		{Key: "CPU Usage", Value: utils.PrettyPrint(proc.CPU, format)},
		{Key: "Uptime", Value: formatUptime(proc.Uptime)},
		{Key: "Arguments", Value: utils.Compact(orEmpty(proc.Args), format)},
		{Key: "Executable Path", Value: proc.Executable},
		{Key: "Runtime Arguments", Value: utils.Compact(orEmpty(proc.RuntimeArgs), format)},
	}

	if rt.Platform == "windows" {
		return pairs, nil
	}

	host, err := p.OS()
	if err != nil {
		return append(pairs, display.Pair{
			Key:   OSInfoErrorKey,
			Value: fmt.Sprintf("Error getting OS info: %v", err),
		}), nil
	}

	model := host.CPUModel
	if model == "" {
		model = unknownCPUModel
	}
	return append(pairs,
		display.Pair{Key: "OS Type", Value: host.Type},
		display.Pair{Key: "OS Release", Value: host.Release},
		display.Pair{Key: "Hostname", Value: host.Hostname},
		display.Pair{Key: "Total Memory", Value: formatGB(host.TotalMemory)},
		display.Pair{Key: "Free Memory", Value: formatGB(host.FreeMemory)},
		display.Pair{Key: "Load Average", Value: utils.Compact(host.LoadAverage[:], format)},
		display.Pair{Key: "CPU Cores", Value: strconv.Itoa(host.CPUCores)},
		display.Pair{Key: "CPU Model", Value: model},
	), nil
}

func formatUptime(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + " seconds"
}

func formatGB(b uint64) string {
	return fmt.Sprintf("%.2f GB", float64(b)/bytesPerGB)
}

func orNotAvailable(id string) string {
	if id == "" {
		return NotAvailable
	}
	return id
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
