package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"
)

// NotAvailable is reported for ids the platform does not have.
const NotAvailable = "N/A"

// Provider supplies the process and host state the reports are built from.
type Provider interface {
	Environ() []string
	Runtime() (Runtime, error)
	Process() (Process, error)
	OS() (OS, error)
}

// Runtime is static information about the Go runtime and working directory.
type Runtime struct {
	Version    string
	Platform   string
	Arch       string
	WorkingDir string
}

// MemoryUsage is a snapshot of the process memory counters, in bytes.
type MemoryUsage struct {
	RSS       uint64 `json:"rss" yaml:"rss"`
	HeapTotal uint64 `json:"heapTotal" yaml:"heapTotal"`
	HeapUsed  uint64 `json:"heapUsed" yaml:"heapUsed"`
	Stack     uint64 `json:"stack" yaml:"stack"`
	Sys       uint64 `json:"sys" yaml:"sys"`
	NumGC     uint32 `json:"numGC" yaml:"numGC"`
}

// CPUUsage is the CPU time consumed by the process, in microseconds.
type CPUUsage struct {
	User   int64 `json:"user" yaml:"user"`
	System int64 `json:"system" yaml:"system"`
}

// Process describes the running process.
type Process struct {
	PID         int
	PPID        int
	UID         string
	GID         string
	Memory      MemoryUsage
	CPU         CPUUsage
	Uptime      time.Duration
	Args        []string
	Executable  string
	RuntimeArgs []string
}

// OS describes the host operating system.
type OS struct {
	Type        string
	Release     string
	Hostname    string
	TotalMemory uint64
	FreeMemory  uint64
	LoadAverage [3]float64
	CPUCores    int
	CPUModel    string
}

// initTime stands in for the process start time where the platform
// cannot report it.
var initTime = time.Now()

type hostProvider struct{}

// NewHostProvider returns a Provider reading the live process and host.
func NewHostProvider() Provider {
	return hostProvider{}
}

func (hostProvider) Environ() []string {
	return os.Environ()
}

func (hostProvider) Runtime() (Runtime, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Runtime{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return Runtime{
		Version:    runtime.Version(),
		Platform:   runtime.GOOS,
		Arch:       runtime.GOARCH,
		WorkingDir: wd,
	}, nil
}

func (hostProvider) Process() (Process, error) {
	executable, err := os.Executable()
	if err != nil {
		return Process{}, fmt.Errorf("failed to get executable path: %w", err)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	memory := MemoryUsage{
		RSS:       residentMemory(&ms),
		HeapTotal: ms.HeapSys,
		HeapUsed:  ms.HeapAlloc,
		Stack:     ms.StackSys,
		Sys:       ms.Sys,
		NumGC:     ms.NumGC,
	}

	cpu, err := cpuUsage()
	if err != nil {
		return Process{}, fmt.Errorf("failed to get CPU usage: %w", err)
	}

	uid, gid := ids()
	return Process{
		PID:         os.Getpid(),
		PPID:        os.Getppid(),
		UID:         uid,
		GID:         gid,
		Memory:      memory,
		CPU:         cpu,
		Uptime:      uptime(),
		Args:        os.Args,
		Executable:  executable,
		RuntimeArgs: buildSettings(),
	}, nil
}

func (hostProvider) OS() (OS, error) {
	return readOSInfo()
}

func uptime() time.Duration {
	start, err := processStartTime()
	if err != nil || start.After(initTime) {
		start = initTime
	}
	return time.Since(start)
}

// buildSettings lists the flags the binary was built with, the closest Go
// has to interpreter arguments.
func buildSettings() []string {
	settings := []string{}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		settings = append(settings, s.Key+"="+s.Value)
	}
	return settings
}

// estimatedResidentMemory approximates RSS from the runtime's own accounting.
func estimatedResidentMemory(ms *runtime.MemStats) uint64 {
	return ms.Sys - ms.HeapReleased
}
