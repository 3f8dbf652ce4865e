// Package sysinfo defines the host information the fetch output is built
// from and a gopsutil-backed provider that reads it from the running
// system.
package sysinfo

import (
	"context"
	"errors"
)

// ErrProvider wraps every failure returned by a Provider query.
var ErrProvider = errors.New("system info unavailable")

// Memory holds physical memory totals in bytes.
type Memory struct {
	// Total is the installed physical memory
	Total uint64

	// Used is the memory currently in use
	Used uint64
}

// OSInfo identifies the operating system. Any field the platform cannot
// report is left empty.
type OSInfo struct {
	// Name is the OS or distribution name (e.g. "ubuntu", "darwin")
	Name string

	// KernelVersion is the running kernel release
	KernelVersion string

	// Version is the OS or distribution version
	Version string

	// HostName is the computer's network name
	HostName string
}

// Disk describes one mounted filesystem.
type Disk struct {
	// Name is the device name as reported by the platform
	Name string

	// Total is the filesystem size in bytes
	Total uint64

	// Available is the space left for unprivileged use in bytes
	Available uint64
}

// Interface holds the byte counters of one network interface.
type Interface struct {
	Name        string
	Received    uint64
	Transmitted uint64
}

// Provider supplies live host metrics. Each query stands alone so a
// failure in one leaves the others usable; lists are returned in the
// order the platform reports them.
type Provider interface {
	// CPUUsage returns aggregate utilization across all CPUs as a
	// percentage in [0, 100].
	CPUUsage(ctx context.Context) (float64, error)

	// Memory returns total and used physical memory.
	Memory(ctx context.Context) (Memory, error)

	// OS returns the operating system identity. On error the returned
	// value may still carry the fields that could be read.
	OS(ctx context.Context) (OSInfo, error)

	// Disks returns the mounted physical filesystems.
	Disks(ctx context.Context) ([]Disk, error)

	// Interfaces returns per-interface network counters.
	Interfaces(ctx context.Context) ([]Interface, error)
}
