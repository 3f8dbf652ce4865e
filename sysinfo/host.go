package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// DefaultCPUSample is how long CPUUsage measures utilization for.
const DefaultCPUSample = 200 * time.Millisecond

// Host reads system information from the running machine.
type Host struct {
	// CPUSample is the measurement window for CPUUsage. Zero compares
	// against the previous call, which on the first call means since boot.
	CPUSample time.Duration

	log        *log.Logger
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewHost returns a Host provider that logs skipped entries to logger.
func NewHost(logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		CPUSample:  DefaultCPUSample,
		log:        logger,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
	}
}

var _ Provider = (*Host)(nil)

// CPUUsage samples aggregate CPU utilization over h.CPUSample.
//
// Returns:
//   - The utilization percentage across all logical CPUs
//   - An ErrProvider error if the platform counters cannot be read
func (h *Host) CPUUsage(ctx context.Context) (float64, error) {
	pct, err := cpu.PercentWithContext(ctx, h.CPUSample, false)
	if err != nil {
		return 0, fmt.Errorf("%w: cpu percent: %w", ErrProvider, err)
	}
	if len(pct) == 0 {
		return 0, fmt.Errorf("%w: cpu percent: no samples", ErrProvider)
	}
	return pct[0], nil
}

// Memory returns physical memory totals in bytes.
func (h *Host) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("%w: virtual memory: %w", ErrProvider, err)
	}
	return Memory{Total: vm.Total, Used: vm.Used}, nil
}

// OS returns the operating system identity.
//
// gopsutil may fill part of the result before failing, so the fields it
// managed to read are returned together with the error.
func (h *Host) OS(ctx context.Context) (OSInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if info == nil {
		if err == nil {
			err = errors.New("no host info")
		}
		return OSInfo{}, fmt.Errorf("%w: host info: %w", ErrProvider, err)
	}

	out := OSInfo{
		Name:          info.Platform,
		KernelVersion: info.KernelVersion,
		Version:       info.PlatformVersion,
		HostName:      info.Hostname,
	}
	// Platform is empty where there is no distribution concept.
	if out.Name == "" {
		out.Name = info.OS
	}
	if err != nil {
		return out, fmt.Errorf("%w: host info: %w", ErrProvider, err)
	}
	return out, nil
}

// Disks returns the physical partitions with their sizes. Partitions
// whose usage cannot be read are skipped and logged. A partition listing
// that fails part way is used as far as it goes; only an empty listing is
// an error.
func (h *Host) Disks(ctx context.Context) ([]Disk, error) {
	parts, err := h.partitions(ctx, false)
	if err != nil {
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: disk partitions: %w", ErrProvider, err)
		}
		h.log.Debug("partition listing incomplete", "found", len(parts), "err", err)
	}

	disks := make([]Disk, 0, len(parts))
	for _, p := range parts {
		usage, err := h.usage(ctx, p.Mountpoint)
		if err != nil {
			h.log.Debug("skipping disk", "device", p.Device, "mountpoint", p.Mountpoint, "err", err)
			continue
		}
		disks = append(disks, Disk{
			Name:      p.Device,
			Total:     usage.Total,
			Available: usage.Free,
		})
	}
	return disks, nil
}

// Interfaces returns received and transmitted byte counters per
// network interface.
func (h *Host) Interfaces(ctx context.Context) ([]Interface, error) {
	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: network counters: %w", ErrProvider, err)
	}

	ifaces := make([]Interface, 0, len(counters))
	for _, c := range counters {
		ifaces = append(ifaces, Interface{
			Name:        c.Name,
			Received:    c.BytesRecv,
			Transmitted: c.BytesSent,
		})
	}
	return ifaces, nil
}
