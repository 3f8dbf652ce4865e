// Package display decides which sections of the fetch output to print
// and in what order.
package display

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"corefetch/ascii"
	"corefetch/config"
	"corefetch/console"
	"corefetch/sysinfo"
)

// Unknown replaces any OS field the provider cannot report.
const Unknown = "Unknown"

// BatteryUnavailable is printed for the battery section; no battery
// source is supported.
const BatteryUnavailable = "Battery: Information not available"

var (
	labelStyle = color.New(color.FgBlue)
	noteStyle  = color.New(color.FgYellow)
)

// Presenter prints the banner followed by the sections enabled in its
// Config.
type Presenter struct {
	cfg      config.Config
	provider sysinfo.Provider
	out      console.Writer
	log      *log.Logger
}

// New returns a Presenter. provider is only queried for enabled sections.
func New(cfg config.Config, provider sysinfo.Provider, out console.Writer, logger *log.Logger) *Presenter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Presenter{cfg: cfg, provider: provider, out: out, log: logger}
}

// Render prints, in order: banner, alignment and spacing, then the CPU,
// RAM, OS, battery, disk and network sections whose toggle is set.
//
// A failed provider query degrades its own section to a note. Only
// output errors are returned.
func (p *Presenter) Render(ctx context.Context) error {
	for _, l := range ascii.Banner() {
		if err := p.out.WriteLine(l); err != nil {
			return err
		}
	}

	sections := []struct {
		enabled bool
		render  func(context.Context) error
	}{
		{true, p.settings},
		{p.cfg.ShowCPU, p.cpu},
		{p.cfg.ShowRAM, p.ram},
		{p.cfg.ShowOS, p.os},
		{p.cfg.ShowBattery, p.battery},
		{p.cfg.ShowDisk, p.disks},
		{p.cfg.ShowNetwork, p.network},
	}
	for _, s := range sections {
		if !s.enabled {
			continue
		}
		if err := s.render(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) field(label string, format string, args ...any) error {
	return p.out.WriteLine(console.Line{
		Text:  label + ": " + fmt.Sprintf(format, args...),
		Style: labelStyle,
	})
}

// unavailable notes a section whose data could not be read.
func (p *Presenter) unavailable(label string, err error) error {
	p.log.Debug("section degraded", "section", label, "err", err)
	return p.out.WriteLine(console.Line{Text: label + ": unavailable", Style: noteStyle})
}

func (p *Presenter) settings(context.Context) error {
	if err := p.field("Alignment", "%s", p.cfg.Alignment); err != nil {
		return err
	}
	return p.field("Spacing", "%d", p.cfg.Spacing)
}

func (p *Presenter) cpu(ctx context.Context) error {
	pct, err := p.provider.CPUUsage(ctx)
	if err != nil {
		return p.unavailable("CPU Usage", err)
	}
	return p.field("CPU Usage", "%.2f%%", pct)
}

func (p *Presenter) ram(ctx context.Context) error {
	m, err := p.provider.Memory(ctx)
	if err != nil {
		return p.unavailable("RAM", err)
	}
	if err := p.field("Total RAM", "%d bytes", m.Total); err != nil {
		return err
	}
	return p.field("Used RAM", "%d bytes", m.Used)
}

func (p *Presenter) os(ctx context.Context) error {
	info, err := p.provider.OS(ctx)
	if err != nil {
		p.log.Debug("os info incomplete", "err", err)
	}
	fields := []struct{ label, value string }{
		{"OS Name", info.Name},
		{"Kernel Version", info.KernelVersion},
		{"OS Version", info.Version},
		{"Host Name", info.HostName},
	}
	for _, f := range fields {
		if f.value == "" {
			f.value = Unknown
		}
		if err := p.field(f.label, "%s", f.value); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) battery(context.Context) error {
	return p.out.WriteLine(console.Line{Text: BatteryUnavailable, Style: noteStyle})
}

func (p *Presenter) disks(ctx context.Context) error {
	disks, err := p.provider.Disks(ctx)
	if err != nil {
		return p.unavailable("Disks", err)
	}
	if len(disks) == 0 {
		return p.out.WriteLine(console.Line{Text: "Disks: none found", Style: noteStyle})
	}
	for _, d := range disks {
		if err := p.field("Disk "+d.Name, "Total %d bytes, Available %d bytes", d.Total, d.Available); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) network(ctx context.Context) error {
	ifaces, err := p.provider.Interfaces(ctx)
	if err != nil {
		return p.unavailable("Network", err)
	}
	if len(ifaces) == 0 {
		return p.out.WriteLine(console.Line{Text: "Network: none found", Style: noteStyle})
	}
	for _, i := range ifaces {
		if err := p.field("Network "+i.Name, "Received %d bytes, Transmitted %d bytes", i.Received, i.Transmitted); err != nil {
			return err
		}
	}
	return nil
}
