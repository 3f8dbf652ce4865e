package display

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corefetch/ascii"
	"corefetch/config"
	"corefetch/console"
	"corefetch/sysinfo"
)

type fakeProvider struct {
	cpu    float64
	mem    sysinfo.Memory
	osInfo sysinfo.OSInfo
	disks  []sysinfo.Disk
	ifaces []sysinfo.Interface
	err    error
	osErr  error
	calls  map[string]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		cpu: 12.3456,
		mem: sysinfo.Memory{Total: 16000, Used: 4000},
		osInfo: sysinfo.OSInfo{
			Name:          "ubuntu",
			KernelVersion: "6.8.0",
			Version:       "24.04",
			HostName:      "box",
		},
		disks: []sysinfo.Disk{
			{Name: "/dev/sdb1", Total: 200, Available: 50},
			{Name: "/dev/sda1", Total: 100, Available: 10},
		},
		ifaces: []sysinfo.Interface{
			{Name: "wlan0", Received: 7, Transmitted: 8},
			{Name: "eth0", Received: 1, Transmitted: 2},
		},
		calls: map[string]int{},
	}
}

func (f *fakeProvider) CPUUsage(context.Context) (float64, error) {
	f.calls["cpu"]++
	return f.cpu, f.err
}

func (f *fakeProvider) Memory(context.Context) (sysinfo.Memory, error) {
	f.calls["ram"]++
	return f.mem, f.err
}

func (f *fakeProvider) OS(context.Context) (sysinfo.OSInfo, error) {
	f.calls["os"]++
	return f.osInfo, f.osErr
}

func (f *fakeProvider) Disks(context.Context) ([]sysinfo.Disk, error) {
	f.calls["disk"]++
	if f.err != nil {
		return nil, f.err
	}
	return f.disks, nil
}

func (f *fakeProvider) Interfaces(context.Context) ([]sysinfo.Interface, error) {
	f.calls["network"]++
	if f.err != nil {
		return nil, f.err
	}
	return f.ifaces, nil
}

type recorder struct {
	lines []string
	fail  error
}

func (r *recorder) WriteLine(l console.Line) error {
	if r.fail != nil {
		return r.fail
	}
	r.lines = append(r.lines, l.Text)
	return nil
}

// body returns the lines printed after the banner.
func (r *recorder) body(t *testing.T) []string {
	t.Helper()
	n := len(ascii.Banner())
	require.GreaterOrEqual(t, len(r.lines), n)
	return r.lines[n:]
}

func render(t *testing.T, cfg config.Config, p sysinfo.Provider) *recorder {
	t.Helper()
	rec := &recorder{}
	require.NoError(t, New(cfg, p, rec, nil).Render(context.Background()))
	return rec
}

func TestRenderDefaults(t *testing.T) {
	rec := render(t, config.Default(), newFakeProvider())

	for i, l := range ascii.Banner() {
		assert.Equal(t, l.Text, rec.lines[i])
	}
	assert.Equal(t, []string{
		"Alignment: left",
		"Spacing: 2",
		"CPU Usage: 12.35%",
		"Total RAM: 16000 bytes",
		"Used RAM: 4000 bytes",
		"OS Name: ubuntu",
		"Kernel Version: 6.8.0",
		"OS Version: 24.04",
		"Host Name: box",
		"Battery: Information not available",
		"Disk /dev/sdb1: Total 200 bytes, Available 50 bytes",
		"Disk /dev/sda1: Total 100 bytes, Available 10 bytes",
		"Network wlan0: Received 7 bytes, Transmitted 8 bytes",
		"Network eth0: Received 1 bytes, Transmitted 2 bytes",
	}, rec.body(t))
}

func TestRenderBatteryOnly(t *testing.T) {
	cfg := config.Default()
	cfg.ShowCPU, cfg.ShowRAM, cfg.ShowOS, cfg.ShowDisk, cfg.ShowNetwork = false, false, false, false, false
	p := newFakeProvider()

	rec := render(t, cfg, p)
	assert.Equal(t, []string{
		"Alignment: left",
		"Spacing: 2",
		"Battery: Information not available",
	}, rec.body(t))
	assert.Empty(t, p.calls, "provider must not be queried for disabled sections")
}

var sectionNames = []string{"cpu", "ram", "os", "battery", "disk", "network"}

var sectionPrefixes = map[string]string{
	"cpu":     "CPU Usage:",
	"ram":     "Total RAM:",
	"os":      "OS Name:",
	"battery": "Battery:",
	"disk":    "Disk ",
	"network": "Network ",
}

func sectionOf(line string) string {
	for _, name := range sectionNames {
		if strings.HasPrefix(line, sectionPrefixes[name]) {
			return name
		}
	}
	return ""
}

func TestToggleIndependence(t *testing.T) {
	for mask := 0; mask < 1<<len(sectionNames); mask++ {
		var want []string
		on := map[string]bool{}
		for i, name := range sectionNames {
			if mask&(1<<i) != 0 {
				on[name] = true
				want = append(want, name)
			}
		}

		t.Run(fmt.Sprintf("%06b", mask), func(t *testing.T) {
			cfg := config.Config{
				Alignment:   "right",
				Spacing:     0,
				ShowCPU:     on["cpu"],
				ShowRAM:     on["ram"],
				ShowOS:      on["os"],
				ShowBattery: on["battery"],
				ShowDisk:    on["disk"],
				ShowNetwork: on["network"],
			}
			body := render(t, cfg, newFakeProvider()).body(t)

			require.GreaterOrEqual(t, len(body), 2)
			assert.Equal(t, []string{"Alignment: right", "Spacing: 0"}, body[:2])

			var got []string
			for _, line := range body[2:] {
				s := sectionOf(line)
				if s == "" {
					// continuation line of the previous section
					continue
				}
				if len(got) == 0 || got[len(got)-1] != s {
					got = append(got, s)
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestRenderOSUnknownFields(t *testing.T) {
	p := newFakeProvider()
	p.osInfo = sysinfo.OSInfo{KernelVersion: "6.8.0"}
	p.osErr = fmt.Errorf("%w: host info: platform lookup failed", sysinfo.ErrProvider)
	cfg := config.Config{Alignment: "left", ShowOS: true}

	assert.Equal(t, []string{
		"Alignment: left",
		"Spacing: 0",
		"OS Name: Unknown",
		"Kernel Version: 6.8.0",
		"OS Version: Unknown",
		"Host Name: Unknown",
	}, render(t, cfg, p).body(t))
}

func TestRenderProviderFailures(t *testing.T) {
	p := newFakeProvider()
	p.err = fmt.Errorf("%w: unsupported platform", sysinfo.ErrProvider)
	cfg := config.Default()
	cfg.ShowOS, cfg.ShowBattery = false, false

	assert.Equal(t, []string{
		"Alignment: left",
		"Spacing: 2",
		"CPU Usage: unavailable",
		"RAM: unavailable",
		"Disks: unavailable",
		"Network: unavailable",
	}, render(t, cfg, p).body(t))
}

func TestRenderEmptyLists(t *testing.T) {
	p := newFakeProvider()
	p.disks, p.ifaces = nil, nil
	cfg := config.Config{Alignment: "left", ShowDisk: true, ShowNetwork: true}

	assert.Equal(t, []string{
		"Alignment: left",
		"Spacing: 0",
		"Disks: none found",
		"Network: none found",
	}, render(t, cfg, p).body(t))
}

func TestRenderWriteError(t *testing.T) {
	broken := errors.New("broken pipe")
	rec := &recorder{fail: broken}

	err := New(config.Default(), newFakeProvider(), rec, nil).Render(context.Background())
	require.ErrorIs(t, err, broken)
}
