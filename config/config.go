// Package config holds the user's display preferences and the store that
// locates, loads and first-run generates the config file.
package config

import "fmt"

// AppName names the directory under ~/.config that holds the config file.
const AppName = "corefetch"

// Alignment selects which terminal edge the output is laid out against.
type Alignment string

// Recognized alignments.
const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// ParseAlignment interprets a stored alignment value.
//
// Returns:
//   - The matching Alignment
//   - An error if s is not one of the recognized values; the value is
//     never coerced
func ParseAlignment(s string) (Alignment, error) {
	switch a := Alignment(s); a {
	case AlignLeft, AlignRight:
		return a, nil
	default:
		return "", fmt.Errorf("invalid alignment %q: want %q or %q", s, AlignLeft, AlignRight)
	}
}

// Config represents the user's display preferences as stored on disk.
// It is treated as immutable once loaded.
type Config struct {
	// Alignment is kept as raw text; see ParseAlignment.
	Alignment string `toml:"alignment"`

	// Spacing is the number of separator spaces between the output and
	// the edge it is aligned to.
	Spacing int `toml:"spacing"`

	ShowCPU     bool `toml:"show_cpu"`
	ShowRAM     bool `toml:"show_ram"`
	ShowOS      bool `toml:"show_os"`
	ShowBattery bool `toml:"show_battery"`
	ShowDisk    bool `toml:"show_disk"`
	ShowNetwork bool `toml:"show_network"`
}

// Default returns the preferences written on first run.
func Default() Config {
	return Config{
		Alignment:   string(AlignLeft),
		Spacing:     2,
		ShowCPU:     true,
		ShowRAM:     true,
		ShowOS:      true,
		ShowBattery: true,
		ShowDisk:    true,
		ShowNetwork: true,
	}
}
