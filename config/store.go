package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
)

// Error kinds returned by Store. Test with errors.Is; the underlying
// cause stays wrapped alongside.
var (
	// ErrEnvironment reports that a required environment fact, such as
	// the home directory, could not be resolved.
	ErrEnvironment = errors.New("environment error")

	// ErrIO reports a filesystem failure while creating, writing,
	// reading or inspecting the config file.
	ErrIO = errors.New("io error")

	// ErrParse reports config content that does not decode into Config.
	ErrParse = errors.New("parse error")
)

// Env resolves facts about the process environment.
type Env interface {
	HomeDir() (string, error)
}

// OSEnv resolves the environment of the running process.
type OSEnv struct{}

// HomeDir returns the current user's home directory.
func (OSEnv) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// Store locates and persists the config file.
type Store struct {
	env       Env
	out       io.Writer
	log       *log.Logger
	writeFile func(name string, data []byte, perm fs.FileMode) error
}

// NewStore returns a Store that resolves paths through env, prints
// user-facing notices to out and debug detail to logger.
func NewStore(env Env, out io.Writer, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		env:       env,
		out:       out,
		log:       logger,
		writeFile: os.WriteFile,
	}
}

// ResolvePath returns <home>/.config/<AppName>/config.toml.
// There is no fallback when the home directory cannot be determined.
func (s *Store) ResolvePath() (string, error) {
	home, err := s.env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolve home directory: %w", ErrEnvironment, err)
	}
	if home == "" {
		return "", fmt.Errorf("%w: home directory is empty", ErrEnvironment)
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Exists reports whether a file is present at path. It does not inspect
// the content.
func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
}

// Generate writes cfg to path, creating any missing parent directories,
// and prints a confirmation naming the path. The write is not atomic.
func (s *Store) Generate(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: encode config: %w", ErrIO, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create config directory %s: %w", ErrIO, dir, err)
	}
	if err := s.writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write config file %s: %w", ErrIO, path, err)
	}

	s.log.Debug("wrote default config", "path", path, "bytes", len(data))
	if s.out != nil {
		color.New(color.FgGreen).Fprintf(s.out, "Config file generated at %s\n", path)
	}
	return nil
}

// fileConfig mirrors Config with pointer fields so absent keys can be
// told apart from zero values.
type fileConfig struct {
	Alignment   *string `toml:"alignment"`
	Spacing     *int64  `toml:"spacing"`
	ShowCPU     *bool   `toml:"show_cpu"`
	ShowRAM     *bool   `toml:"show_ram"`
	ShowOS      *bool   `toml:"show_os"`
	ShowBattery *bool   `toml:"show_battery"`
	ShowDisk    *bool   `toml:"show_disk"`
	ShowNetwork *bool   `toml:"show_network"`
}

// Load reads and decodes the config file at path. Every key is required,
// unknown keys are rejected and spacing must not be negative.
func (s *Store) Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read config file %s: %w", ErrIO, path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	s.log.Debug("loaded config", "path", path)
	return cfg, nil
}

func decode(data []byte) (Config, error) {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Config{}, err
	}

	var missing []string
	str := func(key string, p *string) string {
		if p == nil {
			missing = append(missing, key)
			return ""
		}
		return *p
	}
	flag := func(key string, p *bool) bool {
		if p == nil {
			missing = append(missing, key)
			return false
		}
		return *p
	}

	cfg := Config{
		Alignment:   str("alignment", fc.Alignment),
		ShowCPU:     flag("show_cpu", fc.ShowCPU),
		ShowRAM:     flag("show_ram", fc.ShowRAM),
		ShowOS:      flag("show_os", fc.ShowOS),
		ShowBattery: flag("show_battery", fc.ShowBattery),
		ShowDisk:    flag("show_disk", fc.ShowDisk),
		ShowNetwork: flag("show_network", fc.ShowNetwork),
	}
	if fc.Spacing == nil {
		missing = append(missing, "spacing")
	} else {
		if *fc.Spacing < 0 {
			return Config{}, fmt.Errorf("spacing must not be negative, got %d", *fc.Spacing)
		}
		if int64(int(*fc.Spacing)) != *fc.Spacing {
			return Config{}, fmt.Errorf("spacing %d out of range", *fc.Spacing)
		}
		cfg.Spacing = int(*fc.Spacing)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required keys %v", missing)
	}
	return cfg, nil
}

// LoadOrInitialize loads the config at path, or generates it from the
// defaults when absent and returns those defaults without re-reading the
// file. A present but malformed file is reported, never replaced.
func (s *Store) LoadOrInitialize(path string) (Config, error) {
	ok, err := s.Exists(path)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		cfg := Default()
		if err := s.Generate(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	return s.Load(path)
}
