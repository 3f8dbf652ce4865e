// Package main provides the corefetch command-line tool: a block-letter
// banner followed by the host information sections enabled in the user's
// config file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"corefetch/config"
	"corefetch/console"
	"corefetch/display"
	"corefetch/sysinfo"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Level:           log.WarnLevel,
	})

	a := &app{
		env:      config.OSEnv{},
		provider: sysinfo.NewHost(logger),
		out:      os.Stdout,
		width:    console.Width(os.Stdout),
		log:      logger,
	}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// app carries the collaborators of a single run.
type app struct {
	env      config.Env
	provider sysinfo.Provider
	out      io.Writer
	width    int
	log      *log.Logger
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		noColor    bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Print a banner and host system information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				color.NoColor = true
			}
			if debug {
				a.log.SetLevel(log.DebugLevel)
			}
			return a.run(cmd.Context(), configPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file to use instead of ~/.config/"+config.AppName+"/config.toml")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

// run loads or creates the config, then prints the enabled sections.
func (a *app) run(ctx context.Context, configPath string) error {
	store := config.NewStore(a.env, a.out, a.log)

	path := configPath
	if path == "" {
		var err error
		if path, err = store.ResolvePath(); err != nil {
			return err
		}
	}

	cfg, err := store.LoadOrInitialize(path)
	if err != nil {
		return err
	}

	align, err := config.ParseAlignment(cfg.Alignment)
	if err != nil {
		a.log.Warn("falling back to left alignment", "path", path, "err", err)
		align = config.AlignLeft
	}

	w := console.NewLayout(console.NewColorWriter(a.out), align, cfg.Spacing, a.width)
	if err := display.New(cfg, a.provider, w, a.log).Render(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
