package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"gravclock/internal/config"
	"gravclock/internal/logging"
	"gravclock/internal/scene"
	"gravclock/internal/tui"
)

func (c *Command) initRunCmd() {
	run := func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromViper(c.config)
		if err != nil {
			return err
		}
		logger, closeLog, err := c.fileLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		state := scene.New()
		cfg.Apply(state)
		logger.Infof("gravclock %s: %s", Version, state)
		return tui.Run(cfg, state, logger)
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the clock in the terminal",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	c.root.AddCommand(cmd)
	c.root.Args = cobra.NoArgs
	c.root.RunE = run
}

// fileLogger logs to the configured log file, or nowhere. The terminal
// is owned by the clock while it runs.
func (c *Command) fileLogger(cfg config.Config) (logging.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := c.fs.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.FromVerbosity(f, cfg.Verbosity)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// streamLogger logs to w at the configured verbosity.
func streamLogger(w io.Writer, cfg config.Config) (logging.Logger, error) {
	return logging.FromVerbosity(w, cfg.Verbosity)
}
