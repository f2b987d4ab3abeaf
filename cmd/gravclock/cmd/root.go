package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gravclock/internal/config"
)

// Version is set at build time.
var Version = "dev"

const configName = ".gravclock"

// Command is the gravclock command tree with its configuration.
type Command struct {
	root    *cobra.Command
	config  *viper.Viper
	fs      afero.Fs
	cfgFile string
	homeDir string
}

// Option configures a Command.
type Option func(*Command)

// WithArgs sets the command line arguments, without the program name.
func WithArgs(a ...string) Option {
	return func(c *Command) { c.root.SetArgs(a) }
}

// WithOutput directs command output to w.
func WithOutput(w io.Writer) Option {
	return func(c *Command) {
		c.root.SetOut(w)
		c.root.SetErr(w)
	}
}

// WithFs sets the filesystem snapshots and log files are written to.
func WithFs(fs afero.Fs) Option {
	return func(c *Command) { c.fs = fs }
}

// WithHomeDir sets the directory searched for the default config file.
func WithHomeDir(dir string) Option {
	return func(c *Command) { c.homeDir = dir }
}

// New builds the command tree.
func New(opts ...Option) (c *Command, err error) {
	c = &Command{
		root: &cobra.Command{
			Use:   "gravclock",
			Short: "An analog clock whose hands keep falling",
			Long: `gravclock draws an analog clock in the terminal. Every frame the hands
pick up speed from a constant "gravity" while their angles are read from
the wall clock. A debug panel tunes hand lengths and the time speed.`,
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()
	c.initRunCmd()
	c.initSnapshotCmd()
	c.initAnglesCmd()
	c.initConfigCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *Command) Execute() error {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() error {
	c, err := New()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *Command) initGlobalFlags() {
	d := config.Default()
	f := c.root.PersistentFlags()
	f.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.gravclock.yaml)")
	f.String(config.OptionNameSurfaceID, d.SurfaceID, "id of the drawing surface the clock binds to")
	f.Float64(config.OptionNameTimeSpeed, d.TimeSpeed, "time speed multiplier, 0 to 10")
	f.Float64(config.OptionNameHourLength, d.HourLength, "hour hand length in pixels, 0 to 200")
	f.Float64(config.OptionNameMinuteLength, d.MinuteLength, "minute hand length in pixels, 0 to 200")
	f.Float64(config.OptionNameSecondLength, d.SecondLength, "second hand length in pixels, 0 to 200")
	f.Float64(config.OptionNameFPS, d.FPS, "frames per second")
	f.String(config.OptionNameVerbosity, d.Verbosity, "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
	f.String(config.OptionNameLogFile, d.LogFile, "file to append logs to (the terminal belongs to the clock)")
	f.Float64(config.OptionNameWidth, d.Width, "headless surface width in pixels")
	f.Float64(config.OptionNameHeight, d.Height, "headless surface height in pixels")
	f.Float64(config.OptionNameDPR, d.DPR, "headless surface device pixel ratio")
}

func (c *Command) initConfig() error {
	cfg := viper.New()
	cfg.SetFs(c.fs)
	config.SetDefaults(cfg)
	if c.cfgFile != "" {
		// Use config file from the flag.
		cfg.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".gravclock" (without extension).
		cfg.AddConfigPath(c.homeDir)
		cfg.SetConfigName(configName)
	}

	// Environment
	cfg.SetEnvPrefix("gravclock")
	cfg.AutomaticEnv() // read in environment variables that match
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := cfg.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}

	// If a config file is found, read it in.
	if err := cfg.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = cfg
	return nil
}

func (c *Command) setHomeDir() error {
	if c.homeDir != "" {
		return nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}
