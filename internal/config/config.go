// Package config holds gravclock's startup settings and loads them from
// viper (config file, environment and flags).
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"gravclock/internal/scene"
)

// Option names, shared by flags, environment (GRAVCLOCK_ prefix with
// dashes as underscores) and config file keys.
const (
	OptionNameSurfaceID    = "surface-id"
	OptionNameTimeSpeed    = "time-speed"
	OptionNameHourLength   = "hour-length"
	OptionNameMinuteLength = "minute-length"
	OptionNameSecondLength = "second-length"
	OptionNameFPS          = "fps"
	OptionNameVerbosity    = "verbosity"
	OptionNameLogFile      = "log-file"
	OptionNameWidth        = "width"
	OptionNameHeight       = "height"
	OptionNameDPR          = "dpr"
)

// DefaultSurfaceID is the surface the hosts register and the animator binds to.
const DefaultSurfaceID = "canvas-scene"

// Config is the effective startup configuration.
type Config struct {
	SurfaceID    string  `yaml:"surface-id"`
	TimeSpeed    float64 `yaml:"time-speed"`
	HourLength   float64 `yaml:"hour-length"`
	MinuteLength float64 `yaml:"minute-length"`
	SecondLength float64 `yaml:"second-length"`
	FPS          float64 `yaml:"fps"`
	Verbosity    string  `yaml:"verbosity"`
	LogFile      string  `yaml:"log-file,omitempty"`

	// Headless surface geometry, in logical units.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DPR    float64 `yaml:"dpr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SurfaceID:    DefaultSurfaceID,
		TimeSpeed:    1,
		HourLength:   scene.DefaultLengths[scene.HourHand],
		MinuteLength: scene.DefaultLengths[scene.MinuteHand],
		SecondLength: scene.DefaultLengths[scene.SecondHand],
		FPS:          60,
		Verbosity:    "info",
		Width:        800,
		Height:       600,
		DPR:          1,
	}
}

// SetDefaults registers Default() on v so unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(OptionNameSurfaceID, d.SurfaceID)
	v.SetDefault(OptionNameTimeSpeed, d.TimeSpeed)
	v.SetDefault(OptionNameHourLength, d.HourLength)
	v.SetDefault(OptionNameMinuteLength, d.MinuteLength)
	v.SetDefault(OptionNameSecondLength, d.SecondLength)
	v.SetDefault(OptionNameFPS, d.FPS)
	v.SetDefault(OptionNameVerbosity, d.Verbosity)
	v.SetDefault(OptionNameLogFile, d.LogFile)
	v.SetDefault(OptionNameWidth, d.Width)
	v.SetDefault(OptionNameHeight, d.Height)
	v.SetDefault(OptionNameDPR, d.DPR)
}

// FromViper reads and validates the configuration held by v.
func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		SurfaceID:    strings.TrimSpace(v.GetString(OptionNameSurfaceID)),
		TimeSpeed:    v.GetFloat64(OptionNameTimeSpeed),
		HourLength:   v.GetFloat64(OptionNameHourLength),
		MinuteLength: v.GetFloat64(OptionNameMinuteLength),
		SecondLength: v.GetFloat64(OptionNameSecondLength),
		FPS:          v.GetFloat64(OptionNameFPS),
		Verbosity:    v.GetString(OptionNameVerbosity),
		LogFile:      v.GetString(OptionNameLogFile),
		Width:        v.GetFloat64(OptionNameWidth),
		Height:       v.GetFloat64(OptionNameHeight),
		DPR:          v.GetFloat64(OptionNameDPR),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.SurfaceID == "" {
		result = multierror.Append(result, fmt.Errorf("%s must not be empty", OptionNameSurfaceID))
	}
	if c.TimeSpeed < scene.MinTimeSpeed || c.TimeSpeed > scene.MaxTimeSpeed {
		result = multierror.Append(result, fmt.Errorf("%s %v out of range [%d, %d]",
			OptionNameTimeSpeed, c.TimeSpeed, scene.MinTimeSpeed, scene.MaxTimeSpeed))
	}
	lengths := []struct {
		name  string
		value float64
	}{
		{OptionNameHourLength, c.HourLength},
		{OptionNameMinuteLength, c.MinuteLength},
		{OptionNameSecondLength, c.SecondLength},
	}
	for _, l := range lengths {
		if l.value < scene.MinLength || l.value > scene.MaxLength {
			result = multierror.Append(result, fmt.Errorf("%s %v out of range [%d, %d]",
				l.name, l.value, scene.MinLength, scene.MaxLength))
		}
	}
	if c.FPS <= 0 {
		result = multierror.Append(result, fmt.Errorf("%s must be positive, got %v", OptionNameFPS, c.FPS))
	}
	if c.Width <= 0 || c.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("surface size %vx%v must be positive", c.Width, c.Height))
	}
	if c.DPR <= 0 {
		result = multierror.Append(result, fmt.Errorf("%s must be positive, got %v", OptionNameDPR, c.DPR))
	}
	return result.ErrorOrNil()
}

// Apply seeds s with the configured lengths and time speed.
func (c Config) Apply(s *scene.State) {
	s.Hand(scene.HourHand).Length = c.HourLength
	s.Hand(scene.MinuteHand).Length = c.MinuteLength
	s.Hand(scene.SecondHand).Length = c.SecondLength
	s.Config.TimeSpeed = c.TimeSpeed
}

// Marshal renders c as YAML, in the same shape a config file takes.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
