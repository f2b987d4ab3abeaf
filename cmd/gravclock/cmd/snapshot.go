package cmd

import (
	"fmt"
	"image/png"
	"time"

	"github.com/spf13/cobra"

	"gravclock/internal/animator"
	"gravclock/internal/clock"
	"gravclock/internal/config"
	"gravclock/internal/scene"
	"gravclock/internal/surface"
)

const (
	optionNameOut    = "out"
	optionNameFrames = "frames"
	optionNameAt     = "at"
)

func (c *Command) initSnapshotCmd() {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames off screen and write the last one as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(c.config)
			if err != nil {
				return err
			}
			logger, err := streamLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString(optionNameOut)
			frames, _ := cmd.Flags().GetUint64(optionNameFrames)
			at, _ := cmd.Flags().GetString(optionNameAt)
			if frames == 0 {
				return fmt.Errorf("--%s must be at least 1", optionNameFrames)
			}

			var clk clock.Clock = clock.RealClock{}
			if at != "" {
				t, err := parseClock(at)
				if err != nil {
					return err
				}
				clk = clock.At(t)
			}

			reg := surface.NewRegistry()
			raster := surface.NewRaster(cfg.SurfaceID, cfg.Width, cfg.Height, cfg.DPR)
			reg.Register(raster)

			state := scene.New()
			cfg.Apply(state)

			var a *animator.Animator
			a, err = animator.New(cfg.SurfaceID, reg, state,
				animator.WithClock(clk),
				animator.WithLogger(logger),
				animator.WithContinue(func() bool { return a.Frames() < frames }),
			)
			if err != nil {
				return err
			}
			sched := animator.NewTickerScheduler(clk, cfg.FPS)
			if err := a.Start(sched); err != nil {
				return err
			}
			if err := sched.Run(cmd.Context()); err != nil {
				return err
			}

			f, err := c.fs.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, raster.Image()); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", out, a.Frames())
			return nil
		},
	}
	cmd.Flags().String(optionNameOut, "gravclock.png", "PNG file to write")
	cmd.Flags().Uint64(optionNameFrames, 1, "number of frames to render")
	cmd.Flags().String(optionNameAt, "", "render this time of day (HH:MM, HH:MM:SS or HH:MM:SS.mmm) instead of now")
	c.root.AddCommand(cmd)
}

var clockLayouts = []string{"15:04:05.000", "15:04:05", "15:04"}

// parseClock parses a time of day.
func parseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q, want HH:MM[:SS[.mmm]]", s)
}
