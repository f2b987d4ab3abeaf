package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gravclock/internal/animator"
	"gravclock/internal/config"
	"gravclock/internal/scene"
)

func (c *Command) initAnglesCmd() {
	cmd := &cobra.Command{
		Use:   "angles",
		Short: "Print the hand angles, in radians, for a time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(c.config)
			if err != nil {
				return err
			}
			now := time.Now()
			if at, _ := cmd.Flags().GetString(optionNameAt); at != "" {
				if now, err = parseClock(at); err != nil {
					return err
				}
			}
			angles := animator.ComputeAngles(now, cfg.TimeSpeed)
			for i, a := range angles {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %.6f\n", scene.HandName(i), a)
			}
			return nil
		},
	}
	cmd.Flags().String(optionNameAt, "", "time of day (HH:MM, HH:MM:SS or HH:MM:SS.mmm), default now")
	c.root.AddCommand(cmd)
}
