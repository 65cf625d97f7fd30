package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguins/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Shows how many followers each level spawns, how they move and where
they appear, using the effective configuration.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Levels (config: %s)\n\n", source)
	printLevels(out, cfg)
	return nil
}

func printLevels(out io.Writer, cfg config.PenguinsConfig) {
	h := cfg.Screen.Height
	rows := []struct {
		level string
		pop   config.Population
		move  string
		band  string
	}{
		{"1", cfg.Levels.Start, "static", fmt.Sprintf("on screen, y in [0, %g)", h)},
		{"1 (F)", cfg.Levels.Refill, "static", fmt.Sprintf("on screen, y in [0, %g)", h)},
		{"2", cfg.Levels.Falling, "falling", fmt.Sprintf("above the screen, y in [%g, %g)", h, 2*h)},
		{"3", cfg.Levels.Rising, "rising", fmt.Sprintf("below the screen, y in [%g, 0)", -h)},
	}

	fmt.Fprintf(out, "  %-6s  %-9s  %-7s  %-5s  %s\n", "Level", "Followers", "Motion", "Scale", "Spawn")
	fmt.Fprintf(out, "  %-6s  %-9s  %-7s  %-5s  %s\n", "-----", "---------", "------", "-----", "-----")
	for _, r := range rows {
		fmt.Fprintf(out, "  %-6s  %-9d  %-7s  %-5g  %s\n", r.level, r.pop.Count, r.move, r.pop.Scale, r.band)
	}
	fmt.Fprintf(out, "\nDrift: %g units per frame. Level 3 stays empty once cleared.\n", cfg.Drift.Step)
}
