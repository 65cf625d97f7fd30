// penguins is a small arcade game: steer a penguin with the mouse and collect
// the follower penguins across three levels.
//
// Usage:
//
//	penguins play [frontend]  - Play in a window (default) or in the terminal
//	penguins list             - List available frontends
//	penguins levels           - Show the level table of the effective config
//	penguins config           - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config file
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
//	--mute              - Disable sound
//	--watch             - Reload tuning when the config file changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/penguins/internal/platform/tui"
	_ "github.com/vovakirdan/penguins/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
	flagWatch    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "penguins",
	Short: "Collect the penguins",
	Long: `Penguins is a small arcade game. Steer your penguin with the mouse and
collect every follower penguin. Level 1 followers stand still, level 2
followers drift down and level 3 followers drift up.

Available commands:
  play     - Play the game
  list     - Show available frontends
  levels   - Show the level table
  config   - Print the effective configuration

Examples:
  penguins play
  penguins play terminal --fps 30
  penguins play --seed 42 --mute
  penguins play --config ./configs/penguins.yaml --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (terminal frontend default: ~/.penguins/penguins.log)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the config file changes")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
