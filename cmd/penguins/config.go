package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguins/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with as YAML. The source
is reported on stderr, so the output can be saved as a starting point:

  penguins config > ~/.penguins/configs/penguins.yaml

With --defaults the embedded default file is printed as is, comments included.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
