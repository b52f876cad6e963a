package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pingpong/internal/config"
)

var (
	flagShowPaths   bool
	flagShowDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pingpong would play with, as YAML.

Files are searched in this order:
  1. --config <path>
  2. ~/.pingpong/configs/pingpong.yaml
  3. ./configs/pingpong.yaml
  4. built-in defaults

Examples:
  pingpong config
  pingpong config --paths
  pingpong config --default
  pingpong config > ~/.pingpong/configs/pingpong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowPaths, "paths", false, "List the config search paths instead")
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default config file, comments included")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowPaths {
		if flagConfig != "" {
			fmt.Println(flagConfig)
		}
		for _, p := range config.SearchPaths() {
			fmt.Println(p)
		}
		return
	}
	if flagShowDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadRuntime()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
