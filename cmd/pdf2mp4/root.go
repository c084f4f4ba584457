package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kuraken88/pdf2mp4/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "pdf2mp4",
		Short:         "Convert paged PDF documents into narrated videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConvertCommand(&configFlag))
	rootCmd.AddCommand(newWatchCommand(&configFlag))

	return rootCmd
}

// loadConfig resolves the run configuration: an explicit --config file, a
// config.yaml in the working directory, or pure defaults. A .env file is
// loaded first so API keys never live in the yaml.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	if path == "" {
		if _, err := os.Stat("config.yaml"); err != nil {
			return config.Default(), nil
		}
		path = "config.yaml"
	}

	return config.Load(path)
}
