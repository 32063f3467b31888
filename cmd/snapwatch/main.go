package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/weaversoft/snapwatch/app"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/pkg/logger"
)

var (
	configName string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "snapwatch",
	Short: "Pod-lifecycle monitoring and checkpoint-trigger orchestration engine",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin API server and the watcher engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.InitLogger()

		restApp, err := app.NewRestApp(configName, configPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to assemble application")
			return err
		}
		if cfg := config.GetConfig(); cfg != nil {
			logger.SetLevel(cfg.Logging.Level)
		}

		restApp.Run()
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&configName, "config-name", "", "config file name without extension (default snapwatch_config)")
	serveCmd.Flags().StringVar(&configPath, "config-path", "", "directory searched for the config file before the built-in config dir")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
