package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/internal/obslog"
	"github.com/quietstack/cadschedule/pkg/artifactstore"
	"github.com/quietstack/cadschedule/pkg/schedconfig"
)

var (
	configPath string
	dataDir    string
	logLevel   string

	logger *zap.Logger
	store  *artifactstore.Store
)

var rootCmd = &cobra.Command{
	Use:   "schedctl",
	Short: "Drive the cadschedule CPM pipeline from the command line",
	Long: `schedctl runs the Clean, Duration, Sequence, and Critical stages
against a working directory, or starts the same pipeline as an HTTP
server, mirroring the /v1 surface documented for schedsrv.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the working directory from config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the log level from config")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(sequenceCmd)
	rootCmd.AddCommand(criticalCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := obslog.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	store = artifactstore.New(cfg.DataDir)
	activeConfig = cfg
	return nil
}

var activeConfig *schedconfig.Config

func loadConfig() (*schedconfig.Config, error) {
	if configPath == "" {
		cfg := schedconfig.Default()
		return &cfg, nil
	}
	return schedconfig.LoadConfig(configPath)
}
