package main

import (
	"fmt"

	"studyaid/internal/config"
	"studyaid/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "studyaid",
		Short:         "StudyAid backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file")

	serveCmd := newServeCommand(&envFile)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newMigrateCommand(&envFile))

	// Без подкоманды запускаем сервер.
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	return rootCmd
}

// loadConfig читает и проверяет конфиг, поднимает логгер и печатает предупреждения.
func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.LoadConfigFrom(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Error("Невалидная конфигурация", zap.Error(err))
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	for _, w := range warnings {
		logger.Log.Warn("Конфигурация", zap.String("warning", w))
	}
	return cfg, nil
}
