package main

import (
	"studyaid/internal/db"
	"studyaid/internal/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return db.Migrate(cmd.Context(), pool)
		},
	}
}
