package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/store"
)

func migrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close(db)
			}()

			if err := store.Migrate(db); err != nil {
				return err
			}

			logger.Info("Database schema migrated")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return err
		},
	}
}
