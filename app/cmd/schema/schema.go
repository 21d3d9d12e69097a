package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ribgsilva/note-board/persistence/v1/schema"
	"github.com/ribgsilva/note-board/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command groups the commands managing the slots table of the sql storage driver
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the slots table used by the sql storage driver",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := open(cmd.Context(), sys.R.Log)
			if err != nil {
				return err
			}
			defer closeDB()

			cmd.Println("creating schema")
			if err := schema.Create(cmd.Context(), db, sys.Configs.Database.Driver); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
			cmd.Println("created schema")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := open(cmd.Context(), sys.R.Log)
			if err != nil {
				return err
			}
			defer closeDB()

			cmd.Println("deleting schema")
			if err := schema.Drop(cmd.Context(), db); err != nil {
				return fmt.Errorf("failed to delete schema: %w", err)
			}
			cmd.Println("deleted schema")
			return nil
		},
	})

	return cmd
}

// open returns sys.R.Database when already set, otherwise a new connection closed by the returned func
func open(ctx context.Context, log *zap.SugaredLogger) (*sql.DB, func(), error) {
	if sys.R.Database != nil {
		return sys.R.Database, func() {}, nil
	}

	db, err := sql.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	log.Debugw("schema", "driver", sys.Configs.Database.Driver)

	return db, func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}, nil
}
