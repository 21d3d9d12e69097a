package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Create makes sure the slots table exists for the given driver
func Create(ctx context.Context, db *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("create schema: unsupported driver %q", driver)
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
