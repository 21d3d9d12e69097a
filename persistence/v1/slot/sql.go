package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SQL keeps the slot as a row of the slots table.
type SQL struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
}

// NewSQL wraps db, opened with the database/sql driver named driver.
// The slots table must already exist, see the schema package.
func NewSQL(db *sql.DB, driver string, timeout time.Duration) *SQL {
	return &SQL{db: db, driver: driver, timeout: timeout}
}

func (s *SQL) Read(ctx context.Context, key string) (string, error) {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	var payload string
	err := s.db.QueryRowContext(dbCtx, s.rebind("SELECT payload FROM slots WHERE slot_key = ?"), key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrAbsent
	}
	if err != nil {
		return "", fmt.Errorf("failed to query slot %s: %w", key, err)
	}
	return payload, nil
}

// Write replaces the row of key in a single transaction.
func (s *SQL) Write(ctx context.Context, key, value string) error {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	tx, err := s.db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin slot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, s.rebind("DELETE FROM slots WHERE slot_key = ?"), key); err != nil {
		return fmt.Errorf("failed to exec slot delete stmt: %w", err)
	}
	n := time.Now().UTC()
	if _, err := tx.ExecContext(dbCtx, s.rebind("INSERT INTO slots (slot_key, payload, updated_at) VALUES (?, ?, ?)"), key, value, n); err != nil {
		return fmt.Errorf("failed to exec slot insert stmt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit slot tx: %w", err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind turns ? placeholders into $n for postgres
func (s *SQL) rebind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
