package store

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store/migrations"
)

const sqlCreateMigrationTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
)
`

const sqlMigrationApplied = `SELECT COUNT(*) FROM schema_migrations WHERE name = ?`

const sqlRecordMigration = `INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`

// Migrate applies the embedded migrations for the store's dialect. Each file
// runs at most once, in lexical order, inside its own transaction.
func (s *Store) Migrate(ctx context.Context) error {
	dir := "postgres"
	if s.driver == DriverSQLite {
		dir = "sqlite"
	}

	entries, err := fs.ReadDir(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := s.db.ExecContext(ctx, sqlCreateMigrationTable); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	for _, file := range files {
		ctx := observability.WithFields(ctx, observability.Field{Key: "migration", Value: file})

		var applied int
		if err := s.db.GetContext(ctx, &applied, s.db.Rebind(sqlMigrationApplied), file); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrations.FS, path.Join(dir, file))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			tx.Rollback()
			s.logger.Error(ctx, "failed to apply migration", err)
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlRecordMigration), file, s.now()); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", file, err)
		}
		s.logger.Info(ctx, "applied migration")
	}

	return nil
}
