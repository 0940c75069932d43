package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"survey-dialer/internal/observability"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TestDBType represents the type of database to use for testing
type TestDBType string

const (
	TestDBTypeSQLite   TestDBType = "sqlite"
	TestDBTypePostgres TestDBType = "postgres"
)

// TestDB wraps a test database instance
type TestDB struct {
	Store  Store
	dbType TestDBType
}

// SetupTestDB creates a migrated test database. An empty dbType falls back
// to TEST_DB_TYPE and then to an in-memory SQLite database.
func SetupTestDB(t *testing.T, dbType TestDBType) *TestDB {
	t.Helper()

	if dbType == "" {
		dbType = TestDBType(os.Getenv("TEST_DB_TYPE"))
		if dbType == "" {
			dbType = TestDBTypeSQLite
		}
	}

	logger := observability.NewLoggerFromZap(zap.NewNop())

	var (
		store Store
		err   error
	)
	switch dbType {
	case TestDBTypeSQLite:
		store, err = New(DriverSQLite, ":memory:", logger)
	case TestDBTypePostgres:
		store, err = New(DriverPostgres, postgresTestDSN(), logger)
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{Store: store, dbType: dbType}
	if dbType == TestDBTypePostgres {
		tdb.Truncate(t)
	}
	return tdb
}

// postgresTestDSN builds a connection string from TEST_DB_* variables
func postgresTestDSN() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		get("TEST_DB_USER", "survey"),
		get("TEST_DB_PASSWORD", "survey"),
		get("TEST_DB_HOST", "localhost"),
		get("TEST_DB_PORT", "5432"),
		get("TEST_DB_NAME", "survey_test"),
	)
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{"responses", "calls", "contacts", "campaigns"}
	}

	for _, table := range tables {
		query := fmt.Sprintf("DELETE FROM %s", table)
		if tdb.dbType == TestDBTypePostgres {
			query = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		}
		if _, err := tdb.Store.db.Exec(query); err != nil {
			if !strings.Contains(err.Error(), "does not exist") && !strings.Contains(err.Error(), "no such table") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.Store.db
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.Store.db.Exec(tdb.Store.db.Rebind(query), args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}
