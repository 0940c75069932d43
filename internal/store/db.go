package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"survey-dialer/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrPhoneNumberExists = errors.New("phone number already exists")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrInvalidCallStatus = errors.New("invalid call status")
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
	driver string
	now    func() time.Time
}

// New opens a connection pool for the given driver ("pgx" or "sqlite").
func New(driver, dataSourceName string, logger *observability.Logger) (Store, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return Store{}, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	db, err := sqlx.Open(driver, dataSourceName)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// A single connection keeps in-memory databases shared and
		// serializes writes the way SQLite expects.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return Store{}, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	return newStore(db, driver, logger), nil
}

func newStore(db *sqlx.DB, driver string, logger *observability.Logger) Store {
	return Store{
		db:     db,
		logger: logger,
		driver: driver,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}
