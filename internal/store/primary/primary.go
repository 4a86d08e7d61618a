// Package primary implements the relational stores (users, resumes, swipes)
// over database/sql. The default deployment runs on an embedded sqlite file;
// server deployments point the same code at postgres through the pgx stdlib
// driver.
package primary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"resumemash/internal/store"
)

// Supported driver names for NewStore.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Store implements store.UserStore, store.ResumeStore, store.SwipeStore and
// store.TrainingDataStore on a single database handle.
type Store struct {
	db     *sql.DB
	driver string
}

var (
	_ store.UserStore         = (*Store)(nil)
	_ store.ResumeStore       = (*Store)(nil)
	_ store.SwipeStore        = (*Store)(nil)
	_ store.TrainingDataStore = (*Store)(nil)
)

// NewStore opens the database, verifies connectivity and bootstraps the
// schema.
func NewStore(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStoreFromDB wraps an already-open handle (used by tests).
func NewStoreFromDB(ctx context.Context, db *sql.DB, driver string) (*Store, error) {
	s := &Store{db: db, driver: driver}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	idCol := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == DriverPostgres {
		idCol = "BIGSERIAL PRIMARY KEY"
	}
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, idCol),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS resumes (
			id %s,
			user_id BIGINT NOT NULL,
			filename TEXT NOT NULL,
			text TEXT NOT NULL,
			text_hash TEXT NOT NULL,
			job_field TEXT NOT NULL DEFAULT 'unspecified',
			uploaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, idCol),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS swipes (
			id %s,
			resume_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			label INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (resume_id, user_id)
		)`, idCol),
		`CREATE INDEX IF NOT EXISTS idx_resumes_job_field ON resumes (job_field)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_user ON resumes (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_swipes_resume ON swipes (resume_id)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// rebind rewrites ?-style placeholders into $n for postgres. Queries in this
// package never contain a literal question mark.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// insertReturningID runs an INSERT and returns the generated id, papering
// over the LastInsertId/RETURNING split between the two drivers.
func (s *Store) insertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	if s.driver == DriverPostgres {
		var id int64
		err := s.db.QueryRowContext(ctx, s.rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// isUniqueViolation matches the constraint errors both drivers produce for
// the swipes (resume_id, user_id) and users username uniques.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
