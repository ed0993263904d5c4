package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db *sql.DB
	q  *gen.Queries
}

// DSN builds a connection string for the database file at path with foreign
// keys enforced on every pooled connection. The path is percent-encoded so
// '?' and '#' in file names stay part of the name.
func DSN(path string) string {
	if path == ":memory:" {
		return path
	}
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is its own database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStoreFromDB(db), nil
}

// NewStoreFromDB wraps an already opened handle. Migrations are not applied.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{
		db: db,
		q:  gen.New(db),
	}
}

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the pool for collectors that read its stats.
func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, committing when fn succeeds.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Programs() store.Programs       { return &programsRepo{q: s.q} }
func (s *Store) Clients() store.Clients         { return &clientsRepo{q: s.q} }
func (s *Store) Enrollments() store.Enrollments { return &enrollmentsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates SQLite constraint violations into store sentinels.
// The driver error stays in the chain for logging.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %w", store.ErrReferenceNotFound, err)
	}

	// Extended codes are not always reported; fall back to the message.
	if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "FOREIGN KEY"):
			return fmt.Errorf("%w: %w", store.ErrReferenceNotFound, err)
		case strings.Contains(msg, "UNIQUE"), strings.Contains(msg, "PRIMARY KEY"):
			return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
		}
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func mapProgram(row gen.Program) domain.Program {
	return domain.Program{
		ID:   row.ID,
		Name: mapNullString(row.Name),
	}
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:   row.ID,
		Name: mapNullString(row.Name),
		DOB:  mapNullString(row.Dob),
	}
}

func mapPrograms(rows []gen.Program) []domain.Program {
	programs := make([]domain.Program, len(rows))
	for i, row := range rows {
		programs[i] = mapProgram(row)
	}
	return programs
}

func mapClients(rows []gen.Client) []domain.Client {
	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		clients[i] = mapClient(row)
	}
	return clients
}
