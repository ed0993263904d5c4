package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
)

var (
	ErrNotFound          = errors.New("store: not found")
	ErrAlreadyExists     = errors.New("store: already exists")
	ErrReferenceNotFound = errors.New("store: referenced row does not exist")
)

// Store is the root data access interface. Concrete drivers implement this
// and expose one sub-repository per table so callers cannot accidentally
// open transactions within transactions.
type Store interface {
	Programs() Programs
	Clients() Clients
	Enrollments() Enrollments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Programs interface {
	// CreateProgram inserts a program. Returns ErrAlreadyExists when the id is taken.
	CreateProgram(ctx context.Context, p domain.Program) error

	// GetProgramByID returns ErrNotFound when no program has the id.
	GetProgramByID(ctx context.Context, id string) (domain.Program, error)

	// ListPrograms returns every program ordered by id.
	ListPrograms(ctx context.Context) ([]domain.Program, error)
}

type Clients interface {
	// CreateClient inserts a client. Returns ErrAlreadyExists when the id is taken.
	CreateClient(ctx context.Context, c domain.Client) error

	// GetClientByID returns ErrNotFound when no client has the id.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns every client ordered by id.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// SearchClientsByName returns clients whose name contains substr.
	// Matching is case-sensitive.
	SearchClientsByName(ctx context.Context, substr string) ([]domain.Client, error)
}

type Enrollments interface {
	// CreateEnrollment links a client to a program. Returns ErrAlreadyExists
	// for a repeated pair and ErrReferenceNotFound when either side is missing.
	CreateEnrollment(ctx context.Context, e domain.Enrollment) error

	// ListProgramsForClient returns the programs a client is enrolled in,
	// ordered by program id.
	ListProgramsForClient(ctx context.Context, clientID string) ([]domain.Program, error)

	// ListClientsForProgram returns the clients enrolled in a program,
	// ordered by client id.
	ListClientsForProgram(ctx context.Context, programID string) ([]domain.Client, error)
}
