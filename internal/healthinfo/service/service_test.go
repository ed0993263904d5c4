package service_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "health.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestProgramService(t *testing.T) {
	ctx := context.Background()
	svc := &service.ProgramService{Store: newStore(t)}

	created, err := svc.CreateProgram(ctx, domain.Program{ID: "p1", Name: "Diabetes Care"})
	require.NoError(t, err)
	require.Equal(t, domain.Program{ID: "p1", Name: "Diabetes Care"}, created)

	_, err = svc.CreateProgram(ctx, domain.Program{ID: "p1", Name: "Again"})
	require.ErrorIs(t, err, service.ErrDuplicateProgram)

	got, err := svc.GetProgram(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Diabetes Care", got.Name)

	_, err = svc.GetProgram(ctx, "p404")
	require.ErrorIs(t, err, service.ErrProgramNotFound)

	all, err := svc.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestClientService(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	clients := &service.ClientService{Store: st}
	enrollments := &service.EnrollmentService{Store: st}
	programs := &service.ProgramService{Store: st}

	for _, c := range []domain.Client{
		{ID: "c1", Name: "Jane Doe", DOB: "1990-01-01"},
		{ID: "c2", Name: "Janet Roe", DOB: "1980-01-01"},
		{ID: "c3", Name: "Bob", DOB: "1970-01-01"},
	} {
		_, err := clients.CreateClient(ctx, c)
		require.NoError(t, err)
	}

	t.Run("duplicate", func(t *testing.T) {
		_, err := clients.CreateClient(ctx, domain.Client{ID: "c1", Name: "x", DOB: "2000-01-01"})
		require.ErrorIs(t, err, service.ErrDuplicateClient)
	})

	t.Run("list all", func(t *testing.T) {
		got, err := clients.ListClients(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("search", func(t *testing.T) {
		got, err := clients.ListClients(ctx, "Jan")
		require.NoError(t, err)
		require.Len(t, got, 2)

		got, err = clients.ListClients(ctx, "jan")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("detail", func(t *testing.T) {
		_, err := programs.CreateProgram(ctx, domain.Program{ID: "p1", Name: "Diabetes Care"})
		require.NoError(t, err)
		_, err = enrollments.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "p1"})
		require.NoError(t, err)

		detail, err := clients.GetClientDetail(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", detail.Name)
		require.Equal(t, []domain.Program{{ID: "p1", Name: "Diabetes Care"}}, detail.Programs)

		detail, err = clients.GetClientDetail(ctx, "c3")
		require.NoError(t, err)
		require.Empty(t, detail.Programs)
	})

	t.Run("detail missing", func(t *testing.T) {
		_, err := clients.GetClientDetail(ctx, "nobody")
		require.ErrorIs(t, err, service.ErrClientNotFound)
	})
}

func TestEnrollmentService(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	svc := &service.EnrollmentService{Store: st}

	_, err := (&service.ProgramService{Store: st}).CreateProgram(ctx, domain.Program{ID: "p1", Name: "HIV"})
	require.NoError(t, err)
	_, err = (&service.ClientService{Store: st}).CreateClient(ctx, domain.Client{ID: "c1", Name: "Jane", DOB: "1990-01-01"})
	require.NoError(t, err)

	t.Run("enroll", func(t *testing.T) {
		e, err := svc.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "p1"})
		require.NoError(t, err)
		require.Equal(t, domain.Enrollment{ClientID: "c1", ProgramID: "p1"}, e)
	})

	t.Run("twice", func(t *testing.T) {
		_, err := svc.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "p1"})
		require.ErrorIs(t, err, service.ErrDuplicateEnrollment)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.Enroll(ctx, domain.Enrollment{ClientID: "ghost", ProgramID: "p1"})
		require.ErrorIs(t, err, service.ErrClientNotFound)
	})

	t.Run("unknown program", func(t *testing.T) {
		_, err := svc.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "ghost"})
		require.ErrorIs(t, err, service.ErrProgramNotFound)
	})

	t.Run("foreign key violation maps to not found", func(t *testing.T) {
		racy := &service.EnrollmentService{Store: vanishingRefStore{Store: st}}

		_, err := racy.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "p1"})
		require.ErrorIs(t, err, service.ErrProgramNotFound)
		require.ErrorIs(t, err, store.ErrReferenceNotFound)
	})

	t.Run("program clients", func(t *testing.T) {
		got, err := svc.ListProgramClients(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, []domain.Client{{ID: "c1", Name: "Jane", DOB: "1990-01-01"}}, got)

		_, err = svc.ListProgramClients(ctx, "ghost")
		require.ErrorIs(t, err, service.ErrProgramNotFound)
	})
}

func TestServices_StoreFailure(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("database is locked")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM clients WHERE id").WillReturnError(errBoom)

	svc := &service.ClientService{Store: sqlite.NewStoreFromDB(db)}
	_, err = svc.GetClientDetail(ctx, "c1")
	require.ErrorIs(t, err, errBoom)
	require.NotErrorIs(t, err, service.ErrClientNotFound)
}

// vanishingRefStore fails every enrollment insert with a foreign key
// violation, as if a referenced row disappeared after it was checked.
type vanishingRefStore struct{ store.Store }

func (s vanishingRefStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(vanishingRefTx{Tx: tx})
	})
}

type vanishingRefTx struct{ store.Tx }

func (vanishingRefTx) Enrollments() store.Enrollments { return vanishingRefEnrollments{} }

type vanishingRefEnrollments struct{ store.Enrollments }

func (vanishingRefEnrollments) CreateEnrollment(context.Context, domain.Enrollment) error {
	return fmt.Errorf("%w: FOREIGN KEY constraint failed", store.ErrReferenceNotFound)
}

func TestEnroll_StoreFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("disk I/O error")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM clients WHERE id").WillReturnError(errBoom)
	mock.ExpectRollback()

	svc := &service.EnrollmentService{Store: sqlite.NewStoreFromDB(db)}
	_, err = svc.Enroll(ctx, domain.Enrollment{ClientID: "c1", ProgramID: "p1"})
	require.ErrorIs(t, err, errBoom)
	require.NotErrorIs(t, err, service.ErrClientNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
