package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type enrollmentsRepo struct {
	q *gen.Queries
}

func (r *enrollmentsRepo) CreateEnrollment(ctx context.Context, e domain.Enrollment) error {
	err := r.q.CreateEnrollment(ctx, gen.CreateEnrollmentParams{
		ClientId:  e.ClientID,
		ProgramId: e.ProgramID,
	})
	return mapConstraint(err)
}

func (r *enrollmentsRepo) ListProgramsForClient(ctx context.Context, clientID string) ([]domain.Program, error) {
	rows, err := r.q.ListProgramsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return mapPrograms(rows), nil
}

func (r *enrollmentsRepo) ListClientsForProgram(ctx context.Context, programID string) ([]domain.Client, error) {
	rows, err := r.q.ListClientsForProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}
