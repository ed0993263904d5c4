package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type programsRepo struct {
	q *gen.Queries
}

func (r *programsRepo) CreateProgram(ctx context.Context, p domain.Program) error {
	err := r.q.CreateProgram(ctx, gen.CreateProgramParams{
		ID:   p.ID,
		Name: mapStringNull(p.Name),
	})
	return mapConstraint(err)
}

func (r *programsRepo) GetProgramByID(ctx context.Context, id string) (domain.Program, error) {
	row, err := r.q.GetProgramByID(ctx, id)
	if err != nil {
		return domain.Program{}, mapNotFound(err)
	}
	return mapProgram(row), nil
}

func (r *programsRepo) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := r.q.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return mapPrograms(rows), nil
}
