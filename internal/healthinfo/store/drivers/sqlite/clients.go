package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	err := r.q.CreateClient(ctx, gen.CreateClientParams{
		ID:   c.ID,
		Name: mapStringNull(c.Name),
		Dob:  mapStringNull(c.DOB),
	})
	return mapConstraint(err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}

func (r *clientsRepo) SearchClientsByName(ctx context.Context, substr string) ([]domain.Client, error) {
	rows, err := r.q.SearchClientsByName(ctx, substr)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}
