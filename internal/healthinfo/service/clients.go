package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type ClientService struct {
	Store store.Store
}

// CreateClient stores a validated client. A taken id yields ErrDuplicateClient.
func (s *ClientService) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := s.Store.Clients().CreateClient(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Warn("client id already taken", "client_id", c.ID, "error", err)
			return domain.Client{}, fmt.Errorf("%w: %w", ErrDuplicateClient, err)
		}
		l.Error("failed to create client", "client_id", c.ID, "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return c, nil
}

// ListClients returns every client, or only those whose name contains query
// when it is non-empty.
func (s *ClientService) ListClients(ctx context.Context, query string) ([]domain.Client, error) {
	var (
		clients []domain.Client
		err     error
	)
	if query == "" {
		clients, err = s.Store.Clients().ListClients(ctx)
	} else {
		clients, err = s.Store.Clients().SearchClientsByName(ctx, query)
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "query", query, "error", err)
		return nil, err
	}
	return clients, nil
}

// GetClientDetail loads a client and the programs it is enrolled in. The two
// reads are not wrapped in a transaction.
func (s *ClientService) GetClientDetail(ctx context.Context, id string) (domain.ClientDetail, error) {
	l := slogx.FromContext(ctx)

	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientDetail{}, ErrClientNotFound
		}
		l.Error("failed to load client", "client_id", id, "error", err)
		return domain.ClientDetail{}, err
	}

	programs, err := s.Store.Enrollments().ListProgramsForClient(ctx, c.ID)
	if err != nil {
		l.Error("failed to load client programs", "client_id", id, "error", err)
		return domain.ClientDetail{}, err
	}

	return domain.ClientDetail{Client: c, Programs: programs}, nil
}
