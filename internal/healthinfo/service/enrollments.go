package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type EnrollmentService struct {
	Store store.Store
}

// Enroll links a client to a program after checking both exist. The checks
// and the insert share one transaction.
//
// Returns ErrClientNotFound or ErrProgramNotFound for unknown references and
// ErrDuplicateEnrollment when the pair is already linked.
func (s *EnrollmentService) Enroll(ctx context.Context, e domain.Enrollment) (domain.Enrollment, error) {
	l := slogx.FromContext(ctx).With("client_id", e.ClientID, "program_id", e.ProgramID)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireClient(ctx, tx, e.ClientID); err != nil {
			return err
		}
		if err := requireProgram(ctx, tx, e.ProgramID); err != nil {
			return err
		}

		err := tx.Enrollments().CreateEnrollment(ctx, e)
		if !errors.Is(err, store.ErrReferenceNotFound) {
			return err
		}

		// The foreign key names no side; look again to pick the 404.
		if cerr := requireClient(ctx, tx, e.ClientID); cerr != nil {
			return cerr
		}
		return fmt.Errorf("%w: %w", ErrProgramNotFound, err)
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrClientNotFound), errors.Is(err, ErrProgramNotFound):
		return domain.Enrollment{}, err
	case errors.Is(err, store.ErrAlreadyExists):
		l.Warn("client already enrolled", "error", err)
		return domain.Enrollment{}, fmt.Errorf("%w: %w", ErrDuplicateEnrollment, err)
	default:
		l.Error("failed to create enrollment", "error", err)
		return domain.Enrollment{}, err
	}

	l.Info("client enrolled")
	return e, nil
}

func requireClient(ctx context.Context, st store.Store, id string) error {
	_, err := st.Clients().GetClientByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrClientNotFound
	}
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}
	return nil
}

func requireProgram(ctx context.Context, st store.Store, id string) error {
	_, err := st.Programs().GetProgramByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProgramNotFound
	}
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	return nil
}

// ListProgramClients returns the clients enrolled in a program, or
// ErrProgramNotFound when the program does not exist.
func (s *EnrollmentService) ListProgramClients(ctx context.Context, programID string) ([]domain.Client, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.Store.Programs().GetProgramByID(ctx, programID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		l.Error("failed to load program", "program_id", programID, "error", err)
		return nil, err
	}

	clients, err := s.Store.Enrollments().ListClientsForProgram(ctx, programID)
	if err != nil {
		l.Error("failed to list program clients", "program_id", programID, "error", err)
		return nil, err
	}
	return clients, nil
}
