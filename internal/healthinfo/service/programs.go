package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type ProgramService struct {
	Store store.Store
}

// CreateProgram stores a validated program. A taken id yields ErrDuplicateProgram.
func (s *ProgramService) CreateProgram(ctx context.Context, p domain.Program) (domain.Program, error) {
	l := slogx.FromContext(ctx)

	if err := s.Store.Programs().CreateProgram(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Warn("program id already taken", "program_id", p.ID, "error", err)
			return domain.Program{}, fmt.Errorf("%w: %w", ErrDuplicateProgram, err)
		}
		l.Error("failed to create program", "program_id", p.ID, "error", err)
		return domain.Program{}, err
	}

	l.Info("program created", "program_id", p.ID)
	return p, nil
}

// GetProgram returns ErrProgramNotFound when the id is unknown.
func (s *ProgramService) GetProgram(ctx context.Context, id string) (domain.Program, error) {
	p, err := s.Store.Programs().GetProgramByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Program{}, ErrProgramNotFound
		}
		slogx.FromContext(ctx).Error("failed to load program", "program_id", id, "error", err)
		return domain.Program{}, err
	}
	return p, nil
}

func (s *ProgramService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.Store.Programs().ListPrograms(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list programs", "error", err)
		return nil, err
	}
	return programs, nil
}
