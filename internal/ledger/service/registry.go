package service

import (
	"context"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
	apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"
)

// CreateProject registers a new project and returns its assigned id.
func (s *Service) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.ProjectID, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.create_project")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.ProjectID(len(s.projects) + 1)
	project, err := domain.NewProject(id, input, s.clock)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	if s.journal != nil {
		if err := s.journal.AppendEvent(ctx, event.NewProjectCreated(id, project)); err != nil {
			err = apperrors.Wrap(apperrors.CodeStorageFailure, "journal project creation", err)
			span.RecordError(err)
			return 0, err
		}
	}

	s.projects = append(s.projects, &projectState{
		project:       project,
		contributions: domain.NewContributions(),
	})
	return id, nil
}

// Project returns a copy of the project record for the given id.
func (s *Service) Project(id domain.ProjectID) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, err := s.projectLocked(id)
	if err != nil {
		return domain.Project{}, err
	}
	return state.project, nil
}
