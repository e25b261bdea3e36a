package service

import (
	"context"
	"math/bits"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
)

// QuadraticMatch reports the match the project would receive if the pool
// were distributed against the current ledger state. It is a pure view:
// repeated calls with no intervening mutation return the same value.
func (s *Service) QuadraticMatch(ctx context.Context, id domain.ProjectID) (uint64, error) {
	_, span := s.tracer.Start(ctx, "ledger.quadratic_match")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	matching, err := s.matchLocked(id)
	if err != nil {
		span.RecordError(err)
	}
	return matching, err
}

// matchLocked computes the quadratic match under the caller-held lock.
//
// A settled project or one with no contributors matches zero, and only
// active projects with at least one contributor weigh into the aggregate
// score, so settled projects drop out of the denominator as soon as they
// settle.
func (s *Service) matchLocked(id domain.ProjectID) (uint64, error) {
	state, err := s.projectLocked(id)
	if err != nil {
		return 0, err
	}
	if !state.project.Active || state.contributions.Len() == 0 {
		return 0, nil
	}

	score, err := state.contributions.QuadraticScore()
	if err != nil {
		return 0, err
	}

	var totalScore uint64
	for _, p := range s.projects {
		if !p.project.Active || p.contributions.Len() == 0 {
			continue
		}
		projectScore, err := p.contributions.QuadraticScore()
		if err != nil {
			return 0, err
		}
		var carry uint64
		totalScore, carry = bits.Add64(totalScore, projectScore, 0)
		if carry != 0 {
			return 0, domain.ErrArithmeticOverflow
		}
	}

	return domain.MatchAmount(score, totalScore, s.pool)
}
