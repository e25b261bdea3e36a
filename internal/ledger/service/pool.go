package service

import (
	"context"
	"math/bits"
	"strings"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
	apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"
)

// AddMatchingPool credits amount to the matching pool. Admin-only.
func (s *Service) AddMatchingPool(ctx context.Context, caller domain.Address, amount uint64) error {
	ctx, span := s.tracer.Start(ctx, "ledger.add_matching_pool")
	defer span.End()

	if domain.Address(strings.TrimSpace(string(caller))) != s.admin {
		span.RecordError(domain.ErrNotAdmin)
		return domain.ErrNotAdmin
	}
	if amount == 0 {
		return domain.ErrPoolAmountInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newPool, carry := bits.Add64(s.pool, amount, 0)
	if carry != 0 {
		span.RecordError(domain.ErrArithmeticOverflow)
		return domain.ErrArithmeticOverflow
	}

	if s.journal != nil {
		evt := event.NewPoolFunded(s.admin, amount, newPool, s.now())
		if err := s.journal.AppendEvent(ctx, evt); err != nil {
			err = apperrors.Wrap(apperrors.CodeStorageFailure, "journal pool funding", err)
			span.RecordError(err)
			return err
		}
	}

	s.pool = newPool
	return nil
}
