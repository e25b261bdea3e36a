package service

import (
	"context"
	"math/bits"
	"strings"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
	apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"
)

// Contribute credits amount from the contributor to the given project.
// Repeat contributions from the same address accumulate on one record;
// the contributor count only grows on an address's first contribution.
func (s *Service) Contribute(ctx context.Context, id domain.ProjectID, contributor domain.Address, amount uint64) error {
	ctx, span := s.tracer.Start(ctx, "ledger.contribute")
	defer span.End()

	contributor = domain.Address(strings.TrimSpace(string(contributor)))
	if contributor == "" {
		return domain.ErrAddressEmpty
	}
	if amount == 0 {
		return domain.ErrContributionAmountInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.projectLocked(id)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !state.project.Active {
		err := errProjectSettled(id)
		span.RecordError(err)
		return err
	}

	newTotal, carry := bits.Add64(state.project.TotalFunding, amount, 0)
	if carry != 0 {
		span.RecordError(domain.ErrArithmeticOverflow)
		return domain.ErrArithmeticOverflow
	}

	// Stage the post-contribution record for the audit event before any
	// state is touched, so a journal failure leaves the ledger unchanged.
	staged := state.project
	staged.TotalFunding = newTotal
	if state.contributions.Amount(contributor) == 0 {
		staged.ContributorCount++
	}

	if s.journal != nil {
		evt := event.NewContributionMade(id, contributor, amount, staged, s.now())
		if err := s.journal.AppendEvent(ctx, evt); err != nil {
			err = apperrors.Wrap(apperrors.CodeStorageFailure, "journal contribution", err)
			span.RecordError(err)
			return err
		}
	}

	state.contributions.Add(contributor, amount)
	state.project = staged
	return nil
}

// UserContribution returns the cumulative amount the address contributed to
// the project, or zero when it never contributed.
func (s *Service) UserContribution(id domain.ProjectID, contributor domain.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, err := s.projectLocked(id)
	if err != nil {
		return 0, err
	}
	return state.contributions.Amount(contributor), nil
}

// ProjectContributors returns the project's contribution records in the
// order contributors first appeared.
func (s *Service) ProjectContributors(id domain.ProjectID) ([]domain.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, err := s.projectLocked(id)
	if err != nil {
		return nil, err
	}
	return state.contributions.Records(), nil
}
