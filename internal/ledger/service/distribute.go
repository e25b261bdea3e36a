package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
	apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/telemetry"
)

// DistributeMatchingFunds settles a project: it computes the project's
// quadratic match, debits the pool, marks the project settled, and pays the
// creator the project's direct funding plus the match. The terminal flag and
// pool debit commit before the payout runs, so a reentrant or concurrent
// settlement of the same project is rejected by the active-project
// precondition; if the payout fails, both are rolled back and the operation
// has no effect.
//
// The returned amount is the match paid from the pool, excluding the
// project's own contributions.
func (s *Service) DistributeMatchingFunds(ctx context.Context, caller domain.Address, id domain.ProjectID) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.distribute_matching_funds")
	defer span.End()

	if domain.Address(strings.TrimSpace(string(caller))) != s.admin {
		span.RecordError(domain.ErrNotAdmin)
		return 0, domain.ErrNotAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.projectLocked(id)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	if s.pool == 0 {
		span.RecordError(domain.ErrPoolEmpty)
		return 0, domain.ErrPoolEmpty
	}
	if !state.project.Active {
		err := errProjectSettled(id)
		span.RecordError(err)
		return 0, err
	}

	matching, err := s.matchLocked(id)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	if matching > s.pool {
		err := errPoolInsufficient(matching)
		span.RecordError(err)
		return 0, err
	}

	// Commit the terminal state before the external payout: debit the pool
	// and retire the project, then transfer. A payout failure reverts both.
	settledAt := s.now()
	s.pool -= matching
	state.project.Active = false
	state.project.SettledAt = &settledAt

	if s.payout != nil {
		payoutTotal := state.project.TotalFunding + matching
		if err := s.payout.Transfer(ctx, state.project.Creator, payoutTotal); err != nil {
			s.pool += matching
			state.project.Active = true
			state.project.SettledAt = nil

			s.emitTelemetry(ctx, id, state.project.Creator, "ledger.payout_failed", telemetry.SeverityWarn, map[string]string{
				"amount": strconv.FormatUint(payoutTotal, 10),
				"error":  err.Error(),
			})
			wrapped := apperrors.Wrap(apperrors.CodePayoutFailed, "payout to project creator failed", err)
			span.RecordError(wrapped)
			return 0, wrapped
		}
	}

	if s.journal != nil {
		evt := event.NewMatchingFundsDistributed(id, s.admin, matching, state.project, s.pool, settledAt)
		if err := s.journal.AppendEvent(ctx, evt); err != nil {
			// The payout already happened; the settlement stands even
			// though the journal lags. Surface the fault loudly instead
			// of unwinding a transfer that cannot be unwound.
			s.emitTelemetry(ctx, id, state.project.Creator, "ledger.journal_lag", telemetry.SeverityError, map[string]string{
				"error": err.Error(),
			})
			wrapped := apperrors.Wrap(apperrors.CodeStorageFailure, "journal settlement", err)
			span.RecordError(wrapped)
			return matching, wrapped
		}
	}

	return matching, nil
}

// emitTelemetry records an operational observation; telemetry is
// diagnostics, so emission failures do not affect the operation outcome.
func (s *Service) emitTelemetry(ctx context.Context, id domain.ProjectID, actor domain.Address, name string, severity telemetry.Severity, attributes map[string]string) {
	if s.telemetry == nil {
		return
	}
	payload, _ := json.Marshal(attributes)
	_ = s.telemetry.Emit(ctx, storage.TelemetryEvent{
		EventName:      name,
		Severity:       string(severity),
		ProjectID:      id,
		Actor:          actor,
		AttributesJSON: payload,
	})
}
