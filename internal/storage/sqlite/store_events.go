package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
)

// AppendEvent appends one journal entry and applies its projection effects
// in a single transaction, so indexers reading the projection tables never
// observe a journal entry without its derived state or vice versa.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(evt.Type)) == "" {
		return fmt.Errorf("event type is required")
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if len(evt.PayloadJSON) == 0 {
		evt.PayloadJSON = []byte("{}")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO ledger_events (timestamp, event_type, project_id, actor, payload_json)
VALUES (?, ?, ?, ?, ?)`,
		toMillis(evt.Timestamp), string(evt.Type), int64(evt.ProjectID), string(evt.Actor), string(evt.PayloadJSON),
	); err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	if err := s.applyProjection(ctx, tx, evt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append transaction: %w", err)
	}
	return nil
}

// applyProjection folds one event into the projection tables.
func (s *Store) applyProjection(ctx context.Context, tx *sql.Tx, evt event.Event) error {
	switch evt.Type {
	case event.TypeProjectCreated:
		var payload event.ProjectCreatedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO projects (id, name, description, creator, total_funding, contributor_count, active, created_at)
VALUES (?, ?, ?, ?, 0, 0, 1, ?)`,
			int64(evt.ProjectID), payload.Name, payload.Description, payload.Creator, toMillis(evt.Timestamp),
		); err != nil {
			return fmt.Errorf("project projection: %w", err)
		}
		return s.bumpLedger(ctx, tx, "UPDATE ledger SET project_count = project_count + 1 WHERE id = 1")

	case event.TypeContributionMade:
		var payload event.ContributionMadePayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		amount, err := toDBAmount(payload.Amount)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE contributions SET amount = amount + ? WHERE project_id = ? AND contributor = ?",
			amount, int64(evt.ProjectID), payload.Contributor)
		if err != nil {
			return fmt.Errorf("contribution projection: %w", err)
		}
		updated, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("contribution projection: %w", err)
		}
		if updated == 0 {
			// First contribution from this address; its position is the
			// post-contribution contributor count minus one.
			if _, err := tx.ExecContext(ctx, `
INSERT INTO contributions (project_id, position, contributor, amount)
VALUES (?, ?, ?, ?)`,
				int64(evt.ProjectID), payload.ContributorCount-1, payload.Contributor, amount,
			); err != nil {
				return fmt.Errorf("contribution projection: %w", err)
			}
		}
		totalFunding, err := toDBAmount(payload.TotalFunding)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE projects SET total_funding = ?, contributor_count = ? WHERE id = ?",
			totalFunding, payload.ContributorCount, int64(evt.ProjectID),
		); err != nil {
			return fmt.Errorf("project totals projection: %w", err)
		}
		return nil

	case event.TypePoolFunded:
		var payload event.PoolFundedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		pool, err := toDBAmount(payload.Pool)
		if err != nil {
			return err
		}
		return s.bumpLedger(ctx, tx, "UPDATE ledger SET matching_pool = ? WHERE id = 1", pool)

	case event.TypeMatchingFundsDistributed:
		var payload event.MatchingFundsDistributedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE projects SET active = 0, settled_at = ? WHERE id = ?",
			toMillis(evt.Timestamp), int64(evt.ProjectID),
		); err != nil {
			return fmt.Errorf("settlement projection: %w", err)
		}
		remaining, err := toDBAmount(payload.PoolRemaining)
		if err != nil {
			return err
		}
		return s.bumpLedger(ctx, tx, "UPDATE ledger SET matching_pool = ? WHERE id = 1", remaining)

	default:
		return fmt.Errorf("unknown event type %q", evt.Type)
	}
}

// bumpLedger runs a ledger-row update and fails when the singleton row is
// missing, which means EnsureLedger was never called for this database.
func (s *Store) bumpLedger(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ledger projection: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ledger projection: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ledger is not initialized")
	}
	return nil
}

// ListEvents returns journal entries in append order. A zero projectID
// selects all events; a zero limit means no limit.
func (s *Store) ListEvents(ctx context.Context, projectID domain.ProjectID, limit int) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := "SELECT id, timestamp, event_type, project_id, actor, payload_json FROM ledger_events"
	var args []any
	if projectID != 0 {
		query += " WHERE project_id = ?"
		args = append(args, int64(projectID))
	}
	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []event.Event
	for rows.Next() {
		var (
			id, timestamp, project int64
			eventType, actor       string
			payload                string
		)
		if err := rows.Scan(&id, &timestamp, &eventType, &project, &actor, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, event.Event{
			ID:          id,
			Type:        event.Type(eventType),
			Timestamp:   fromMillis(timestamp),
			ProjectID:   domain.ProjectID(project),
			Actor:       domain.Address(actor),
			PayloadJSON: []byte(payload),
		})
	}
	return out, rows.Err()
}
