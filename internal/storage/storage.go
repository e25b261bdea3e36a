// Package storage defines the persistence interfaces for the ledger journal,
// projections, and operational telemetry.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Journal appends audit events to the durable ledger journal. The append is
// expected to commit the event and its projection effects atomically.
type Journal interface {
	AppendEvent(ctx context.Context, evt event.Event) error
}

// EventLister reads back journal entries for audits and indexers.
type EventLister interface {
	// ListEvents returns events in append order. A zero projectID selects
	// all events; a zero limit means no limit.
	ListEvents(ctx context.Context, projectID domain.ProjectID, limit int) ([]event.Event, error)
}

// ProjectState is one project's projection row plus its ordered
// contribution records.
type ProjectState struct {
	Project       domain.Project
	Contributions []domain.Contribution
}

// LedgerSnapshot is the full projected ledger state, used to rehydrate the
// in-memory service after a restart and by the audit tool.
type LedgerSnapshot struct {
	Admin        domain.Address
	MatchingPool uint64
	// Projects is ordered by id; Projects[i].Project.ID == i+1.
	Projects []ProjectState
}

// SnapshotStore loads the projected ledger state.
type SnapshotStore interface {
	LoadLedger(ctx context.Context) (LedgerSnapshot, error)
}

// TelemetryEvent captures an operational observation emitted during ledger
// command execution, kept alongside the journal for incident analysis.
type TelemetryEvent struct {
	Timestamp      time.Time
	EventName      string
	Severity       string
	ProjectID      domain.ProjectID
	Actor          domain.Address
	AttributesJSON []byte
}

// TelemetryStore persists operational telemetry records.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}
