// Package event defines the durable audit events the ledger emits, one per
// successful mutation. External indexers and UIs consume them; the ledger
// never reads them back except for audits and rehydration checks.
package event

import (
	"encoding/json"
	"time"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
)

// Type identifies the type of a ledger event.
type Type string

const (
	// TypeProjectCreated records the registration of a project.
	TypeProjectCreated Type = "project.created"
	// TypeContributionMade records a contribution to a project.
	TypeContributionMade Type = "contribution.made"
	// TypePoolFunded records an admin top-up of the matching pool.
	TypePoolFunded Type = "pool.funded"
	// TypeMatchingFundsDistributed records the settlement of a project.
	TypeMatchingFundsDistributed Type = "matching_funds.distributed"
)

// Event is one entry in the append-only ledger journal.
type Event struct {
	// ID is the journal sequence number, assigned on append. Zero before
	// the event is persisted.
	ID int64
	// Type is the event type.
	Type Type
	// Timestamp is when the mutation committed, in UTC.
	Timestamp time.Time
	// ProjectID is the subject project, or zero for ledger-wide events.
	ProjectID domain.ProjectID
	// Actor is the address that triggered the mutation.
	Actor domain.Address
	// PayloadJSON carries the type-specific payload.
	PayloadJSON json.RawMessage
}
