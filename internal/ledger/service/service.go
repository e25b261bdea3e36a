// Package service hosts the ledger state machine. One Service owns the
// admin capability, the matching pool, and every project's contribution
// records; a single lock serializes mutating operations so the ledger
// behaves as one indivisible state machine, while views read a consistent
// snapshot under the shared lock.
package service

import (
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/telemetry"
)

const tracerName = "ledger"

type projectState struct {
	project       domain.Project
	contributions *domain.Contributions
}

// Service is the quadratic funding ledger.
type Service struct {
	mu       sync.RWMutex
	admin    domain.Address
	pool     uint64
	projects []*projectState

	journal   storage.Journal
	telemetry *telemetry.Emitter
	payout    PayoutSink
	clock     func() time.Time
	tracer    trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithJournal attaches a durable journal; every successful mutation appends
// one audit event to it. A nil journal keeps the ledger memory-only.
func WithJournal(journal storage.Journal) Option {
	return func(s *Service) { s.journal = journal }
}

// WithTelemetry attaches an operational telemetry emitter.
func WithTelemetry(emitter *telemetry.Emitter) Option {
	return func(s *Service) { s.telemetry = emitter }
}

// WithPayoutSink sets the external transfer used by settlement. Without a
// sink, settlement records the payout but moves no funds, which is the mode
// used when an outer layer performs the actual transfer.
func WithPayoutSink(sink PayoutSink) Option {
	return func(s *Service) { s.payout = sink }
}

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// New creates a ledger with the given admin address. The admin is fixed for
// the life of the service; there is no transfer operation.
func New(admin domain.Address, opts ...Option) (*Service, error) {
	admin = domain.Address(strings.TrimSpace(string(admin)))
	if admin == "" {
		return nil, domain.ErrAddressEmpty
	}

	s := &Service{
		admin:  admin,
		clock:  time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Restore rebuilds a ledger from a projected snapshot, so a restarted
// process observes the last committed mutation.
func Restore(snap storage.LedgerSnapshot, opts ...Option) (*Service, error) {
	s, err := New(snap.Admin, opts...)
	if err != nil {
		return nil, err
	}

	s.pool = snap.MatchingPool
	s.projects = make([]*projectState, 0, len(snap.Projects))
	for _, ps := range snap.Projects {
		state := &projectState{
			project:       ps.Project,
			contributions: domain.NewContributions(),
		}
		for _, c := range ps.Contributions {
			state.contributions.Add(c.Contributor, c.Amount)
		}
		s.projects = append(s.projects, state)
	}
	return s, nil
}

// Admin returns the fixed admin address.
func (s *Service) Admin() domain.Address {
	return s.admin
}

// MatchingPool returns the current matching pool balance.
func (s *Service) MatchingPool() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pool
}

// ProjectCount returns the number of registered projects.
func (s *Service) ProjectCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.projects))
}

// projectLocked resolves a project id under the caller-held lock. Valid ids
// run from 1 through the current project count.
func (s *Service) projectLocked(id domain.ProjectID) (*projectState, error) {
	if id == 0 || uint64(id) > uint64(len(s.projects)) {
		return nil, errProjectNotFound(id)
	}
	return s.projects[id-1], nil
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}
