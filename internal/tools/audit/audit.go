// Package audit verifies a ledger database offline: it replays the journal,
// recomputes the invariants the ledger maintains at runtime, and reports any
// divergence between journal and projections.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/event"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage/sqlite"
)

// Config holds audit command configuration.
type Config struct {
	DBPath     string        `env:"QF_LEDGER_DB_PATH"`
	Timeout    time.Duration `env:"QF_AUDIT_TIMEOUT" envDefault:"1m"`
	JSONOutput bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "ledger.db")
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to ledger sqlite database (default: QF_LEDGER_DB_PATH or data/ledger.db)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output a JSON report")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Report summarizes one audit pass.
type Report struct {
	Projects     int      `json:"projects"`
	Events       int      `json:"events"`
	MatchingPool uint64   `json:"matching_pool"`
	Violations   []string `json:"violations,omitempty"`
}

// Run executes the audit command against the configured database.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			fmt.Fprintf(errOut, "Error: close store: %v\n", closeErr)
		}
	}()

	snap, err := store.LoadLedger(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("ledger is not initialized at %s", cfg.DBPath)
		}
		return err
	}

	events, err := store.ListEvents(ctx, 0, 0)
	if err != nil {
		return err
	}

	report := Verify(snap, events)

	if cfg.JSONOutput {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
	} else {
		fmt.Fprintf(out, "ledger audit: %d projects, %d events, pool=%d\n",
			report.Projects, report.Events, report.MatchingPool)
		for _, v := range report.Violations {
			fmt.Fprintf(out, "violation: %s\n", v)
		}
	}

	if len(report.Violations) > 0 {
		return fmt.Errorf("audit found %d violation(s)", len(report.Violations))
	}
	fmt.Fprintln(out, "ok")
	return nil
}

// Verify checks the projected snapshot against the journal and the ledger's
// core invariants.
func Verify(snap storage.LedgerSnapshot, events []event.Event) Report {
	report := Report{
		Projects:     len(snap.Projects),
		Events:       len(events),
		MatchingPool: snap.MatchingPool,
	}
	addViolation := func(format string, args ...any) {
		report.Violations = append(report.Violations, fmt.Sprintf(format, args...))
	}

	// Per-project accounting invariants.
	for i, ps := range snap.Projects {
		p := ps.Project
		if p.ID != domain.ProjectID(i+1) {
			addViolation("project at index %d has id %d, want %d", i, p.ID, i+1)
		}

		var total uint64
		seen := make(map[domain.Address]bool, len(ps.Contributions))
		for _, c := range ps.Contributions {
			if c.Amount == 0 {
				addViolation("project %d has a zero-amount record for %s", p.ID, c.Contributor)
			}
			if seen[c.Contributor] {
				addViolation("project %d has duplicate records for %s", p.ID, c.Contributor)
			}
			seen[c.Contributor] = true
			total += c.Amount
		}
		if total != p.TotalFunding {
			addViolation("project %d total funding %d != contribution sum %d", p.ID, p.TotalFunding, total)
		}
		if len(seen) != p.ContributorCount {
			addViolation("project %d contributor count %d != distinct addresses %d", p.ID, p.ContributorCount, len(seen))
		}
	}

	// Journal replay: pool conservation and one-way settlement.
	var funded, distributed uint64
	created := 0
	settlements := make(map[domain.ProjectID]int)
	for _, evt := range events {
		switch evt.Type {
		case event.TypeProjectCreated:
			created++
		case event.TypePoolFunded:
			var payload event.PoolFundedPayload
			if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
				addViolation("event %d has undecodable payload: %v", evt.ID, err)
				continue
			}
			funded += payload.Amount
		case event.TypeMatchingFundsDistributed:
			var payload event.MatchingFundsDistributedPayload
			if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
				addViolation("event %d has undecodable payload: %v", evt.ID, err)
				continue
			}
			distributed += payload.MatchingAmount
			settlements[evt.ProjectID]++
		}
	}

	if created != len(snap.Projects) {
		addViolation("journal has %d project creations, projections have %d projects", created, len(snap.Projects))
	}
	if distributed > funded {
		addViolation("distributed matching %d exceeds pool funding %d", distributed, funded)
	}
	if expected := funded - distributed; distributed <= funded && snap.MatchingPool != expected {
		addViolation("matching pool %d != funded-distributed %d", snap.MatchingPool, expected)
	}

	for _, ps := range snap.Projects {
		p := ps.Project
		count := settlements[p.ID]
		if p.Active && count != 0 {
			addViolation("active project %d has %d settlement events", p.ID, count)
		}
		if !p.Active && count != 1 {
			addViolation("settled project %d has %d settlement events, want 1", p.ID, count)
		}
	}

	return report
}
