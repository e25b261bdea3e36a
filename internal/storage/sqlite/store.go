// Package sqlite provides the SQLite-backed ledger journal and projections.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/storage/sqlitemigrate"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage"
	"github.com/vishalnayak-hash/Quadratic-Funding/internal/storage/sqlite/migrations"
)

// Store provides a SQLite-backed store implementing the storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite ledger store at the provided path and applies embedded
// migrations before handing the store to higher layers.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.LedgerFS, "ledger"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// EnsureLedger initializes the singleton ledger row with the given admin on
// first use and returns the stored admin address. The admin is immutable: a
// later call with a different address returns the original, and it is the
// caller's responsibility to treat a mismatch as a configuration error.
func (s *Store) EnsureLedger(ctx context.Context, admin domain.Address) (domain.Address, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(admin)) == "" {
		return "", fmt.Errorf("admin address is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		"INSERT OR IGNORE INTO ledger (id, admin) VALUES (1, ?)", string(admin),
	); err != nil {
		return "", fmt.Errorf("ensure ledger row: %w", err)
	}

	var stored string
	row := s.sqlDB.QueryRowContext(ctx, "SELECT admin FROM ledger WHERE id = 1")
	if err := row.Scan(&stored); err != nil {
		return "", fmt.Errorf("read ledger admin: %w", err)
	}
	return domain.Address(stored), nil
}

// LoadLedger returns the projected ledger state for rehydration and audits.
// It returns storage.ErrNotFound when the ledger row was never initialized.
func (s *Store) LoadLedger(ctx context.Context) (storage.LedgerSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return storage.LedgerSnapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LedgerSnapshot{}, fmt.Errorf("storage is not configured")
	}

	var snap storage.LedgerSnapshot
	var admin string
	var pool, projectCount int64
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT admin, matching_pool, project_count FROM ledger WHERE id = 1")
	if err := row.Scan(&admin, &pool, &projectCount); err != nil {
		if err == sql.ErrNoRows {
			return storage.LedgerSnapshot{}, storage.ErrNotFound
		}
		return storage.LedgerSnapshot{}, fmt.Errorf("read ledger row: %w", err)
	}
	snap.Admin = domain.Address(admin)
	snapPool, err := fromDBAmount(pool)
	if err != nil {
		return storage.LedgerSnapshot{}, fmt.Errorf("ledger pool: %w", err)
	}
	snap.MatchingPool = snapPool

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, description, creator, total_funding, contributor_count, active, created_at, settled_at
FROM projects ORDER BY id`)
	if err != nil {
		return storage.LedgerSnapshot{}, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, totalFunding, createdAt int64
			contributorCount, active    int
			name, description, creator  string
			settledAt                   sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &description, &creator, &totalFunding, &contributorCount, &active, &createdAt, &settledAt); err != nil {
			return storage.LedgerSnapshot{}, fmt.Errorf("scan project: %w", err)
		}
		funding, err := fromDBAmount(totalFunding)
		if err != nil {
			return storage.LedgerSnapshot{}, fmt.Errorf("project %d funding: %w", id, err)
		}
		project := domain.Project{
			ID:               domain.ProjectID(id),
			Name:             name,
			Description:      description,
			Creator:          domain.Address(creator),
			TotalFunding:     funding,
			ContributorCount: contributorCount,
			Active:           active != 0,
			CreatedAt:        fromMillis(createdAt),
		}
		if settledAt.Valid {
			t := fromMillis(settledAt.Int64)
			project.SettledAt = &t
		}
		snap.Projects = append(snap.Projects, storage.ProjectState{Project: project})
	}
	if err := rows.Err(); err != nil {
		return storage.LedgerSnapshot{}, fmt.Errorf("iterate projects: %w", err)
	}

	for i := range snap.Projects {
		contributions, err := s.listContributions(ctx, snap.Projects[i].Project.ID)
		if err != nil {
			return storage.LedgerSnapshot{}, err
		}
		snap.Projects[i].Contributions = contributions
	}

	return snap, nil
}

func (s *Store) listContributions(ctx context.Context, projectID domain.ProjectID) ([]domain.Contribution, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT contributor, amount FROM contributions WHERE project_id = ? ORDER BY position",
		int64(projectID))
	if err != nil {
		return nil, fmt.Errorf("list contributions for project %d: %w", projectID, err)
	}
	defer rows.Close()

	var out []domain.Contribution
	for rows.Next() {
		var contributor string
		var amount int64
		if err := rows.Scan(&contributor, &amount); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		value, err := fromDBAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("contribution amount: %w", err)
		}
		out = append(out, domain.Contribution{Contributor: domain.Address(contributor), Amount: value})
	}
	return out, rows.Err()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// toDBAmount maps a ledger amount onto the signed 64-bit range SQLite
// integers cover. Amounts at or above 2^63 are rejected rather than stored
// with a flipped sign.
func toDBAmount(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("amount %d exceeds storable range", value)
	}
	return int64(value), nil
}

func fromDBAmount(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("stored amount %d is negative", value)
	}
	return uint64(value), nil
}
