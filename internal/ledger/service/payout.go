package service

import (
	"context"
	"sync"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
)

// PayoutSink performs the external transfer that settles a project. The
// call is synchronous and fallible; a returned error aborts the settlement
// and rolls back the staged ledger mutations.
type PayoutSink interface {
	Transfer(ctx context.Context, to domain.Address, amount uint64) error
}

// MemoryTreasury is an in-process PayoutSink that accumulates balances per
// address. It backs tests and local runs where no real settlement rail is
// attached.
type MemoryTreasury struct {
	mu       sync.Mutex
	balances map[domain.Address]uint64

	// FailNext, when non-nil, is consumed by the next Transfer call and
	// returned as its error. Used to exercise rollback paths.
	FailNext error
}

// NewMemoryTreasury creates an empty in-memory treasury.
func NewMemoryTreasury() *MemoryTreasury {
	return &MemoryTreasury{balances: make(map[domain.Address]uint64)}
}

// Transfer credits amount to the recipient's balance.
func (t *MemoryTreasury) Transfer(ctx context.Context, to domain.Address, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.FailNext != nil {
		err := t.FailNext
		t.FailNext = nil
		return err
	}

	t.balances[to] += amount
	return nil
}

// Balance returns the accumulated balance for an address.
func (t *MemoryTreasury) Balance(addr domain.Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[addr]
}
