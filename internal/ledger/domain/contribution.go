package domain

// Contribution is the cumulative amount one address has contributed to a
// single project.
type Contribution struct {
	Contributor Address
	Amount      uint64
}

// Contributions tracks per-address contributions to one project. It keeps an
// insertion-ordered record list for score iteration plus an address index so
// repeat contributions stay O(1) as contributor counts grow.
type Contributions struct {
	records []Contribution
	index   map[Address]int
}

// NewContributions returns an empty contribution set.
func NewContributions() *Contributions {
	return &Contributions{index: make(map[Address]int)}
}

// Add credits amount to the contributor's record, appending a new record on
// first contribution. It reports whether the contributor is new to the
// project. Amount validation belongs to the caller; Add assumes amount > 0.
func (c *Contributions) Add(contributor Address, amount uint64) (first bool) {
	if i, ok := c.index[contributor]; ok {
		c.records[i].Amount += amount
		return false
	}
	c.index[contributor] = len(c.records)
	c.records = append(c.records, Contribution{Contributor: contributor, Amount: amount})
	return true
}

// Amount returns the cumulative amount contributed by the given address,
// or zero when the address has no record.
func (c *Contributions) Amount(contributor Address) uint64 {
	if i, ok := c.index[contributor]; ok {
		return c.records[i].Amount
	}
	return 0
}

// Len returns the number of distinct contributing addresses.
func (c *Contributions) Len() int {
	return len(c.records)
}

// Records returns the contribution records in insertion order. The returned
// slice is a copy; mutating it does not affect the set.
func (c *Contributions) Records() []Contribution {
	out := make([]Contribution, len(c.records))
	copy(out, c.records)
	return out
}
