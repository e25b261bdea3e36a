package event

import (
	"encoding/json"
	"time"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
)

// ProjectCreatedPayload captures the payload for project.created events.
type ProjectCreatedPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
}

// ContributionMadePayload captures the payload for contribution.made events.
// TotalFunding and ContributorCount are the project totals after the
// contribution applied, so indexers need no replay to show running state.
type ContributionMadePayload struct {
	Contributor      string `json:"contributor"`
	Amount           uint64 `json:"amount"`
	TotalFunding     uint64 `json:"total_funding"`
	ContributorCount int    `json:"contributor_count"`
}

// PoolFundedPayload captures the payload for pool.funded events.
type PoolFundedPayload struct {
	Amount uint64 `json:"amount"`
	Pool   uint64 `json:"pool"`
}

// MatchingFundsDistributedPayload captures the payload for
// matching_funds.distributed events.
type MatchingFundsDistributedPayload struct {
	MatchingAmount uint64 `json:"matching_amount"`
	TotalFunding   uint64 `json:"total_funding"`
	Creator        string `json:"creator"`
	PoolRemaining  uint64 `json:"pool_remaining"`
}

// NewProjectCreated builds a project.created event.
func NewProjectCreated(id domain.ProjectID, p domain.Project) Event {
	payload, _ := json.Marshal(ProjectCreatedPayload{
		Name:        p.Name,
		Description: p.Description,
		Creator:     string(p.Creator),
	})
	return Event{
		Type:        TypeProjectCreated,
		Timestamp:   p.CreatedAt,
		ProjectID:   id,
		Actor:       p.Creator,
		PayloadJSON: payload,
	}
}

// NewContributionMade builds a contribution.made event carrying the
// post-contribution project totals.
func NewContributionMade(id domain.ProjectID, contributor domain.Address, amount uint64, p domain.Project, at time.Time) Event {
	payload, _ := json.Marshal(ContributionMadePayload{
		Contributor:      string(contributor),
		Amount:           amount,
		TotalFunding:     p.TotalFunding,
		ContributorCount: p.ContributorCount,
	})
	return Event{
		Type:        TypeContributionMade,
		Timestamp:   at,
		ProjectID:   id,
		Actor:       contributor,
		PayloadJSON: payload,
	}
}

// NewPoolFunded builds a pool.funded event carrying the post-funding pool.
func NewPoolFunded(admin domain.Address, amount, pool uint64, at time.Time) Event {
	payload, _ := json.Marshal(PoolFundedPayload{Amount: amount, Pool: pool})
	return Event{
		Type:        TypePoolFunded,
		Timestamp:   at,
		Actor:       admin,
		PayloadJSON: payload,
	}
}

// NewMatchingFundsDistributed builds a matching_funds.distributed event.
func NewMatchingFundsDistributed(id domain.ProjectID, admin domain.Address, matching uint64, p domain.Project, poolRemaining uint64, at time.Time) Event {
	payload, _ := json.Marshal(MatchingFundsDistributedPayload{
		MatchingAmount: matching,
		TotalFunding:   p.TotalFunding,
		Creator:        string(p.Creator),
		PoolRemaining:  poolRemaining,
	})
	return Event{
		Type:        TypeMatchingFundsDistributed,
		Timestamp:   at,
		ProjectID:   id,
		Actor:       admin,
		PayloadJSON: payload,
	}
}
