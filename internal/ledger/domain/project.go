package domain

import (
	"strings"
	"time"
)

// Address identifies a contributor, creator, or admin. The ledger treats
// addresses as opaque identity strings supplied by the calling layer.
type Address string

// ProjectID is a positive, monotonically assigned project identifier.
// Identifiers start at 1; zero is never a valid id.
type ProjectID uint64

// Project represents metadata and funding totals for a registered project.
type Project struct {
	ID               ProjectID
	Name             string
	Description      string
	Creator          Address
	TotalFunding     uint64
	ContributorCount int
	Active           bool
	CreatedAt        time.Time
	SettledAt        *time.Time
}

// CreateProjectInput describes the metadata needed to register a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Creator     Address
}

// NormalizeCreateProjectInput trims and validates project input metadata.
func NormalizeCreateProjectInput(input CreateProjectInput) (CreateProjectInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateProjectInput{}, ErrProjectNameEmpty
	}
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return CreateProjectInput{}, ErrProjectDescriptionEmpty
	}
	input.Creator = Address(strings.TrimSpace(string(input.Creator)))
	if input.Creator == "" {
		return CreateProjectInput{}, ErrAddressEmpty
	}
	return input, nil
}

// NewProject builds a project record for the given assigned id.
func NewProject(id ProjectID, input CreateProjectInput, now func() time.Time) (Project, error) {
	if now == nil {
		now = time.Now
	}

	normalized, err := NormalizeCreateProjectInput(input)
	if err != nil {
		return Project{}, err
	}

	return Project{
		ID:          id,
		Name:        normalized.Name,
		Description: normalized.Description,
		Creator:     normalized.Creator,
		Active:      true,
		CreatedAt:   now().UTC(),
	}, nil
}
