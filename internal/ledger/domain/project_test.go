package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewProjectNormalizesInput(t *testing.T) {
	fixedTime := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	input := CreateProjectInput{
		Name:        "  Clean Water  ",
		Description: "  Wells for the valley  ",
		Creator:     "  alice  ",
	}

	project, err := NewProject(1, input, func() time.Time { return fixedTime })
	if err != nil {
		t.Fatalf("new project: %v", err)
	}

	if project.ID != 1 {
		t.Fatalf("expected id 1, got %d", project.ID)
	}
	if project.Name != "Clean Water" {
		t.Fatalf("expected trimmed name, got %q", project.Name)
	}
	if project.Description != "Wells for the valley" {
		t.Fatalf("expected trimmed description, got %q", project.Description)
	}
	if project.Creator != "alice" {
		t.Fatalf("expected trimmed creator, got %q", project.Creator)
	}
	if !project.Active {
		t.Fatal("expected new project to be active")
	}
	if project.TotalFunding != 0 || project.ContributorCount != 0 {
		t.Fatalf("expected zero funding totals, got %d/%d", project.TotalFunding, project.ContributorCount)
	}
	if !project.CreatedAt.Equal(fixedTime) {
		t.Fatal("expected creation time to match fixed time")
	}
	if project.SettledAt != nil {
		t.Fatal("expected no settlement time on a new project")
	}
}

func TestNormalizeCreateProjectInputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateProjectInput
		err   error
	}{
		{
			name:  "empty name",
			input: CreateProjectInput{Name: "   ", Description: "desc", Creator: "alice"},
			err:   ErrProjectNameEmpty,
		},
		{
			name:  "empty description",
			input: CreateProjectInput{Name: "Project", Description: "   ", Creator: "alice"},
			err:   ErrProjectDescriptionEmpty,
		},
		{
			name:  "empty creator",
			input: CreateProjectInput{Name: "Project", Description: "desc", Creator: "   "},
			err:   ErrAddressEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NormalizeCreateProjectInput(tt.input); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}
