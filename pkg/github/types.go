package github

import (
	"fmt"

	"labelpr/pkg/labels"
)

// PullRequestRef identifies a pull request within a repository
type PullRequestRef struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Number int    `json:"number"`
}

// String returns owner/repo#number
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// RepositoryLabel represents a label defined on a repository
type RepositoryLabel struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReconciliationPlan captures the snapshot a plan was computed from and the
// resulting label changes
type ReconciliationPlan struct {
	PullRequest    PullRequestRef       `json:"pull_request"`
	CurrentLabels  []string             `json:"current_labels"`
	Files          []labels.ChangedFile `json:"files"`
	MatchedFilters []labels.Filter      `json:"matched_filters"`
	EligibleLabels []string             `json:"eligible_labels"`
	Changes        labels.Plan          `json:"changes"`
}

// HasChanges reports whether applying the plan would call the API
func (p *ReconciliationPlan) HasChanges() bool {
	return p.Changes.HasChanges()
}

// ApplyOutcome describes how an apply finished
type ApplyOutcome string

const (
	// OutcomeApplied means labels were added
	OutcomeApplied ApplyOutcome = "applied"
	// OutcomeNothingToAdd means removals, if any, were issued and there was nothing to add
	OutcomeNothingToAdd ApplyOutcome = "nothing_to_add"
)

// ApplyResult reports what an apply changed
type ApplyResult struct {
	Outcome ApplyOutcome `json:"outcome"`
	Added   []string     `json:"added"`
	Removed []string     `json:"removed"`
}
