package github

import (
	"context"

	"labelpr/pkg/labels"
)

// APIClient defines the GitHub API operations labelpr needs
type APIClient interface {
	// Pull request operations
	ListPullRequestFiles(ctx context.Context, pr PullRequestRef, page, perPage int) ([]labels.ChangedFile, error)

	// Issue label operations
	ListIssueLabels(ctx context.Context, pr PullRequestRef) ([]string, error)
	RemoveIssueLabel(ctx context.Context, pr PullRequestRef, label string) error
	AddIssueLabels(ctx context.Context, pr PullRequestRef, labels []string) error

	// Repository label operations
	ListRepositoryLabels(ctx context.Context, owner, repo string) ([]RepositoryLabel, error)
}

// Reconciler defines the interface for label reconciliation
type Reconciler interface {
	Plan(ctx context.Context, pr PullRequestRef) (*ReconciliationPlan, error)
	Apply(ctx context.Context, plan *ReconciliationPlan) (*ApplyResult, error)
}
