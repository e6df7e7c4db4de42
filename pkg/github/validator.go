package github

import (
	"context"

	"labelpr/pkg/labels"
)

// Validator checks a labeling configuration against a live repository
type Validator struct {
	client APIClient
}

// NewValidator creates a validator using client
func NewValidator(client APIClient) *Validator {
	return &Validator{client: client}
}

// MissingLabels returns the configured labels the repository does not define yet.
// GitHub creates such labels with a default color the first time they are added.
func (v *Validator) MissingLabels(ctx context.Context, owner, repo string, configured labels.Set) ([]string, error) {
	repoLabels, err := v.client.ListRepositoryLabels(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	existing := make(labels.Set, len(repoLabels))
	for _, l := range repoLabels {
		existing[l.Name] = struct{}{}
	}

	return labels.Difference(configured, existing).Sorted(), nil
}
