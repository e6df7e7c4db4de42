package github

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LabelWriter adds and removes labels on a pull request
type LabelWriter interface {
	RemoveIssueLabel(ctx context.Context, pr PullRequestRef, label string) error
	AddIssueLabels(ctx context.Context, pr PullRequestRef, labels []string) error
}

// LabelSynchronizer applies label changes to a pull request. Nothing is
// rolled back when a call fails.
type LabelSynchronizer struct {
	writer LabelWriter
	logger *zap.Logger
}

// NewLabelSynchronizer creates a synchronizer writing through writer
func NewLabelSynchronizer(writer LabelWriter, logger *zap.Logger) *LabelSynchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabelSynchronizer{writer: writer, logger: logger}
}

// RemoveLabels removes each label with its own call, in order. The first
// failure stops the loop; labels removed before it stay removed.
func (s *LabelSynchronizer) RemoveLabels(ctx context.Context, pr PullRequestRef, names []string) ([]string, error) {
	removed := make([]string, 0, len(names))

	for _, name := range names {
		if err := s.writer.RemoveIssueLabel(ctx, pr, name); err != nil {
			return removed, fmt.Errorf("failed to remove label %q from %s: %w", name, pr, err)
		}
		s.logger.Debug("Removed label", zap.String("label", name))
		removed = append(removed, name)
	}

	return removed, nil
}

// AddLabels adds every label in a single call. An empty list makes no call.
func (s *LabelSynchronizer) AddLabels(ctx context.Context, pr PullRequestRef, names []string) error {
	if len(names) == 0 {
		return nil
	}

	if err := s.writer.AddIssueLabels(ctx, pr, names); err != nil {
		return fmt.Errorf("failed to add labels to %s: %w", pr, err)
	}
	return nil
}
