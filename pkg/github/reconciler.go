package github

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"labelpr/pkg/labels"
)

// reconciler implements the Reconciler interface
type reconciler struct {
	client  APIClient
	matcher *labels.Matcher
	files   *FileAggregator
	sync    *LabelSynchronizer
	logger  *zap.Logger
}

// NewReconciler creates a reconciler for the filters compiled into matcher
func NewReconciler(client APIClient, matcher *labels.Matcher, pageSize int, logger *zap.Logger) Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reconciler{
		client:  client,
		matcher: matcher,
		files:   NewFileAggregator(client, pageSize, logger),
		sync:    NewLabelSynchronizer(client, logger),
		logger:  logger,
	}
}

// Plan reads the pull request's labels and changed files once and computes
// the label changes from that snapshot
func (r *reconciler) Plan(ctx context.Context, pr PullRequestRef) (*ReconciliationPlan, error) {
	logger := r.logger.With(zap.Stringer("pull_request", pr))
	logger.Info("Checking files list")

	current, err := r.client.ListIssueLabels(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	files, err := r.files.FetchAll(ctx, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	logger.Debug("Checking files", zap.Strings("files", labels.Paths(files)))

	matched := r.matcher.Match(files)
	eligible := labels.LabelsOf(matched)

	changes := labels.NewPlan(labels.NewSet(current...), eligible, r.matcher.ConfiguredLabels())

	logger.Info("Planned label changes",
		zap.Int("files", len(files)),
		zap.Int("matched_filters", len(matched)),
		zap.Strings("to_add", changes.ToAdd),
		zap.Strings("to_remove", changes.ToRemove),
	)

	return &ReconciliationPlan{
		PullRequest:    pr,
		CurrentLabels:  current,
		Files:          files,
		MatchedFilters: matched,
		EligibleLabels: eligible.Sorted(),
		Changes:        *changes,
	}, nil
}

// Apply removes labels first, then adds in one call. State is not re-read
// between the two steps.
func (r *reconciler) Apply(ctx context.Context, plan *ReconciliationPlan) (*ApplyResult, error) {
	pr := plan.PullRequest
	logger := r.logger.With(zap.Stringer("pull_request", pr))

	result := &ApplyResult{
		Added:   []string{},
		Removed: []string{},
	}

	if len(plan.Changes.ToRemove) > 0 {
		logger.Info("Labels to remove", zap.Strings("labels", plan.Changes.ToRemove))
	}

	removed, err := r.sync.RemoveLabels(ctx, pr, plan.Changes.ToRemove)
	result.Removed = removed
	if err != nil {
		return result, err
	}

	if len(plan.Changes.ToAdd) == 0 {
		logger.Info("No labels to add")
		result.Outcome = OutcomeNothingToAdd
		return result, nil
	}

	logger.Info("Labels to add", zap.Strings("labels", plan.Changes.ToAdd))
	if err := r.sync.AddLabels(ctx, pr, plan.Changes.ToAdd); err != nil {
		return result, err
	}

	result.Added = append(result.Added, plan.Changes.ToAdd...)
	result.Outcome = OutcomeApplied
	return result, nil
}
