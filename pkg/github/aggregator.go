package github

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"labelpr/pkg/labels"
)

// FilePager fetches one page of changed files
type FilePager interface {
	ListPullRequestFiles(ctx context.Context, pr PullRequestRef, page, perPage int) ([]labels.ChangedFile, error)
}

// FileAggregator collects every changed file of a pull request, one page at a time
type FileAggregator struct {
	pager    FilePager
	pageSize int
	logger   *zap.Logger
}

// NewFileAggregator creates an aggregator requesting pageSize files per page
func NewFileAggregator(pager FilePager, pageSize int, logger *zap.Logger) *FileAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileAggregator{
		pager:    pager,
		pageSize: pageSize,
		logger:   logger,
	}
}

// FetchAll requests pages starting at 1 until a page comes back shorter than
// the page size. A full last page therefore costs one extra, empty request.
func (a *FileAggregator) FetchAll(ctx context.Context, pr PullRequestRef) ([]labels.ChangedFile, error) {
	if a.pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", a.pageSize)
	}

	var all []labels.ChangedFile

	for page := 1; ; page++ {
		a.logger.Info("Listing files", zap.Int("page", page), zap.Int("per_page", a.pageSize))

		files, err := a.pager.ListPullRequestFiles(ctx, pr, page, a.pageSize)
		if err != nil {
			return nil, err
		}

		a.logger.Info("Loaded files", zap.Int("page", page), zap.Int("files", len(files)))
		all = append(all, files...)

		if len(files) < a.pageSize {
			break
		}
	}

	if all == nil {
		all = []labels.ChangedFile{}
	}

	return all, nil
}
