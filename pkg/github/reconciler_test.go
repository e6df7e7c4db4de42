package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"labelpr/pkg/labels"
)

// MockAPIClient is a mock implementation of APIClient for testing
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) ListPullRequestFiles(ctx context.Context, pr PullRequestRef, page, perPage int) ([]labels.ChangedFile, error) {
	args := m.Called(ctx, pr, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]labels.ChangedFile), args.Error(1)
}

func (m *MockAPIClient) ListIssueLabels(ctx context.Context, pr PullRequestRef) ([]string, error) {
	args := m.Called(ctx, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAPIClient) RemoveIssueLabel(ctx context.Context, pr PullRequestRef, label string) error {
	args := m.Called(ctx, pr, label)
	return args.Error(0)
}

func (m *MockAPIClient) AddIssueLabels(ctx context.Context, pr PullRequestRef, names []string) error {
	args := m.Called(ctx, pr, names)
	return args.Error(0)
}

func (m *MockAPIClient) ListRepositoryLabels(ctx context.Context, owner, repo string) ([]RepositoryLabel, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RepositoryLabel), args.Error(1)
}

var testPR = PullRequestRef{Owner: "test-owner", Repo: "test-repo", Number: 7}

func changed(paths ...string) []labels.ChangedFile {
	out := make([]labels.ChangedFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, labels.ChangedFile{Path: p})
	}
	return out
}

func newTestReconciler(t *testing.T, client APIClient, filters []labels.Filter) Reconciler {
	t.Helper()
	matcher, err := labels.NewMatcher(filters)
	require.NoError(t, err)
	return NewReconciler(client, matcher, 100, nil)
}

func TestNewReconciler(t *testing.T) {
	reconciler := newTestReconciler(t, &MockAPIClient{}, nil)

	assert.NotNil(t, reconciler)
	assert.Implements(t, (*Reconciler)(nil), reconciler)
}

func TestReconciler_Plan_AddsMatchingLabel(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("ListIssueLabels", ctx, testPR).Return([]string{}, nil)
	client.On("ListPullRequestFiles", ctx, testPR, 1, 100).Return(changed("src/a.ts", "README.md"), nil)

	reconciler := newTestReconciler(t, client, []labels.Filter{{Pattern: "^src/", Labels: []string{"area:src"}}})

	plan, err := reconciler.Plan(ctx, testPR)
	require.NoError(t, err)

	assert.Equal(t, []string{"area:src"}, plan.Changes.ToAdd)
	assert.Empty(t, plan.Changes.ToRemove)
	assert.Equal(t, []string{"area:src"}, plan.EligibleLabels)
	assert.Len(t, plan.Files, 2)
	assert.Len(t, plan.MatchedFilters, 1)
	assert.True(t, plan.HasChanges())
	client.AssertExpectations(t)
}

func TestReconciler_Plan_RemovesStaleLabel(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("ListIssueLabels", ctx, testPR).Return([]string{"area:src", "bug"}, nil)
	client.On("ListPullRequestFiles", ctx, testPR, 1, 100).Return(changed("README.md"), nil)

	reconciler := newTestReconciler(t, client, []labels.Filter{{Pattern: "^src/", Labels: []string{"area:src"}}})

	plan, err := reconciler.Plan(ctx, testPR)
	require.NoError(t, err)

	assert.Empty(t, plan.Changes.ToAdd)
	assert.Equal(t, []string{"area:src"}, plan.Changes.ToRemove)
	assert.Equal(t, []string{"area:src", "bug"}, plan.CurrentLabels)
	client.AssertExpectations(t)
}

func TestReconciler_Plan_ListLabelsError(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	apiErr := &GitHubError{Type: ErrorTypeAuth, Message: "bad credentials"}
	client.On("ListIssueLabels", ctx, testPR).Return(nil, apiErr)

	reconciler := newTestReconciler(t, client, []labels.Filter{{Pattern: "x", Labels: []string{"x"}}})

	plan, err := reconciler.Plan(ctx, testPR)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, apiErr)
	assert.True(t, IsAPIError(err))
	client.AssertNotCalled(t, "ListPullRequestFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_Plan_ListFilesError(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("ListIssueLabels", ctx, testPR).Return([]string{}, nil)
	client.On("ListPullRequestFiles", ctx, testPR, 1, 100).Return(nil, &GitHubError{Type: ErrorTypeNetwork, Message: "down"})

	reconciler := newTestReconciler(t, client, []labels.Filter{{Pattern: "x", Labels: []string{"x"}}})

	_, err := reconciler.Plan(ctx, testPR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list changed files")
	assert.True(t, IsAPIError(err))
}

func TestReconciler_Apply_RemovesThenAdds(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	var order []string
	client.On("RemoveIssueLabel", ctx, testPR, "a").Return(nil).Run(func(mock.Arguments) { order = append(order, "remove a") })
	client.On("RemoveIssueLabel", ctx, testPR, "b").Return(nil).Run(func(mock.Arguments) { order = append(order, "remove b") })
	client.On("AddIssueLabels", ctx, testPR, []string{"c", "d"}).Return(nil).Run(func(mock.Arguments) { order = append(order, "add") })

	reconciler := newTestReconciler(t, client, nil)

	result, err := reconciler.Apply(ctx, &ReconciliationPlan{
		PullRequest: testPR,
		Changes:     labels.Plan{ToAdd: []string{"c", "d"}, ToRemove: []string{"a", "b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeApplied, result.Outcome)
	assert.Equal(t, []string{"c", "d"}, result.Added)
	assert.Equal(t, []string{"a", "b"}, result.Removed)
	assert.Equal(t, []string{"remove a", "remove b", "add"}, order)
	client.AssertExpectations(t)
}

func TestReconciler_Apply_NothingToAdd(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("RemoveIssueLabel", ctx, testPR, "area:src").Return(nil)

	reconciler := newTestReconciler(t, client, nil)

	result, err := reconciler.Apply(ctx, &ReconciliationPlan{
		PullRequest: testPR,
		Changes:     labels.Plan{ToAdd: []string{}, ToRemove: []string{"area:src"}},
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeNothingToAdd, result.Outcome)
	assert.Equal(t, []string{"area:src"}, result.Removed)
	assert.Empty(t, result.Added)
	client.AssertNotCalled(t, "AddIssueLabels", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_Apply_FirstRemoveFailureAborts(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	removeErr := &GitHubError{Type: ErrorTypeNotFound, Message: "label is not attached to the pull request"}
	client.On("RemoveIssueLabel", ctx, testPR, "a").Return(nil)
	client.On("RemoveIssueLabel", ctx, testPR, "b").Return(removeErr)

	reconciler := newTestReconciler(t, client, nil)

	result, err := reconciler.Apply(ctx, &ReconciliationPlan{
		PullRequest: testPR,
		Changes:     labels.Plan{ToAdd: []string{"d"}, ToRemove: []string{"a", "b", "c"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, removeErr)

	// "a" stays removed; nothing after "b" is attempted
	assert.Equal(t, []string{"a"}, result.Removed)
	client.AssertNotCalled(t, "RemoveIssueLabel", mock.Anything, mock.Anything, "c")
	client.AssertNotCalled(t, "AddIssueLabels", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_Apply_AddFailure(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("AddIssueLabels", ctx, testPR, []string{"docs"}).Return(errors.New("boom"))

	reconciler := newTestReconciler(t, client, nil)

	result, err := reconciler.Apply(ctx, &ReconciliationPlan{
		PullRequest: testPR,
		Changes:     labels.Plan{ToAdd: []string{"docs"}, ToRemove: []string{}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add labels to test-owner/test-repo#7")
	assert.Empty(t, result.Added)
}

func TestReconciler_PlanThenApply_Converges(t *testing.T) {
	client := &MockAPIClient{}
	ctx := context.Background()
	filters := []labels.Filter{
		{Pattern: "^src/", Labels: []string{"area:src"}},
		{Pattern: `\.md$`, Labels: []string{"docs"}},
	}

	client.On("ListIssueLabels", ctx, testPR).Return([]string{"docs", "bug"}, nil).Once()
	client.On("ListPullRequestFiles", ctx, testPR, 1, 100).Return(changed("src/main.go"), nil)
	client.On("RemoveIssueLabel", ctx, testPR, "docs").Return(nil)
	client.On("AddIssueLabels", ctx, testPR, []string{"area:src"}).Return(nil)

	reconciler := newTestReconciler(t, client, filters)

	plan, err := reconciler.Plan(ctx, testPR)
	require.NoError(t, err)
	_, err = reconciler.Apply(ctx, plan)
	require.NoError(t, err)

	client.On("ListIssueLabels", ctx, testPR).Return([]string{"area:src", "bug"}, nil).Once()

	replan, err := reconciler.Plan(ctx, testPR)
	require.NoError(t, err)
	assert.False(t, replan.HasChanges())
}

func TestReconciler_Plan_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client := &MockAPIClient{}
	ctx := context.Background()

	client.On("ListIssueLabels", ctx, testPR).Return([]string{}, nil)
	client.On("ListPullRequestFiles", ctx, testPR, 1, 100).Return(changed("src/a.ts"), nil)

	matcher, err := labels.NewMatcher([]labels.Filter{{Pattern: "^src/", Labels: []string{"area:src"}}})
	require.NoError(t, err)
	reconciler := NewReconciler(client, matcher, 100, zap.New(core))

	_, err = reconciler.Plan(ctx, testPR)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Listing files").Len())
	entries := logs.FilterMessage("Planned label changes").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "test-owner/test-repo#7", entries[0].ContextMap()["pull_request"])
}
