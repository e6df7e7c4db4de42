package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"

	"labelpr/pkg/labels"
)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	return &Client{
		client: github.NewClient(newHTTPClient(token)),
	}
}

// DefaultAPIURL is the REST endpoint of github.com
const DefaultAPIURL = "https://api.github.com/"

// NewClientWithBaseURL creates a client talking to the REST API rooted at
// baseURL, as given by GITHUB_API_URL on GitHub Enterprise Server runners.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	c := NewClient(token)
	if baseURL == "" {
		return c, nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid GitHub API URL %q: scheme and host are required", baseURL)
	}

	c.client.BaseURL = u
	return c, nil
}

// ListPullRequestFiles retrieves one page of the files changed by a pull request
func (c *Client) ListPullRequestFiles(ctx context.Context, pr PullRequestRef, page, perPage int) ([]labels.ChangedFile, error) {
	opts := &github.ListOptions{Page: page, PerPage: perPage}

	files, _, err := c.client.PullRequests.ListFiles(ctx, pr.Owner, pr.Repo, pr.Number, opts)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("files of %s (page %d)", pr, page))
	}

	changed := make([]labels.ChangedFile, 0, len(files))
	for _, f := range files {
		changed = append(changed, labels.ChangedFile{Path: f.GetFilename()})
	}

	return changed, nil
}

// ListIssueLabels lists the names of all labels attached to a pull request
func (c *Client) ListIssueLabels(ctx context.Context, pr PullRequestRef) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var names []string

	for {
		issueLabels, resp, err := c.client.Issues.ListLabelsByIssue(ctx, pr.Owner, pr.Repo, pr.Number, opts)
		if err != nil {
			return nil, WrapGitHubError(err, fmt.Sprintf("labels of %s", pr))
		}

		for _, label := range issueLabels {
			names = append(names, label.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}

// RemoveIssueLabel removes a single label from a pull request. go-github puts
// the name into the URL path as is, so it is escaped here.
func (c *Client) RemoveIssueLabel(ctx context.Context, pr PullRequestRef, label string) error {
	_, err := c.client.Issues.RemoveLabelForIssue(ctx, pr.Owner, pr.Repo, pr.Number, url.PathEscape(label))
	if err != nil {
		return WrapGitHubError(err, fmt.Sprintf("label %q on %s", label, pr))
	}
	return nil
}

// AddIssueLabels adds labels to a pull request in a single call
func (c *Client) AddIssueLabels(ctx context.Context, pr PullRequestRef, names []string) error {
	_, _, err := c.client.Issues.AddLabelsToIssue(ctx, pr.Owner, pr.Repo, pr.Number, names)
	if err != nil {
		return WrapGitHubError(err, fmt.Sprintf("labels of %s", pr))
	}
	return nil
}

// ListRepositoryLabels lists every label defined on a repository
func (c *Client) ListRepositoryLabels(ctx context.Context, owner, repo string) ([]RepositoryLabel, error) {
	opts := &github.ListOptions{PerPage: 100}

	var all []RepositoryLabel

	for {
		repoLabels, resp, err := c.client.Issues.ListLabels(ctx, owner, repo, opts)
		if err != nil {
			return nil, WrapGitHubError(err, fmt.Sprintf("labels of repository %s/%s", owner, repo))
		}

		for _, label := range repoLabels {
			all = append(all, RepositoryLabel{
				Name:        label.GetName(),
				Color:       label.GetColor(),
				Description: label.GetDescription(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
