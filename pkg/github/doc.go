// Package github connects the labeling rules in package labels to the GitHub
// REST API. It reads the pull request event payload, fetches the changed
// files and current labels of a pull request, and reconciles the labels with
// the configured filters.
//
// The package includes:
// - APIClient interface for GitHub API operations
// - FileAggregator for paginated changed-file retrieval
// - LabelSynchronizer for applying label changes
// - Reconciler interface for planning and applying label changes
// - Validator for checking configured labels against a repository
package github
