package github

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// newHTTPClient returns an HTTP client authenticating every request with token
func newHTTPClient(token string) *http.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return oauth2.NewClient(context.Background(), ts)
}

// GetAuthInstructions returns instructions for providing a GitHub token
func GetAuthInstructions() string {
	return `GitHub authentication is required. Provide a token through the GITHUB_TOKEN
environment variable.

In a GitHub Actions workflow:

  - uses: ./
    env:
      GITHUB_TOKEN: ${{ secrets.GITHUB_TOKEN }}

The workflow token needs the following permissions:
  pull-requests: read   (list changed files)
  issues: write         (read, add and remove labels)

Locally, a fine-grained personal access token with the same permissions works:
  export GITHUB_TOKEN="your_personal_access_token"`
}
