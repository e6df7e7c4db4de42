package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-github/v66/github"

	"labelpr/pkg/config"
)

// ErrNotPullRequest means the run was not triggered by a pull request. It is a
// neutral outcome, not a failure.
var ErrNotPullRequest = errors.New("action not triggered by a pull request")

// ErrIgnoredAction means the pull request event action is not one labelpr handles
var ErrIgnoredAction = errors.New("pull request action is not handled")

// supportedEvents are the GITHUB_EVENT_NAME values that carry a pull request payload
var supportedEvents = map[string]bool{
	"pull_request":        true,
	"pull_request_target": true,
}

// supportedActions are the pull request actions that trigger labeling
var supportedActions = map[string]bool{
	"opened":      true,
	"synchronize": true,
}

// IsNeutral reports whether err means there is nothing to do for this event
func IsNeutral(err error) bool {
	return errors.Is(err, ErrNotPullRequest) || errors.Is(err, ErrIgnoredAction)
}

// LoadPullRequestEvent reads the webhook payload at path and returns the pull
// request it refers to. eventName may be empty when unknown.
func LoadPullRequestEvent(path, eventName string) (PullRequestRef, error) {
	if eventName != "" && !supportedEvents[eventName] {
		return PullRequestRef{}, fmt.Errorf("%w: event %q", ErrNotPullRequest, eventName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PullRequestRef{}, &config.EnvironmentError{
			Variable: "GITHUB_EVENT_PATH",
			Message:  "failed to read event payload",
			Cause:    err,
		}
	}

	return ParsePullRequestEvent(data)
}

// ParsePullRequestEvent extracts the pull request reference from a webhook payload
func ParsePullRequestEvent(data []byte) (PullRequestRef, error) {
	var event github.PullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return PullRequestRef{}, &config.EnvironmentError{
			Variable: "GITHUB_EVENT_PATH",
			Message:  "event payload is not valid JSON",
			Cause:    err,
		}
	}

	if event.Number == nil {
		return PullRequestRef{}, fmt.Errorf("%w: PR ID is missing", ErrNotPullRequest)
	}

	if action := event.GetAction(); action != "" && !supportedActions[action] {
		return PullRequestRef{}, fmt.Errorf("%w: %q", ErrIgnoredAction, action)
	}

	ref := PullRequestRef{
		Owner:  event.GetRepo().GetOwner().GetLogin(),
		Repo:   event.GetRepo().GetName(),
		Number: event.GetNumber(),
	}

	if ref.Owner == "" {
		return PullRequestRef{}, &config.EnvironmentError{
			Variable: "GITHUB_EVENT_PATH",
			Message:  "event payload is missing repository.owner.login",
		}
	}

	if ref.Repo == "" {
		return PullRequestRef{}, &config.EnvironmentError{
			Variable: "GITHUB_EVENT_PATH",
			Message:  "event payload is missing repository.name",
		}
	}

	return ref, nil
}
