package cmd

import (
	"fmt"
	"io"
	"strings"

	"labelpr/pkg/github"
)

// displayPlan shows the planned label changes in a human-readable format
func displayPlan(out io.Writer, plan *github.ReconciliationPlan, isDryRun bool) {
	if isDryRun {
		fmt.Fprintf(out, "🔍 Dry-run mode: Showing planned changes for %s\n", plan.PullRequest)
	} else {
		fmt.Fprintf(out, "📋 Planned changes for %s:\n", plan.PullRequest)
	}

	fmt.Fprintf(out, "  Changed files: %d\n", len(plan.Files))
	if len(plan.CurrentLabels) > 0 {
		fmt.Fprintf(out, "  Current labels: %s\n", strings.Join(plan.CurrentLabels, ", "))
	}

	for _, name := range plan.Changes.ToAdd {
		fmt.Fprintf(out, "  + Label: ADD %s\n", name)
	}
	for _, name := range plan.Changes.ToRemove {
		fmt.Fprintf(out, "  - Label: REMOVE %s\n", name)
	}

	if !plan.HasChanges() {
		fmt.Fprintf(out, "  No changes needed - labels are up to date\n")
		return
	}

	fmt.Fprintf(out, "\nTotal changes: %d (%d to add, %d to remove)\n",
		len(plan.Changes.ToAdd)+len(plan.Changes.ToRemove),
		len(plan.Changes.ToAdd), len(plan.Changes.ToRemove))
}

// displayResult shows a summary after a successful apply
func displayResult(out io.Writer, pr github.PullRequestRef, result *github.ApplyResult) {
	if len(result.Removed) > 0 {
		fmt.Fprintf(out, "\n🗑  Removed: %s\n", strings.Join(result.Removed, ", "))
	}

	switch result.Outcome {
	case github.OutcomeNothingToAdd:
		fmt.Fprintf(out, "\n✅ No labels to add\n")
	default:
		fmt.Fprintf(out, "\n🏷  Added: %s\n", strings.Join(result.Added, ", "))
		fmt.Fprintf(out, "✅ Labels were updated on %s\n", pr)
	}
}
