package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"labelpr/pkg/config"
	"labelpr/pkg/github"
)

var validateRepo string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the labeling rules file",
	Long: `Validate the labeling rules file for syntax and logical errors.

Offline checks (always performed):
  - YAML syntax and structure
  - every rule has a pattern and at least one non-empty label
  - every pattern compiles as a regular expression

Online check (with --repo and GITHUB_TOKEN):
  - lists configured labels the repository does not define yet. GitHub
    creates them with a default color the first time they are added.

Examples:
  labelpr validate
  labelpr validate --config .github/label-pr.yml
  labelpr validate --repo myorg/myrepo`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRepo, "repo", "", "Repository (owner/name) whose labels are checked against the rules")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return validateRules(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), settings, validateRepo)
}

func validateRules(ctx context.Context, out, errOut io.Writer, settings *config.Settings, repo string) error {
	configPath := settings.ResolvedConfigPath()
	fmt.Fprintf(out, "🔍 Validating configuration file: %s\n", configPath)

	matcher, err := config.LoadMatcherFromPath(configPath)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configured := matcher.ConfiguredLabels()
	fmt.Fprintf(out, "✓ YAML syntax and rules are valid\n")
	fmt.Fprintf(out, "📋 Rules: %d\n", len(matcher.Filters()))
	fmt.Fprintf(out, "🏷  Governed labels: %s\n", strings.Join(configured.Sorted(), ", "))

	if repo == "" {
		return nil
	}

	owner, name, err := parseRepository(repo)
	if err != nil {
		return err
	}

	token, err := settings.RequireToken()
	if err != nil {
		fmt.Fprintf(errOut, "%s\n\n", github.GetAuthInstructions())
		return err
	}

	client, err := github.NewClientWithBaseURL(token, settings.APIURL)
	if err != nil {
		return err
	}

	missing, err := github.NewValidator(client).MissingLabels(ctx, owner, name, configured)
	if err != nil {
		return fmt.Errorf("failed to check labels of %s: %w", repo, err)
	}

	if len(missing) == 0 {
		fmt.Fprintf(out, "✓ All governed labels exist in %s\n", repo)
		return nil
	}

	fmt.Fprintf(out, "⚠️  Labels not defined in %s yet: %s\n", repo, strings.Join(missing, ", "))
	fmt.Fprintf(out, "   They will be created with a default color the first time they are added.\n")
	return nil
}

// parseRepository splits "owner/name"
func parseRepository(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(repo), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}
