package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"labelpr/pkg/github"
)

// Process exit codes. 78 is the code GitHub Actions reports as neutral.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitNeutral = 78
)

var (
	flagConfigPath string
	flagEventPath  string
	flagDryRun     bool
	flagLogLevel   string
	flagLogFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "labelpr",
	Short: "Label pull requests based on the files they change",
	Long: `labelpr keeps the labels of a pull request in line with the files it changes.

Each rule in the configuration file pairs a regular expression with labels.
A label is added when any changed file matches one of its rules, and removed
when the pull request carries it but no rule for it matches anymore. Labels
that no rule mentions are never touched.

The command is meant to run inside a GitHub Actions job triggered by the
pull_request "opened" and "synchronize" events. It reads:

  GITHUB_TOKEN       token with write access to issues and pull requests
  GITHUB_EVENT_PATH  path of the webhook payload
  GITHUB_EVENT_NAME  name of the triggering event (optional)
  GITHUB_WORKSPACE   base for a relative configuration path (optional)
  GITHUB_API_URL     REST endpoint, for GitHub Enterprise Server (optional)
  CONFIG_PATH        rules file, defaults to .github/label-pr.yml

Configuration example:
  - regExp: "^src/"
    labels: ["area:src"]
  - regExp: "\\.md$"
    labels: ["docs"]

Examples:
  # Synchronize labels of the triggering pull request
  labelpr

  # Show what would change without touching the pull request
  labelpr --dry-run

  # Check a rules file and the labels it needs
  labelpr validate --repo myorg/myrepo`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLabel,
}

// Execute runs the root command and exits with the matching process code
func Execute() {
	os.Exit(executeCommand(rootCmd, os.Stderr))
}

// executeCommand runs cmd and maps its outcome to an exit code
func executeCommand(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	code := exitCode(err)

	switch code {
	case ExitNeutral:
		fmt.Fprintf(stderr, "Nothing to do: %v\n", err)
	case ExitFailure:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return code
}

// exitCode classifies the error returned by a command
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case github.IsNeutral(err):
		return ExitNeutral
	default:
		return ExitFailure
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "Path of the labeling rules file (overrides CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LABEL_PR_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: console, json or auto (overrides LABEL_PR_LOG_FORMAT)")

	rootCmd.Flags().StringVar(&flagEventPath, "event-path", "", "Path of the webhook payload (overrides GITHUB_EVENT_PATH)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Preview label changes without applying them")

	rootCmd.AddCommand(validateCmd)
}
