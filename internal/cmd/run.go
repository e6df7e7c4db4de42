package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labelpr/internal/logging"
	"labelpr/pkg/config"
	"labelpr/pkg/github"
)

func runLabel(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return labelPullRequest(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), settings, logger, flagDryRun)
}

// loadSettings reads the environment and applies command line overrides
func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	if flagConfigPath != "" {
		settings.ConfigPath = flagConfigPath
	}
	if flagEventPath != "" {
		settings.EventPath = flagEventPath
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		settings.LogFormat = flagLogFormat
	}

	return settings, nil
}

func newLogger(settings *config.Settings) (*zap.Logger, error) {
	logger, err := logging.New(logging.Config{Level: settings.LogLevel, Format: settings.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// labelPullRequest synchronizes the labels of the pull request the event
// payload points at. Returns an error wrapping github.ErrNotPullRequest or
// github.ErrIgnoredAction when there is nothing to do.
func labelPullRequest(ctx context.Context, out, errOut io.Writer, settings *config.Settings, logger *zap.Logger, dryRun bool) error {
	eventPath, err := settings.RequireEventPath()
	if err != nil {
		return err
	}

	pr, err := github.LoadPullRequestEvent(eventPath, settings.EventName)
	if err != nil {
		if github.IsNeutral(err) {
			logger.Info("Skipping event", zap.Error(err))
		}
		return err
	}

	configPath := settings.ResolvedConfigPath()
	matcher, err := config.LoadMatcherFromPath(configPath)
	if err != nil {
		return fmt.Errorf("failed to load labeling rules from %s: %w", configPath, err)
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

	reconciler := github.NewReconciler(client, matcher, settings.PageSize, logger)

	plan, err := reconciler.Plan(ctx, pr)
	if err != nil {
		return err
	}

	displayPlan(out, plan, dryRun)

	if dryRun {
		fmt.Fprintf(out, "\nDry-run completed. Use without --dry-run to apply changes.\n")
		return nil
	}

	result, err := reconciler.Apply(ctx, plan)
	if err != nil {
		return err
	}

	displayResult(out, pr, result)
	return nil
}
