package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"

	"github.com/runs-on/envinfo/internal/config"
	"github.com/runs-on/envinfo/internal/display"
	"github.com/runs-on/envinfo/internal/env"
	"github.com/runs-on/envinfo/internal/summary"
	"github.com/runs-on/envinfo/internal/sysinfo"
)

const ContextTitle = "GitHub Context"

// Run renders every enabled section in order: runner information,
// environment variables, system information, then the GitHub context.
// The first error, or cancellation of ctx, aborts the sections that follow.
func Run(ctx context.Context, action *githubactions.Action, logger *zerolog.Logger, cfg *config.Config, provider sysinfo.Provider) error {
	var entries []summary.Entry
	show := func(title string, pairs []display.Pair) {
		display.PrintVariables(action, title, pairs)
		if len(pairs) > 0 {
			entries = append(entries, summary.Entry{Section: title, Count: len(pairs)})
		}
	}

	if cfg.Name != "" {
		action.Infof("Hello %s!", cfg.Name)
	}

	if cfg.ShowRunner {
		if err := checkCanceled(ctx, "runner information"); err != nil {
			return err
		}
		logger.Debug().Msg("Collecting runner information")
		pairs, err := sysinfo.RunnerInfo(provider)
		if err != nil {
			return fmt.Errorf("failed to collect runner information: %w", err)
		}
		show(sysinfo.RunnerTitle, pairs)
	}

	if cfg.ShowEnv {
		if err := checkCanceled(ctx, "environment variables"); err != nil {
			return err
		}
		pairs := env.Collect(provider.Environ())
		logger.Debug().Int("variables", len(pairs)).Msg("Collected environment variables")
		grouped := env.DisplayEnvVars(action, pairs)
		if len(grouped.Singles) > 0 {
			entries = append(entries, summary.Entry{Section: grouped.SinglesTitle(), Count: len(grouped.Singles)})
		}
		for _, section := range grouped.Sections {
			entries = append(entries, summary.Entry{Section: section.Title(), Count: len(section.Pairs)})
		}
		logger.Debug().Int("sections", len(grouped.Sections)).Msg("Displayed environment variables")
	}

	if cfg.ShowSystem {
		if err := checkCanceled(ctx, "system information"); err != nil {
			return err
		}
		logger.Debug().Str("format", string(cfg.ValueFormat)).Msg("Collecting system information")
		pairs, err := sysinfo.SystemInfo(provider, cfg.ValueFormat)
		if err != nil {
			return fmt.Errorf("failed to collect system information: %w", err)
		}
		show(sysinfo.SystemTitle, pairs)
	}

	if cfg.ShowContext && cfg.InActions {
		if err := checkCanceled(ctx, "GitHub context"); err != nil {
			return err
		}
		pairs, err := githubContextInfo(action)
		if err != nil {
			// A broken event payload only loses this section
			action.Warningf("Failed to read GitHub context: %v", err)
		} else {
			show(ContextTitle, pairs)
		}
	}

	if cfg.Summary {
		if cfg.StepSummaryFile == "" {
			action.Warningf("GITHUB_STEP_SUMMARY is not set. Skipping job summary.")
		} else {
			summary.Write(action, entries)
		}
	}

	logger.Debug().Int("sections", len(entries)).Msg("Environment inspection finished")
	return nil
}

func checkCanceled(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("canceled before %s: %w", stage, err)
	}
	return nil
}

func githubContextInfo(action *githubactions.Action) ([]display.Pair, error) {
	ghctx, err := action.Context()
	if err != nil {
		return nil, err
	}
	return []display.Pair{
		{Key: "Workflow", Value: ghctx.Workflow},
		{Key: "Job", Value: ghctx.Job},
		{Key: "Event", Value: ghctx.EventName},
		{Key: "Actor", Value: ghctx.Actor},
		{Key: "Repository", Value: ghctx.Repository},
		{Key: "Ref", Value: ghctx.Ref},
		{Key: "SHA", Value: ghctx.SHA},
		{Key: "Run ID", Value: fmt.Sprint(ghctx.RunID)},
		{Key: "Run Number", Value: fmt.Sprint(ghctx.RunNumber)},
		{Key: "Server URL", Value: ghctx.ServerURL},
	}, nil
}
