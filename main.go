package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/pflag"

	"github.com/runs-on/envinfo/internal/config"
	"github.com/runs-on/envinfo/internal/runner"
	"github.com/runs-on/envinfo/internal/sysinfo"
)

const failurePrefix = "Failed to inspect environment"

// handleMainExecution loads the configuration and renders the report.
func handleMainExecution(action *githubactions.Action, ctx context.Context, args []string) error {
	cfg := config.NewConfigFromInputs(action)

	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.ApplyFlags(flags); err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).Level(cfg.LogLevel).With().Timestamp().Logger()
	logger.Debug().Bool("actions", cfg.InActions).Msg("Starting environment inspection")

	return runner.Run(ctx, action, &logger, cfg, sysinfo.NewHostProvider())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	action := githubactions.New()

	defer func() {
		if r := recover(); r != nil {
			action.Fatalf("%s: %v", failurePrefix, r)
		}
	}()

	if err := handleMainExecution(action, ctx, os.Args[1:]); err != nil {
		action.Fatalf("%s: %v", failurePrefix, err)
	}
}
