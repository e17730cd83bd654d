package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/pflag"

	"github.com/runs-on/envinfo/internal/utils"
)

// Config holds the action's configuration values derived from inputs and environment.
type Config struct {
	Name        string
	ShowEnv     bool
	ShowRunner  bool
	ShowSystem  bool
	ShowContext bool
	Summary     bool
	ValueFormat utils.Format
	LogLevel    zerolog.Level

	// InActions is set when running as a GitHub Actions step.
	InActions       bool
	StepSummaryFile string
}

// NewConfigFromInputs parses action inputs and environment variables to build the Config struct.
func NewConfigFromInputs(action *githubactions.Action) *Config {
	cfg := &Config{
		Name:        action.GetInput("name"),
		ShowEnv:     parseBoolInput(action, "show_env", true),
		ShowRunner:  parseBoolInput(action, "show_runner", true),
		ShowSystem:  parseBoolInput(action, "show_system", true),
		ShowContext: parseBoolInput(action, "show_context", true),
		Summary:     parseBoolInput(action, "summary", false),
		ValueFormat: utils.FormatJSON,
		LogLevel:    zerolog.InfoLevel,
		InActions:   os.Getenv("GITHUB_ACTIONS") == "true",

		StepSummaryFile: os.Getenv("GITHUB_STEP_SUMMARY"),
	}

	if formatStr := action.GetInput("value_format"); formatStr != "" {
		format, err := utils.ParseFormat(formatStr)
		if err != nil {
			action.Warningf("Error parsing 'value_format' input: %v. Assuming %s.", err, cfg.ValueFormat)
		} else {
			cfg.ValueFormat = format
		}
	}

	if levelStr := action.GetInput("log_level"); levelStr != "" {
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			action.Warningf("Error parsing 'log_level' input '%s': %v. Assuming %s.", levelStr, err, cfg.LogLevel)
		} else {
			cfg.LogLevel = level
		}
	}
	// Re-running a job with debug logging enabled sets RUNNER_DEBUG=1
	if os.Getenv("RUNNER_DEBUG") == "1" && cfg.LogLevel > zerolog.DebugLevel {
		cfg.LogLevel = zerolog.DebugLevel
	}

	return cfg
}

func parseBoolInput(action *githubactions.Action, name string, fallback bool) bool {
	s := action.GetInput(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		action.Warningf("Error parsing '%s' input '%s': %v. Assuming %t.", name, s, err, fallback)
		return fallback
	}
	return v
}

// Flags registers the command-line overrides used for local runs.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("envinfo", pflag.ContinueOnError)
	fs.String("name", "", "Name to greet before the report")
	fs.Bool("summary", false, "Write a section table to the job summary")
	fs.String("value-format", string(utils.FormatJSON), "Serialization of structured values (json or yaml)")
	return fs
}

// ApplyFlags overrides inputs with the flags explicitly set on the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if fs.Changed("name") {
		name, err := fs.GetString("name")
		if err != nil {
			return err
		}
		c.Name = name
	}
	if fs.Changed("summary") {
		summary, err := fs.GetBool("summary")
		if err != nil {
			return err
		}
		c.Summary = summary
	}
	if fs.Changed("value-format") {
		formatStr, err := fs.GetString("value-format")
		if err != nil {
			return err
		}
		format, err := utils.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		c.ValueFormat = format
	}
	return nil
}
