package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"srtcheck/internal/config"
	"srtcheck/internal/failure"
	"srtcheck/internal/logging"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "cli", "load config", c.flags.config, err)
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "cli", "validate config", "flag overrides", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// session returns the config, a run scoped logger writing to the command's
// stderr, and a context carrying the run ID.
func (c *commandContext) session(cmd *cobra.Command) (*config.Config, *slog.Logger, context.Context, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	opts := logging.OptionsFromConfig(cfg)
	opts.Stderr = cmd.ErrOrStderr()
	logger, err := logging.New(opts)
	if err != nil {
		return nil, nil, nil, failure.Wrap(failure.ErrConfiguration, "cli", "create logger", "", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	runCtx := logging.WithRunID(parent, uuid.NewString())
	logger = logging.WithContext(runCtx, logger).With(logging.String("command", cmd.Name()))
	return cfg, logger, runCtx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func intFlag(cmd *cobra.Command, name string, flagValue, configValue int) int {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func boolFlag(cmd *cobra.Command, name string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func nonNegative(name string, value int) error {
	if value < 0 {
		return failure.Wrap(failure.ErrConfiguration, "cli", "parse flags", fmt.Sprintf("--%s must be >= 0", name), nil)
	}
	return nil
}
