package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailstack/internal/config"
	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	"github.com/alexisbeaulieu97/tailstack/internal/plugin"
	"github.com/alexisbeaulieu97/tailstack/internal/stylesheet"
	"github.com/alexisbeaulieu97/tailstack/internal/theme"
)

// project is a loaded configuration with its generated sheet.
type project struct {
	env   *config.Env
	log   *logger.Logger
	cfg   *config.Config
	sheet *stylesheet.Sheet
}

func newCommandLogger(cmd *cobra.Command, env *config.Env, verbose bool) (*logger.Logger, error) {
	level := env.LogLevel
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: env.HumanReadable(),
		Writer:        cmd.ErrOrStderr(),
	})
}

func loadEnvironment(cmd *cobra.Command, verbose bool) (*config.Env, *logger.Logger, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, nil, newCommandError("read environment", "loading NODE_ENV and TAILSTACK_* variables", err, "Set TAILSTACK_LOG_FORMAT to console or json.")
	}

	log, err := newCommandLogger(cmd, env, verbose)
	if err != nil {
		return nil, nil, newCommandError("read environment", "configuring logger", err, "Set TAILSTACK_LOG_LEVEL to debug, info, warn or error.")
	}
	return env, log, nil
}

func loadProject(cmd *cobra.Command, configPath string, verbose bool) (*project, error) {
	env, log, err := loadEnvironment(cmd, verbose)
	if err != nil {
		return nil, err
	}

	cfg, err := config.ParseConfig(configPath)
	if err != nil {
		return nil, newCommandError("load configuration", fmt.Sprintf("parsing %s", configPath), err, "Fix the reported field and run the command again.")
	}
	log = log.WithFields(map[string]any{"config": cfg.Path})

	th := cfg.ResolveTheme()
	registry, err := newPluginRegistry(log)
	if err != nil {
		return nil, newCommandError("generate utilities", "registering plugins", err, "This is a bug in tailstack; please report it.")
	}

	variants := stylesheet.NewVariants(cfg.Variants)
	api := plugin.NewAPI(th, variants.For)
	groups, err := plugin.Run(cmd.Context(), registry, api, log)
	if err != nil {
		return nil, newCommandError("generate utilities", "running plugins", err, "Check the theme scales the failing plugin reads.")
	}

	screens, _ := th.Lookup(theme.Screens)
	sheet, err := stylesheet.Build(groups, screens, log)
	if err != nil {
		return nil, newCommandError("generate utilities", "expanding variants", err, "Remove the unknown variant from the variants section.")
	}

	log.WithFields(map[string]any{"groups": len(groups), "rules": sheet.Len()}).Debug("utilities generated")
	return &project{env: env, log: log, cfg: cfg, sheet: sheet}, nil
}
