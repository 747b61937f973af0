package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailstack/internal/config"
	"github.com/alexisbeaulieu97/tailstack/internal/logger"
	"github.com/alexisbeaulieu97/tailstack/internal/purge"
	"github.com/alexisbeaulieu97/tailstack/internal/stylesheet"
	"github.com/alexisbeaulieu97/tailstack/internal/ui"
	"github.com/alexisbeaulieu97/tailstack/pkg/diff"
	tailerrors "github.com/alexisbeaulieu97/tailstack/pkg/errors"
)

type buildOptions struct {
	ConfigPath string
	OutputPath string
	Purge      bool
	NoPurge    bool
	Check      bool
	Verbose    bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the utility stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateBuildOptions(opts); err != nil {
				return err
			}

			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write CSS to this file instead of the configured output (- for stdout)")
	cmd.Flags().BoolVar(&opts.Purge, "purge", false, "Remove utilities not found in content files")
	cmd.Flags().BoolVar(&opts.NoPurge, "no-purge", false, "Keep every generated utility")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Fail with a diff if the output file is not up to date instead of writing it")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runBuild(cmd *cobra.Command, opts buildOptions) error {
	proj, err := loadProject(cmd, opts.ConfigPath, opts.Verbose)
	if err != nil {
		return err
	}

	sheet := proj.sheet
	generated := sheet.Len()

	if shouldPurge(proj.cfg, proj.env, opts) {
		sheet, err = purgeSheet(cmd.Context(), proj.cfg, sheet, proj.log)
		if err != nil {
			return newCommandError("purge utilities", "scanning content files", err, "Check the purge.content globs and the extractor pattern.")
		}
	}

	var buf bytes.Buffer
	if err := sheet.Render(&buf); err != nil {
		return newCommandError("render stylesheet", "writing CSS", err, "This is a bug in tailstack; please report it.")
	}

	dest := outputPath(proj.cfg, opts.OutputPath)
	if opts.Check {
		return checkOutput(cmd, dest, buf.Bytes(), proj.log)
	}
	if err := writeOutput(cmd, dest, buf.Bytes()); err != nil {
		return newCommandError("write stylesheet", dest, err, "Check that the output directory is writable.")
	}

	size := humanize.Bytes(uint64(buf.Len()))
	proj.log.WithFields(map[string]any{
		"rules":  sheet.Len(),
		"purged": generated - sheet.Len(),
		"size":   size,
		"output": displayPath(dest),
	}).Info("stylesheet built")

	if dest != "" {
		styles := ui.StylesFor(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d rules (%s) to %s\n",
			styles.Success.Render("Wrote"), sheet.Len(), size, dest)
	}

	return nil
}

// shouldPurge applies flag overrides on top of the configured behaviour.
func shouldPurge(cfg *config.Config, env *config.Env, opts buildOptions) bool {
	switch {
	case opts.Purge:
		return true
	case opts.NoPurge:
		return false
	}
	return cfg.PurgeEnabled(env)
}

func purgeSheet(ctx context.Context, cfg *config.Config, sheet *stylesheet.Sheet, log *logger.Logger) (*stylesheet.Sheet, error) {
	if len(cfg.Purge.Content) == 0 {
		log.Warn("purge enabled without content globs; only safelisted utilities are kept")
	}

	paths, err := purge.ResolveContent(cfg.Dir(), cfg.Purge.Content)
	if err != nil {
		return nil, err
	}
	sources, err := purge.ReadSources(ctx, paths)
	if err != nil {
		return nil, err
	}

	extractor, err := purge.NewExtractor(cfg.Purge.Extractor)
	if err != nil {
		return nil, err
	}
	purger := purge.New(extractor, cfg.Purge.Safelist)
	tokens, err := purger.Collect(ctx, sources)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"files": len(sources), "tokens": len(tokens)}).Debug("content scanned")
	return sheet.Filter(purger.Keep), nil
}

// outputPath returns the destination file, or "" for stdout. A relative
// configured output is resolved against the config file's directory.
func outputPath(cfg *config.Config, flagValue string) string {
	switch {
	case flagValue == "-":
		return ""
	case flagValue != "":
		return flagValue
	case cfg.Output == "" || cfg.Output == "-":
		return ""
	case filepath.IsAbs(cfg.Output):
		return cfg.Output
	}
	return filepath.Join(cfg.Dir(), cfg.Output)
}

func writeOutput(cmd *cobra.Command, dest string, css []byte) error {
	if dest == "" {
		if _, err := cmd.OutOrStdout().Write(css); err != nil {
			return tailerrors.NewOutputError("stdout", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return tailerrors.NewOutputError(dest, err)
	}
	if err := os.WriteFile(dest, css, 0o644); err != nil {
		return tailerrors.NewOutputError(dest, err)
	}
	return nil
}

// checkOutput compares the rendered CSS with the file at dest and prints a
// diff when they differ.
func checkOutput(cmd *cobra.Command, dest string, css []byte, log *logger.Logger) error {
	if dest == "" {
		return newCommandError("check stylesheet", "no output file", fmt.Errorf("--check needs an output file"), "Set output in the config or pass -o <file>.")
	}

	current, err := os.ReadFile(dest)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("check stylesheet", dest, tailerrors.NewOutputError(dest, err), "Check that the output file is readable.")
	}

	styles := ui.StylesFor(cmd.OutOrStdout())
	unified := diff.Unified(current, css, dest, "generated")
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Success.Render("Up to date:"), dest)
		return nil
	}

	removed, added := diff.Changed(current, css)
	log.WithFields(map[string]any{"output": dest, "removed": removed, "added": added}).Warn("stylesheet out of date")
	fmt.Fprint(cmd.OutOrStdout(), unified)
	return newCommandError("check stylesheet", dest,
		fmt.Errorf("out of date: %d lines removed, %d lines added", removed, added),
		"Run tailstack build without --check to regenerate it.")
}

func displayPath(dest string) string {
	if dest == "" {
		return "stdout"
	}
	return dest
}
