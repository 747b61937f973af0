package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailstack/internal/purge"
)

type extractOptions struct {
	Pattern string
	Verbose bool
}

func newExtractCmd(root *rootFlags) *cobra.Command {
	opts := extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Print the class tokens purge would find in content",
		Long:  "Runs the content extractor over the given files, or stdin when none are given, and prints each unique token once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return runExtract(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Extractor regular expression (defaults to "+purge.DefaultPattern+")")

	return cmd
}

func runExtract(cmd *cobra.Command, opts extractOptions, files []string) error {
	_, log, err := loadEnvironment(cmd, opts.Verbose)
	if err != nil {
		return err
	}

	extractor, err := purge.NewExtractor(opts.Pattern)
	if err != nil {
		return newCommandError("extract tokens", "compiling pattern", err, "Pass a valid Go regular expression to --pattern.")
	}

	var sources []purge.Source
	if len(files) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return newCommandError("extract tokens", "reading stdin", err, "Pipe content in or pass file paths.")
		}
		sources = []purge.Source{{Path: "-", Text: string(data)}}
	} else {
		sources, err = purge.ReadSources(cmd.Context(), files)
		if err != nil {
			return newCommandError("extract tokens", "reading content files", err, "Check that every path exists and is readable.")
		}
	}

	tokens, err := purge.New(extractor, nil).Collect(cmd.Context(), sources)
	if err != nil {
		return newCommandError("extract tokens", "scanning content", err, "Try again.")
	}

	log.WithFields(map[string]any{"sources": len(sources), "tokens": len(tokens)}).Debug("tokens extracted")
	for _, tok := range tokens.Sorted() {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
