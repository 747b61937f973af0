package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tailstack",
		Short:         "tailstack generates stack spacing and border utility CSS from a theme",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newExtractCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
