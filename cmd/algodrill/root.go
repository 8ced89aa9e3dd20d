package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "algodrill",
		Short: "Practice algorithms on generated problems",
		Long: `algodrill generates small random problem instances for classic algorithms
and data structures, checks your answers against a reference solver and
scores free-text code submissions with a keyword rubric.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "also log to stderr")
	root.PersistentFlags().BoolVar(&a.noHistory, "no-history", false, "do not record practice history")

	root.AddCommand(
		newListCmd(a),
		newInfoCmd(a),
		newCodeCmd(a),
		newShowCmd(a),
		newSolveCmd(a),
		newCheckCmd(a),
		newAnalyzeCmd(a),
		newPracticeCmd(a),
		newStatsCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "algodrill %s\n", Version)
		},
	}
}
