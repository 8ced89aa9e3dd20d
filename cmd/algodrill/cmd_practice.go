package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/algodrill/internal/tui"
)

func newPracticeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "practice [id]",
		Short: "Start the interactive practice UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return fmt.Errorf("practice needs an interactive terminal (try 'algodrill show <id>')")
			}
			if err := a.setup(cmd, true); err != nil {
				return err
			}

			id := a.cfg.Practice.DefaultAlgorithm
			if len(args) == 1 {
				id = args[0]
			}
			a.logger.Info("practice started", "algorithm", id)
			return tui.Run(a.service(), id)
		},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
