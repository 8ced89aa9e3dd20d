package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/algodrill/internal/practice"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice history per algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			store, err := a.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(out, "History is disabled")
				return nil
			}
			records, err := store.ListRecords()
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No practice history yet")
				return nil
			}

			stats := practice.Summarize(records)
			var problems, solved int
			for _, st := range stats {
				problems += st.Problems
				solved += st.Solved
			}

			fmt.Fprintln(out, "Practice Statistics")
			fmt.Fprintln(out, "===================")
			fmt.Fprintf(out, "Problems:   %d\n", problems)
			fmt.Fprintf(out, "Solved:     %d\n", solved)
			fmt.Fprintf(out, "Algorithms: %d\n\n", len(stats))

			for _, st := range stats {
				name := st.AlgorithmID
				if e, err := a.registry.Get(st.AlgorithmID); err == nil {
					name = e.Name()
				}
				code := "-"
				if st.BestCode >= 0 {
					code = fmt.Sprintf("%d%%", st.BestCode)
				}
				fmt.Fprintf(out, "%-28s %s %3d%%  %d/%d solved  %d attempts  %d revealed  code %s\n",
					name, renderProgressBar(float64(st.Accuracy())/100, 10), st.Accuracy(),
					st.Solved, st.Problems, st.Attempts, st.Revealed, code)
			}
			return nil
		},
	}
}
