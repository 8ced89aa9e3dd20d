package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/algodrill/internal/practice"
)

// start generates the problem for id, reproducing seed when non-zero
func start(svc *practice.Service, id string, seed int64) (*practice.Session, error) {
	if seed != 0 {
		return svc.StartSeeded(id, seed)
	}
	return svc.Start(id)
}

func newShowCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Generate a problem and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			svc := a.service()
			session, err := start(svc, args[0], seed)
			if err != nil {
				return err
			}
			entry, err := svc.Entry()
			if err != nil {
				return err
			}
			question, err := svc.Question()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)  seed %d\n\n", entry.Name(), entry.Category().Title(), session.Seed)
			if drawing := a.renderer(out).Instance(session.Instance); drawing != "" {
				fmt.Fprintf(out, "%s\n\n", drawing)
			}
			fmt.Fprintf(out, "Question: %s\n", question)
			fmt.Fprintf(out, "\nCheck with: algodrill check %s --seed %d --answer \"...\"\n", entry.ID(), session.Seed)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "reproduce a problem (0 picks a new one)")
	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		seed  int64
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "solve <id>",
		Short: "Print the canonical answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			svc := a.service()
			if _, err := start(svc, args[0], seed); err != nil {
				return err
			}
			ans, err := svc.Reveal()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ans.Text)
			if trace && len(ans.Trace) > 0 {
				fmt.Fprintln(out, "\nWork:")
				for _, line := range ans.Trace {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "reproduce a problem (0 picks a new one)")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the worked steps")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		seed   int64
		answer string
	)

	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Check an answer; exits 1 when it is wrong",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			svc := a.service()
			if _, err := start(svc, args[0], seed); err != nil {
				return err
			}
			v, err := svc.Check(answer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.Correct {
				fmt.Fprintln(out, "Correct!")
				return nil
			}
			fmt.Fprintf(out, "Incorrect (expected %s)\n", v.Expected)
			return errAnswerMismatch
		},
	}
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "problem seed printed by show")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "your answer")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze <id>",
		Short: "Score a code submission against the keyword rubric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			code, err := readSource(cmd, file)
			if err != nil {
				return err
			}
			if strings.TrimSpace(code) == "" {
				return fmt.Errorf("no code to analyze")
			}

			svc := a.service()
			if _, err := svc.Start(args[0]); err != nil {
				return err
			}
			report, err := svc.SubmitCode(code)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Language: %s\n", report.Language)
			fmt.Fprintf(out, "Score:    %s %d%% (%d/%d criteria)\n\n",
				renderProgressBar(float64(report.Percentage)/100, 20), report.Percentage,
				report.Passed(), len(report.Feedback))
			for _, f := range report.Feedback {
				mark := "✓"
				if !f.Passed {
					mark = "✗"
				}
				fmt.Fprintf(out, "  %s %s\n", mark, f.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "source file, or - for stdin")
	return cmd
}

func readSource(cmd *cobra.Command, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read code: %w", err)
	}
	return string(data), nil
}

// renderProgressBar draws value in [0,1] as a bar of width cells
func renderProgressBar(value float64, width int) string {
	filled := int(value * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
