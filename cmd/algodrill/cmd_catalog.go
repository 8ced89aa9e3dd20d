package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/algodrill/internal/catalog"
	"github.com/felixgeelhaar/algodrill/internal/domain"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List algorithms by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}

			categories := a.registry.Categories()
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []domain.Category{c}
			}

			out := cmd.OutOrStdout()
			for i, c := range categories {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", c.Title())
				for _, e := range a.registry.ListByCategory(c) {
					fmt.Fprintf(out, "  %-24s %s\n", e.ID(), e.Name())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show an algorithm's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			entry, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd, entry)
			return nil
		},
	}
}

func printInfo(cmd *cobra.Command, e *catalog.Entry) {
	out := cmd.OutOrStdout()
	alg := e.Algorithm

	fmt.Fprintf(out, "%s (%s)\n", alg.Name, e.ID())
	fmt.Fprintf(out, "Category:   %s\n", e.Category().Title())
	if alg.Signature != "" {
		fmt.Fprintf(out, "Signature:  %s\n", alg.Signature)
	}
	fmt.Fprintf(out, "Instance:   %s\n", e.Shape.Kind)

	langs := make([]string, 0, len(alg.Languages()))
	for _, l := range alg.Languages() {
		langs = append(langs, l.Label())
	}
	fmt.Fprintf(out, "Languages:  %s\n", strings.Join(langs, ", "))
	fmt.Fprintf(out, "Rubric:     %d criteria\n", len(alg.Rubric.Criteria))
	if alg.Hint != "" {
		fmt.Fprintf(out, "\nHint: %s\n", alg.Hint)
	}
}

func newCodeCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "code <id>",
		Short: "Print reference code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			entry, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}

			l := a.cfg.Language()
			if lang != "" {
				if l, err = domain.ParseLanguage(lang); err != nil {
					return err
				}
			}
			code, ok := entry.Algorithm.Code(l)
			if !ok {
				return fmt.Errorf("%s has no %s code: %w", entry.ID(), l.Label(), domain.ErrUnsupportedLanguage)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(code, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "java, cpp, python or pseudo (default from config)")
	return cmd
}
