package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/advent/pkg/days"
	"github.com/dmitrymomot/advent/pkg/input"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available days and their input files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, p := range days.All(a.cfg.puzzleOptions(a.log)) {
				_, err := fmt.Fprintf(a.stdout, "Day %2d  %-20s %s\n",
					p.Day(), p.Title(), input.Path(a.cfg.Runner.InputDir, p.Day()))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
