package main

import (
	"fmt"

	"github.com/katalvlaran/qec/code"
	"github.com/spf13/cobra"
)

// newCodesCmd lists the catalogue.
func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "list the catalogued codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range code.Catalog() {
				c, err := e.New(code.Params{})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %-12s %s\n", e.Name, fmt.Sprintf("[[%d,%d,%d]]", c.N, c.K, c.D), e.Description)
			}

			return nil
		},
	}
}

// newValidateCmd re-runs full structural validation over the catalogue,
// the harness behind the construction-time invariants.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "re-check every catalogued code's structural invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range code.Catalog() {
				c, err := e.New(code.Params{})
				if err != nil {
					return err
				}
				if err = c.Validate(); err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}
				fmt.Fprintf(out, "%-12s ok\n", e.Name)
			}

			return nil
		},
	}
}
