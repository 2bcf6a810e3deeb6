package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/internal/exprgrammar"
	"github.com/halfbit/pargo/renderer"
)

func init() {
	cmd := &cobra.Command{
		Use:     "calc <expression>",
		Short:   "Evaluate an arithmetic expression",
		Example: `  pargo calc "1+2*(3-1)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runCalc,
	}
	rootCmd.AddCommand(cmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, "")
	ctx, err := pargo.Apply(input, exprgrammar.Grammar(), pargo.Exact())
	if err != nil {
		renderer.Render(cmd.OutOrStderr(), input, err.(*pargo.SyntaxError))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), exprgrammar.Eval(ctx.Tree()))
	return nil
}
