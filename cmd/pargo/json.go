package main

import (
	"github.com/spf13/cobra"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/internal/jsongrammar"
	"github.com/halfbit/pargo/renderer"
)

func init() {
	cmd := &cobra.Command{
		Use:     "json <text>",
		Short:   "Parse a JSON value and print its tree",
		Example: `  pargo json '{"a": [1, 2, 3]}'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runJSON,
	}
	rootCmd.AddCommand(cmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, err := pargo.Apply(input, jsongrammar.Grammar(), pargo.Exact())
	if err != nil {
		renderer.Render(cmd.OutOrStderr(), input, err.(*pargo.SyntaxError))
		return err
	}
	ctx.Tree().Inspect(cmd.OutOrStdout())
	return nil
}
