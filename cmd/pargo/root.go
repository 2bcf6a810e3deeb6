package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pargo",
	Short: "Example programs for the pargo parser-combinator library",
	Long: `pargo bundles three worked examples:
- calc: evaluate arithmetic expressions
- json: parse and print a JSON value
- repl: an interactive grammar sandbox`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
