package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/combinator"
	"github.com/halfbit/pargo/internal/exprgrammar"
	"github.com/halfbit/pargo/internal/jsongrammar"
	"github.com/halfbit/pargo/renderer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive grammar sandbox",
		RunE:  runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func replGrammars() map[string]pargo.Rule {
	boolean := combinator.Lit("true").Or(combinator.Lit("false"))
	return map[string]pargo.Rule{
		"boolean": boolean,
		"calc":    exprgrammar.Grammar(),
		"json":    jsongrammar.Grammar(),
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	pterm.Info.Println("Welcome to the pargo grammar sandbox")

	current := "boolean"
	rules := replGrammars()

	rl, err := readline.New("pargo> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Printf("active grammar: %s (:use <name>, :list, <ctrl>D to quit)\n", current)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err != io.EOF {
				return err
			}
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":use ") {
			name := strings.TrimSpace(strings.TrimPrefix(line, ":use "))
			if _, ok := rules[name]; !ok {
				pterm.Error.Printf("no such grammar: %s\n", name)
				continue
			}
			current = name
			continue
		}
		if line == ":list" {
			for name := range rules {
				fmt.Println(name)
			}
			continue
		}

		ctx, err := pargo.Apply(line, rules[current], pargo.Exact())
		if err != nil {
			renderer.Render(cmd.OutOrStdout(), line, err.(*pargo.SyntaxError))
			continue
		}
		ctx.Tree().Inspect(cmd.OutOrStdout())
	}
}
