/*
Package exprgrammar is the arithmetic expression grammar used by the
pargo CLI's calc subcommand and its repl sandbox.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprgrammar

import (
	"strconv"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/mapper"
	"github.com/halfbit/pargo/tree"
)

// Grammar returns a rule for
//
//	expr   = term   ( ('+' | '-') term   )*
//	term   = factor ( ('*' | '/') factor )*
//	factor = number | '(' expr ')'
//	number = digit+
func Grammar() pargo.Rule {
	exprAhead := pargo.NewAhead()

	digits := pargo.Range('0', '9').Times(1, -1)
	number := pargo.Capture(pargo.Keep(digits, "value"), "number")

	factor := pargo.Tourney(
		number,
		pargo.Char('(').Then(exprAhead.Rule()).Then(pargo.Char(')')),
	)

	operator := func(chars pargo.Rule) pargo.Rule {
		return pargo.Capture(pargo.Keep(chars, "text"), "op")
	}

	mulOp := operator(pargo.Char('*').Or(pargo.Char('/')))
	term := pargo.Capture(factor.Then(mulOp.Then(factor).Times(0, -1)), "term")

	addOp := operator(pargo.Char('+').Or(pargo.Char('-')))
	expr := pargo.Capture(term.Then(addOp.Then(term).Times(0, -1)), "expr")

	exprAhead.Put(expr)
	return expr
}

// Eval folds a tree produced by Grammar into a float64. term and expr
// nodes are left-associative operator chains: an operand, then
// alternating (operator, operand) pairs.
func Eval(t tree.Tree) float64 {
	return mapper.Map(t, func(n tree.Tree, children []float64) float64 {
		switch n.ID() {
		case "number":
			v, _ := strconv.ParseFloat(n.GetAttr("value"), 64)
			return v
		case "term", "expr":
			return foldOperatorChain(n, children)
		case "op":
			return 0
		default:
			if len(children) == 0 {
				return 0
			}
			return children[0]
		}
	})
}

func foldOperatorChain(n tree.Tree, children []float64) float64 {
	kids := n.Children()
	result := children[0]
	for i := 1; i < len(kids); i += 2 {
		op := kids[i].GetAttr("text")
		rhs := children[i+1]
		switch op {
		case "+":
			result += rhs
		case "-":
			result -= rhs
		case "*":
			result *= rhs
		case "/":
			result /= rhs
		}
	}
	return result
}
