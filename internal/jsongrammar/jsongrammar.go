/*
Package jsongrammar is the recursive JSON value grammar used by the
pargo CLI's json subcommand and its repl sandbox.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jsongrammar

import (
	"fmt"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/combinator"
	"github.com/halfbit/pargo/mapper"
	"github.com/halfbit/pargo/tree"
)

// Grammar builds a JSON value grammar: a value rule that ahead-references
// itself through the object and array alternatives, a keep-based number
// rule, and capture-based string, object and array rules.
func Grammar() pargo.Rule {
	value := pargo.NewAhead()
	ws := pargo.Range(' ', ' ').Or(pargo.Char('\t')).Or(pargo.Char('\n')).Or(pargo.Char('\r')).Times(0, -1)

	digits := pargo.Range('0', '9').Times(1, -1)
	fraction := pargo.Char('.').Then(digits)
	exponent := pargo.Char('e').Or(pargo.Char('E')).
		Then(pargo.Char('+').Or(pargo.Char('-')).Times(0, 1)).
		Then(digits)
	number := pargo.Capture(
		pargo.Keep(pargo.Char('-').Times(0, 1).Then(digits).Then(fraction.Times(0, 1)).Then(exponent.Times(0, 1)), "value"),
		"number")

	notQuoteOrBackslash := pargo.Range(0x20, 0x10FFFF).Refusing(pargo.Char('"').Or(pargo.Char('\\')))
	escape := pargo.Char('\\').Then(pargo.Range(0x20, 0x10FFFF))
	stringChars := notQuoteOrBackslash.Or(escape).Times(0, -1)
	jsonString := pargo.Capture(pargo.Char('"').Then(pargo.Keep(stringChars, "value")).Then(pargo.Char('"')), "string")

	boolOrNull := combinator.Lit("true").Or(combinator.Lit("false")).Or(combinator.Lit("null"))

	pair := pargo.Capture(jsonString.Then(ws).Then(pargo.Char(':')).Then(ws).Then(value.Rule()), "pair")
	object := pargo.Capture(
		pargo.Char('{').Then(ws).Then(
			pair.Then(ws).Then(pargo.Char(',').Then(ws).Then(pair).Times(0, -1)).Times(0, 1),
		).Then(ws).Then(pargo.Char('}')),
		"object")

	element := value.Rule()
	array := pargo.Capture(
		pargo.Char('[').Then(ws).Then(
			element.Then(ws).Then(pargo.Char(',').Then(ws).Then(element).Times(0, -1)).Times(0, 1),
		).Then(ws).Then(pargo.Char(']')),
		"array")

	value.Put(ws.Then(pargo.Tourney(object, array, jsonString, number, boolOrNull)).Then(ws))

	return value.Rule()
}

// Reduce folds a tree produced by Grammar into a plain interface{} value:
// root -> first child, number/string -> primitive, object -> merged map
// of pair children, array -> children.
func Reduce(t tree.Tree) interface{} {
	return mapper.Map(t, func(n tree.Tree, children []interface{}) interface{} {
		switch n.ID() {
		case "number":
			var f float64
			fmt.Sscanf(n.GetAttr("value"), "%g", &f)
			return f
		case "string":
			return n.GetAttr("value")
		case "true":
			return true
		case "false":
			return false
		case "null":
			return nil
		case "pair":
			key := n.MustDig(0).GetAttr("value")
			return map[string]interface{}{key: children[1]}
		case "object":
			merged := map[string]interface{}{}
			for _, c := range children {
				for k, v := range c.(map[string]interface{}) {
					merged[k] = v
				}
			}
			return merged
		case "array":
			return children
		default:
			if len(children) == 0 {
				return nil
			}
			return children[0]
		}
	})
}
