/*
Package combinator provides shorthand wrappers over the core rule algebra
in package pargo: Maybe, Some, Many, Sep and Lit. None of these add new
evaluation behavior — each is defined purely in terms of Rule.Times,
Rule.Then and pargo.Capture — they exist only to save callers from
spelling out the equivalent Times/Then/Capture expression by hand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combinator

import "github.com/halfbit/pargo"

// Maybe matches r zero or one times: r.Times(0, 1).
func Maybe(r pargo.Rule) pargo.Rule {
	return r.Times(0, 1)
}

// Some matches r zero or more times: r.Times(0, -1).
func Some(r pargo.Rule) pargo.Rule {
	return r.Times(0, -1)
}

// Many matches r one or more times: r.Times(1, -1).
func Many(r pargo.Rule) pargo.Rule {
	return r.Times(1, -1)
}

// Sep matches a non-empty, by-separated sequence of r: one r, then zero or
// more (by, r) pairs. Equivalent to r.Then(Some(by.Then(r))).
func Sep(r, by pargo.Rule) pargo.Rule {
	return r.Then(Some(by.Then(r)))
}

// Lit matches the literal string s and captures it under an id equal to s
// itself, so that a successful match of "true" produces a child node with
// ID "true" rather than a generic, caller-chosen label. Equivalent to
// pargo.Capture(pargo.Str(s), s).
func Lit(s string) pargo.Rule {
	return pargo.Capture(pargo.Str(s), s)
}
