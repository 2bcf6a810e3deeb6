/*
Package pargo is a parser-combinator toolbox.

Pargo strives to be a small, backtracking grammar engine: grammars are Go
values built from primitive matchers and a handful of combinators, and
applying one to an input yields an immutable, persistent parse tree rather
than a stream of tokens. Package structure is as follows:

■ cursor: Package cursor implements a Unicode-code-point-indexed, O(1)
random-access position over an input string.

■ tree: Package tree implements the persistent, structurally-shared parse
tree and attribute map that grammar evaluation accumulates.

■ combinator: Package combinator layers the common shorthand wrappers
(Maybe, Some, Many, Sep, Lit) on top of the core rule algebra.

■ mapper: Package mapper provides an explicit, generic fold over a parse
tree for converting it into application-specific types.

■ renderer: Package renderer turns a *SyntaxError into a source-anchored,
human-readable diagnostic.

The base package contains the rule algebra and the Apply entry points used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pargo
