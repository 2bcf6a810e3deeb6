/*
Package mapper provides a single, explicit visitor for folding a
pargo/tree.Tree into a caller-chosen result type T. It deliberately does
not offer a reflection-based counterpart that dispatches to user types by
inspecting a class hierarchy: Go has no class hierarchy for such
reflection to walk, and the convenience is a collaborator concern that the
core grammar engine does not need.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mapper

import "github.com/halfbit/pargo/tree"

// Map folds t bottom-up: fn is called on every node after all of its
// children have already been folded, receiving the node itself and the
// folded results of its children in adoption order.
func Map[T any](t tree.Tree, fn func(t tree.Tree, children []T) T) T {
	kids := t.Children()
	results := make([]T, len(kids))
	for i, k := range kids {
		results[i] = Map(k, fn)
	}
	return fn(t, results)
}
