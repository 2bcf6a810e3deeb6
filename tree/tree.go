/*
Package tree implements the persistent parse-tree data model: an immutable
node carrying an identifier, a character-indexed span, an ordered list of
children, and a string-to-string attribute map.

A Tree is produced only through its constructor and the three mutator-like
methods Adopt, SetAttr and Terminate, each of which returns a new value and
leaves the receiver untouched. Children and attributes are held in
path-copying linked lists (see list.go) so that two trees reachable from
different points of a backtracking parse may share the bulk of their
structure; this is the same discipline the teacher's lr/sppf.Forest uses to
let ambiguous derivations share sub-structure, scaled down to the single
child-list-plus-attribute-list a backtracking (non-ambiguous) parser needs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pargo.tree'.
func tracer() tracing.Trace {
	return tracing.Select("pargo.tree")
}

// Tree is an immutable, persistent parse-tree node. The zero value is not a
// valid Tree for application purposes (it has an empty id); use New to
// construct one.
type Tree struct {
	id       string
	begin    int
	span     int
	children *childList
	attrs    *attrList
}

// New creates an empty-span, childless, attribute-less tree labeled id,
// starting at character index begin.
func New(id string, begin int) Tree {
	if id == "" {
		panic("tree: id must not be empty")
	}
	if begin < 0 {
		panic("tree: begin must not be negative")
	}
	return Tree{id: id, begin: begin}
}

// ID returns the tree's label.
func (t Tree) ID() string {
	return t.id
}

// Begin returns the character index at which the tree started matching.
func (t Tree) Begin() int {
	return t.begin
}

// Span returns the number of characters the tree covers.
func (t Tree) Span() int {
	return t.span
}

// End returns Begin() + Span().
func (t Tree) End() int {
	return t.begin + t.span
}

// Adopt returns a copy of t with child appended as its next child, in
// O(1) time and without disturbing any other Tree value that shares t's
// child list.
func (t Tree) Adopt(child Tree) Tree {
	t.children = t.children.append(child)
	return t
}

// SetAttr returns a copy of t with attribute name bound to value,
// inserting it if absent or overwriting it if present.
func (t Tree) SetAttr(name, value string) Tree {
	if name == "" {
		panic("tree: attribute name must not be empty")
	}
	t.attrs = t.attrs.set(name, value)
	return t
}

// Terminate returns a copy of t whose span now ends at character index at.
// It panics if at < t.Begin(): a negative span is a programmer error, not a
// parse failure. at == t.Begin() is legal and yields a zero-span tree,
// which is what a successful match of the empty rule (or of a capture
// wrapping it) produces.
func (t Tree) Terminate(at int) Tree {
	if at < t.begin {
		panic(fmt.Sprintf("tree: Terminate(%d) must not be less than begin %d", at, t.begin))
	}
	t.span = at - t.begin
	return t
}

// GetAttr returns the value bound to name, panicking if it is absent. Use
// GetAttrOK for the non-fatal form.
func (t Tree) GetAttr(name string) string {
	v, ok := t.attrs.get(name)
	if !ok {
		panic(fmt.Sprintf("tree: no such attribute %q on tree %q", name, t.id))
	}
	return v
}

// GetAttrOK returns the value bound to name and whether it was present.
func (t Tree) GetAttrOK(name string) (string, bool) {
	return t.attrs.get(name)
}

// AttrNames returns the distinct attribute names set on t, in no
// guaranteed order.
func (t Tree) AttrNames() []string {
	return t.attrs.keys()
}

// NumChildren returns the number of children adopted by t.
func (t Tree) NumChildren() int {
	return t.children.size()
}

// Children materializes t's children, in adoption (input) order, as a
// plain slice. Internally the ordered view is built through a
// gods/lists/arraylist.List so that the indexable-sequence contract of the
// query surface is backed by a real off-the-shelf container rather than a
// bespoke one.
func (t Tree) Children() []Tree {
	raw := t.children.slice()
	l := arraylist.New()
	for _, c := range raw {
		l.Add(c)
	}
	out := make([]Tree, l.Size())
	for i := 0; i < l.Size(); i++ {
		v, _ := l.Get(i)
		out[i] = v.(Tree)
	}
	return out
}

// Child returns the i-th child (0-indexed, input order) and whether it
// exists.
func (t Tree) Child(i int) (Tree, bool) {
	return t.children.at(i)
}

// Dig navigates the tree by a sequence of steps, each either a string
// (selecting the first child whose ID equals the string) or an int
// (selecting the n-th child). It returns the tree reached and whether every
// step could be resolved.
func (t Tree) Dig(steps ...any) (Tree, bool) {
	cur := t
	for _, step := range steps {
		var next Tree
		var ok bool
		switch s := step.(type) {
		case string:
			for _, c := range cur.children.slice() {
				if c.id == s {
					next, ok = c, true
					break
				}
			}
		case int:
			next, ok = cur.children.at(s)
		default:
			panic(fmt.Sprintf("tree: Dig step must be string or int, got %T", step))
		}
		if !ok {
			return Tree{}, false
		}
		cur = next
	}
	return cur, true
}

// MustDig is the fatal counterpart to Dig: it panics if any step fails to
// resolve, matching the "programming error" class from the error-handling
// design (dig on a non-existent path via the non-optional form).
func (t Tree) MustDig(steps ...any) Tree {
	got, ok := t.Dig(steps...)
	if !ok {
		panic(fmt.Sprintf("tree: Dig(%v) could not be resolved on tree %q", steps, t.id))
	}
	return got
}

func (t Tree) String() string {
	return fmt.Sprintf("%s⸢%d-%d⸥", t.id, t.Begin(), t.End())
}
