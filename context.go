package pargo

import (
	"github.com/halfbit/pargo/cursor"
	"github.com/halfbit/pargo/tree"
)

// Context pairs a cursor with the tree currently being accumulated. It is a
// value type: every helper below returns a new Context rather than
// mutating the receiver, which is what lets a failed sub-evaluation
// backtrack for free — the caller simply keeps the pre-call Context value
// around and the advanced one is garbage.
type Context struct {
	cur  cursor.Cursor
	root tree.Tree
}

func newContext(input string, offset int, rootID string) Context {
	return Context{cur: cursor.New(input, offset), root: tree.New(rootID, offset)}
}

// Cursor returns the context's current input cursor.
func (c Context) Cursor() cursor.Cursor {
	return c.cur
}

// Tree returns the tree accumulated so far.
func (c Context) Tree() tree.Tree {
	return c.root
}

// Progress returns the cursor's current character position.
func (c Context) Progress() int {
	return c.cur.Position()
}

// Char returns the character the cursor is currently positioned over.
func (c Context) Char() rune {
	return c.cur.Char()
}

// advance returns a copy of c with the cursor moved one character forward.
func (c Context) advance() Context {
	return Context{cur: c.cur.Advance(), root: c.root}
}

// rebase returns a context with the same cursor but a fresh root tree,
// ready for a capture or keep to accumulate into.
func (c Context) rebase(id string) Context {
	return Context{cur: c.cur, root: tree.New(id, c.cur.Position())}
}

// terminate returns a context whose root's span is closed at the current
// cursor position.
func (c Context) terminate() Context {
	return Context{cur: c.cur, root: c.root.Terminate(c.cur.Position())}
}

// adopt incorporates other — a descendant context from a successful
// sub-evaluation — into c: the returned context's root gains other's
// (terminated) root as its next child, and its cursor is whichever of c's
// or other's has made more progress. The progress-max rule is what
// propagates forward motion out of a sub-evaluation even when, for
// instance, a capture's body matched further than its own enclosing rule
// had previously advanced.
func (c Context) adopt(other Context) Context {
	term := other.terminate()
	cur := c.cur
	if term.cur.Position() > cur.Position() {
		cur = term.cur
	}
	return Context{cur: cur, root: c.root.Adopt(term.root)}
}
