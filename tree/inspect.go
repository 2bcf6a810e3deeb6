package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// Inspect renders a multi-line indented view of t to w: each node is
// printed as an "id ⸢begin-end⸥" header followed by key="value" attribute
// pairs, with children nested beneath. Rendering is delegated to
// pterm's tree widget, the same library the teacher's interactive shell
// (terexlang/trepl) uses for colored console output.
func (t Tree) Inspect(w io.Writer) {
	root := toPtermNode(t)
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		// Rendering a tree widget cannot fail for well-formed input; if it
		// ever does, fall back to a plain text dump rather than losing the
		// caller's output entirely.
		fmt.Fprintln(w, plainDump(t, 0))
		return
	}
	fmt.Fprintln(w, s)
}

func toPtermNode(t Tree) pterm.TreeNode {
	header := t.headerText()
	children := t.Children()
	node := pterm.TreeNode{Text: header}
	for _, c := range children {
		node.Children = append(node.Children, toPtermNode(c))
	}
	return node
}

func (t Tree) headerText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ⸢%d-%d⸥", t.id, t.Begin(), t.End())
	names := t.AttrNames()
	sort.Strings(names)
	for _, name := range names {
		v, _ := t.GetAttrOK(name)
		fmt.Fprintf(&b, " %s=%q", name, v)
	}
	return b.String()
}

// plainDump is the stdlib-only fallback used by Inspect if pterm rendering
// fails; it is also handy in tests that don't want ANSI styling mixed into
// their expected output.
func plainDump(t Tree, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(t.headerText())
	for _, c := range t.Children() {
		b.WriteString("\n")
		b.WriteString(plainDump(c, depth+1))
	}
	return b.String()
}

// PlainString returns the same content as Inspect without any ANSI
// styling, for use in tests and logs.
func (t Tree) PlainString() string {
	return plainDump(t, 0)
}
