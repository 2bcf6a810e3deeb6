/*
Package renderer turns a *pargo.SyntaxError into a human-readable source
readout: the offending line, a caret under the offending column, and the
error message, colored the way the teacher's REPL colors its diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/halfbit/pargo"
)

// Render writes a source-anchored rendering of serr to w: the input line
// the error occurred on, followed by a caret marking its column, and the
// message serr.Error() would have produced. It never returns an error of
// its own; a write failure against w is the caller's problem to detect
// via w.
func Render(w io.Writer, input string, serr *pargo.SyntaxError) {
	line, col := serr.LineAndColumn()
	src := sourceLine(input, line)

	header := pterm.Error.Sprintf("%s", serr.Error())
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "%5d | %s\n", line, src)
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", col-1), pterm.FgRed.Sprint("^"))
}

// RenderString is Render, returning the rendering as a string instead of
// writing it.
func RenderString(input string, serr *pargo.SyntaxError) string {
	var b strings.Builder
	Render(&b, input, serr)
	return b.String()
}

// sourceLine returns the 1-indexed line of input, or "" if line is out of
// range (which only happens for a malformed SyntaxError).
func sourceLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
