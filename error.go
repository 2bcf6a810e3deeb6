package pargo

import (
	"fmt"

	"github.com/halfbit/pargo/cursor"
)

// SyntaxError is the match-failure outcome described by the error-handling
// design: it always carries the context at the furthest position actually
// inspected, never a partial one. It flows through Or, Tourney and
// Times(0, …) as ordinary control flow; only ApplyTreeOrThrow ever panics
// with one.
type SyntaxError struct {
	ctx Context
}

func newError(ctx Context) *SyntaxError {
	return &SyntaxError{ctx: ctx}
}

// Progress returns the character index this error reached.
func (e *SyntaxError) Progress() int {
	return e.ctx.Progress()
}

// Char returns the character found at Progress(), or cursor.Sentinel if
// that position is at or past the end of input.
func (e *SyntaxError) Char() rune {
	return e.ctx.Char()
}

func (e *SyntaxError) Error() string {
	if e.Char() == cursor.Sentinel {
		return fmt.Sprintf("syntax error at character %d: unexpected end of input", e.Progress())
	}
	line, col := e.LineAndColumn()
	return fmt.Sprintf("syntax error at %d:%d (character %d): unexpected %q", line, col, e.Progress(), e.Char())
}

// LineAndColumn computes a 1-based line and column for Progress() by
// scanning the input from its start and counting newlines, as specified
// for the error surface.
func (e *SyntaxError) LineAndColumn() (line, col int) {
	line, col = 1, 1
	cur := e.ctx.cur
	for i := 0; i < e.Progress(); i++ {
		if cur.RuneAt(i) == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
