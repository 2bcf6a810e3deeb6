/*
Package cursor implements a read-only Unicode iterator over an in-memory
string, suitable for backtracking parsers.

Positions and spans are counted in Unicode code points, never bytes: the
input is decoded once into a []rune slice so that indexing is O(1), and
every other package in this module inherits that unit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cursor

// Sentinel is the character reported by Char() once the cursor has run off
// the end of the input. It is -1, following the text/scanner and bufio
// convention for "no character here": unlike utf8.RuneError (U+FFFD), which
// is a valid code point and falls inside ordinary caller-chosen ranges such
// as Range(0x20, 0x10FFFF), -1 can never lie inside a rune range, so no One
// or Range rule will ever match it.
const Sentinel = rune(-1)

// Cursor is a value-typed, immutable position within a decoded input. Every
// mutating-looking operation (Advance) returns a new Cursor; the receiver is
// left untouched, which is what lets a backtracking rule discard an
// advanced cursor simply by keeping the pre-call value around.
type Cursor struct {
	runes []rune
	pos   int
}

// New decodes input into a Cursor positioned at character index offset.
func New(input string, offset int) Cursor {
	return Cursor{runes: []rune(input), pos: offset}
}

// Char returns the character at the cursor's current position, or Sentinel
// if the cursor is at or past the end of input.
func (c Cursor) Char() rune {
	if c.pos < 0 || c.pos >= len(c.runes) {
		return Sentinel
	}
	return c.runes[c.pos]
}

// Position returns the character index of the cursor.
func (c Cursor) Position() int {
	return c.pos
}

// AtEnd returns true once the cursor has reached the end of input.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.runes)
}

// Len returns the character length of the underlying input.
func (c Cursor) Len() int {
	return len(c.runes)
}

// Advance returns a new Cursor one character further along. Advancing past
// the end of input is harmless and simply keeps reporting Sentinel and
// AtEnd() == true; this lets rule evaluation avoid an explicit bounds check
// before every Advance.
func (c Cursor) Advance() Cursor {
	if c.pos >= len(c.runes) {
		return c
	}
	return Cursor{runes: c.runes, pos: c.pos + 1}
}

// Slice returns the substring spanning character indices [from, to). It is
// used by the keep rule to read back the matched substring of input.
func (c Cursor) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(c.runes) {
		to = len(c.runes)
	}
	if from >= to {
		return ""
	}
	return string(c.runes[from:to])
}

// RuneAt returns the character at absolute position pos, or Sentinel if out
// of range. Used by error-reporting code that needs the offending character
// without carrying a whole Cursor around.
func (c Cursor) RuneAt(pos int) rune {
	if pos < 0 || pos >= len(c.runes) {
		return Sentinel
	}
	return c.runes[pos]
}
