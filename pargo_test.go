package pargo_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfbit/pargo"
)

func TestRepeatLivelockGuardStopsSilentlyByDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pargo.rule")
	defer teardown()

	// Empty can match without advancing; an unbounded repeat over it
	// must stop rather than loop forever, and does so silently by
	// default (the panic-on-stuck flag is left unset here).
	ctx, err := pargo.Apply("", pargo.Empty.Times(0, -1))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Tree().Span())
}

func TestEmptyInputWithEmptyRuleYieldsZeroSpanRoot(t *testing.T) {
	ctx, err := pargo.Apply("", pargo.Empty)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Tree().Begin())
	assert.Equal(t, 0, ctx.Tree().Span())
}

func TestEmptyInputWithWideRangeFails(t *testing.T) {
	// A wide Range such as this one spans utf8.RuneError (U+FFFD), so this
	// guards against the cursor's end-of-input sentinel being mistaken for
	// an ordinary matched character.
	_, err := pargo.Apply("", pargo.Range(0x20, 0x10FFFF))
	require.Error(t, err)
	se := err.(*pargo.SyntaxError)
	assert.Equal(t, 0, se.Progress())
}

func TestUnboundedRepeatOverWideRangeStopsAtEndOfInput(t *testing.T) {
	// Times(0, -1) over a wide Range must stop because the body genuinely
	// fails at end-of-input, not because of the zero-advance guard.
	ctx, err := pargo.Apply("ab", pargo.Range(0x20, 0x10FFFF).Times(0, -1))
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.Tree().Span())
}

func TestEmptyInputWithCharFails(t *testing.T) {
	_, err := pargo.Apply("", pargo.Char('x'))
	require.Error(t, err)
	se := err.(*pargo.SyntaxError)
	assert.Equal(t, 0, se.Progress())
}

func TestUnconsumedTailOnlyFailsWhenExact(t *testing.T) {
	_, err := pargo.Apply("ab", pargo.Char('a'))
	assert.NoError(t, err)

	_, err = pargo.Apply("ab", pargo.Char('a'), pargo.Exact())
	require.Error(t, err)
	se := err.(*pargo.SyntaxError)
	assert.Equal(t, 1, se.Progress())
}

func TestRepeatWithMinZeroNeverFails(t *testing.T) {
	ctx, err := pargo.Apply("", pargo.Char('x').Times(0, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Tree().Span())
}

func TestAheadWithoutPutPanics(t *testing.T) {
	a := pargo.NewAhead()
	assert.Panics(t, func() {
		pargo.Apply("x", a.Rule())
	})
}

func TestAheadPutTwicePanics(t *testing.T) {
	a := pargo.NewAhead()
	a.Put(pargo.Char('x'))
	assert.Panics(t, func() {
		a.Put(pargo.Char('y'))
	})
}

// --- Scenario 1: boolean choice -----------------------------------------

func lit(s string) pargo.Rule {
	return pargo.Capture(pargo.Str(s), s)
}

func TestBooleanChoice(t *testing.T) {
	boolean := lit("true").Or(lit("false"))

	ctx, err := pargo.Apply("true", boolean, pargo.Exact())
	require.NoError(t, err)
	child, ok := ctx.Tree().Child(0)
	require.True(t, ok)
	assert.Equal(t, "true", child.ID())
	assert.Equal(t, 0, child.Begin())
	assert.Equal(t, 4, child.End())

	ctx, err = pargo.Apply("false", boolean, pargo.Exact())
	require.NoError(t, err)
	child, ok = ctx.Tree().Child(0)
	require.True(t, ok)
	assert.Equal(t, "false", child.ID())
	assert.Equal(t, 0, child.Begin())
	assert.Equal(t, 5, child.End())

	_, err = pargo.Apply("maybe", boolean, pargo.Exact())
	require.Error(t, err)
	se := err.(*pargo.SyntaxError)
	assert.Equal(t, 0, se.Progress())
}

// --- Scenario 2: tourney versus seq-branch prefix ambiguity --------------

func TestTourneyVersusSeqBranchPrefix(t *testing.T) {
	x := pargo.Capture(pargo.Str("xxx"), "x")
	y := pargo.Capture(pargo.Str("xxxy"), "y")

	tourney := pargo.Tourney(x, y)
	ctx, err := pargo.Apply("xxx", tourney, pargo.Exact())
	require.NoError(t, err)
	child, _ := ctx.Tree().Child(0)
	assert.Equal(t, "x", child.ID())

	ctx, err = pargo.Apply("xxxy", tourney, pargo.Exact())
	require.NoError(t, err)
	child, _ = ctx.Tree().Child(0)
	assert.Equal(t, "y", child.ID())

	x2 := pargo.Capture(pargo.Str("xxx"), "x")
	y2 := pargo.Capture(pargo.Str("xxxy"), "y")
	seq := x2.Or(y2)
	ctx, err = pargo.Apply("xxx", seq, pargo.Exact())
	require.NoError(t, err)
	child, _ = ctx.Tree().Child(0)
	assert.Equal(t, "x", child.ID())

	_, err = pargo.Apply("xxxy", seq, pargo.Exact())
	require.Error(t, err, "seq-branch commits to x's match, leaving 'y' unconsumed")
}

// --- Scenario 3: tourney among four nested-prefix choices -----------------

func TestTourneyFourChoices(t *testing.T) {
	a := pargo.Capture(pargo.Str("x"), "a")
	b := pargo.Capture(pargo.Str("xx"), "b")
	c := pargo.Capture(pargo.Str("xxx"), "c")
	d := pargo.Capture(pargo.Str("xxxx"), "d")
	r := pargo.Tourney(a, b, c, d)

	cases := []struct {
		input string
		id    string
	}{
		{"x", "a"},
		{"xx", "b"},
		{"xxx", "c"},
		{"xxxx", "d"},
	}
	for _, tc := range cases {
		ctx, err := pargo.Apply(tc.input, r, pargo.Exact())
		require.NoError(t, err, tc.input)
		child, ok := ctx.Tree().Child(0)
		require.True(t, ok)
		assert.Equal(t, tc.id, child.ID(), tc.input)
	}
}

// --- Scenario 4: astral code point indexing -------------------------------

func TestAstralCodePointIndexing(t *testing.T) {
	x := pargo.Capture(pargo.Range(0x0020, 0x10FFFF), "x")
	dot := pargo.Char('.')
	xs := x.Then(dot.Then(x).Times(0, -1))

	input := "f.o.👋.x.😼.e.♞.s.h.e.r.e.🦊.?"
	runes := []rune(input)

	ctx, err := pargo.Apply(input, xs, pargo.Exact())
	require.NoError(t, err)
	assert.Equal(t, len(runes), ctx.Tree().Span())

	children := ctx.Tree().Children()
	require.Equal(t, (len(runes)+1)/2, len(children))
	for i, child := range children {
		want := string(runes[2*i])
		got := string(runes[child.Begin():child.End()])
		assert.Equal(t, want, got, "child %d", i)
	}
}

// --- Scenario 5: JSON number keep ----------------------------------------

func digitRange() pargo.Rule {
	return pargo.Range('0', '9')
}

func jsonNumberRule() pargo.Rule {
	digits := digitRange().Times(1, -1)
	integer := pargo.Char('-').Times(0, 1).Then(digits)
	fraction := pargo.Char('.').Then(digits)
	exponent := pargo.Range('e', 'e').Or(pargo.Range('E', 'E')).
		Then(pargo.Range('+', '+').Or(pargo.Range('-', '-')).Times(0, 1)).
		Then(digits)
	number := integer.Then(fraction.Times(0, 1)).Then(exponent.Times(0, 1))
	return pargo.Keep(number, "number:value")
}

func TestJSONNumberKeep(t *testing.T) {
	wrapped := pargo.Capture(jsonNumberRule(), "number")
	ctx, err := pargo.Apply("-12.5e+3", wrapped, pargo.Exact())
	require.NoError(t, err)
	child, ok := ctx.Tree().Child(0)
	require.True(t, ok)
	assert.Equal(t, 0, child.NumChildren())
	assert.Equal(t, "-12.5e+3", child.GetAttr("number:value"))
}

// --- Refuse / negative lookahead ------------------------------------------

func TestRefusingSucceedsOnlyWhenConditionFails(t *testing.T) {
	notFoo := pargo.Range(0x20, 0x10FFFF).Refusing(pargo.Str("foo"))
	_, err := pargo.Apply("foo", notFoo)
	assert.Error(t, err)

	ctx, err := pargo.Apply("bar", notFoo)
	assert.NoError(t, err)
	assert.Equal(t, 1, ctx.Progress())
}

func TestKeepPreservesProgressOfBody(t *testing.T) {
	r := pargo.Keep(pargo.Str("abc"), "text")
	withoutKeep, _ := pargo.Apply("abc", pargo.Str("abc"))
	withKeep, err := pargo.Apply("abc", r)
	require.NoError(t, err)
	assert.Equal(t, withoutKeep.Progress(), withKeep.Progress())
	assert.Equal(t, "abc", withKeep.Tree().GetAttr("text"))
}
