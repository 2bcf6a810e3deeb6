package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/combinator"
)

func TestMaybeCapsAtOne(t *testing.T) {
	r := combinator.Maybe(pargo.Char('a')).Then(pargo.Char('b'))
	_, err := pargo.Apply("aab", r, pargo.Exact())
	assert.Error(t, err, "Maybe must not consume a second 'a'")

	ctx, err := pargo.Apply("ab", r, pargo.Exact())
	assert.NoError(t, err)
	assert.Equal(t, 2, ctx.Tree().Span())
}

func TestSomeAcceptsZero(t *testing.T) {
	r := combinator.Some(pargo.Char('a'))
	ctx, err := pargo.Apply("", r, pargo.Exact())
	assert.NoError(t, err)
	assert.Equal(t, 0, ctx.Tree().Span())
}

func TestManyRequiresOne(t *testing.T) {
	_, err := pargo.Apply("", combinator.Many(pargo.Char('a')), pargo.Exact())
	assert.Error(t, err)

	ctx, err := pargo.Apply("aaa", combinator.Many(pargo.Char('a')), pargo.Exact())
	assert.NoError(t, err)
	assert.Equal(t, 3, ctx.Tree().Span())
}

func TestSepMatchesDelimitedSequence(t *testing.T) {
	digit := pargo.Range('0', '9')
	r := combinator.Sep(digit, pargo.Char(','))
	ctx, err := pargo.Apply("1,2,3", r, pargo.Exact())
	assert.NoError(t, err)
	assert.Equal(t, 5, ctx.Tree().Span())
}

func TestLitCapturesUnderItsOwnText(t *testing.T) {
	r := combinator.Lit("true").Or(combinator.Lit("false"))

	ctx, err := pargo.Apply("true", r, pargo.Exact())
	assert.NoError(t, err)
	child, ok := ctx.Tree().Child(0)
	assert.True(t, ok)
	assert.Equal(t, "true", child.ID())

	ctx, err = pargo.Apply("false", r, pargo.Exact())
	assert.NoError(t, err)
	child, ok = ctx.Tree().Child(0)
	assert.True(t, ok)
	assert.Equal(t, "false", child.ID())

	_, err = pargo.Apply("maybe", r, pargo.Exact())
	assert.Error(t, err)
}
