package exprgrammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfbit/pargo"
	"github.com/halfbit/pargo/internal/exprgrammar"
)

func eval(t *testing.T, input string) float64 {
	t.Helper()
	ctx, err := pargo.Apply(input, exprgrammar.Grammar(), pargo.Exact())
	require.NoError(t, err)
	return exprgrammar.Eval(ctx.Tree())
}

func TestOperatorPrecedence(t *testing.T) {
	assert.Equal(t, 7.0, eval(t, "1+2*3"))
	assert.Equal(t, 9.0, eval(t, "(1+2)*3"))
	assert.Equal(t, 2.0, eval(t, "10/5"))
	assert.Equal(t, 4.0, eval(t, "10-2-4"))
}

func TestRejectsMalformedExpression(t *testing.T) {
	_, err := pargo.Apply("1+", exprgrammar.Grammar(), pargo.Exact())
	assert.Error(t, err)
}
