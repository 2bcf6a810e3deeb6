package pargo

import (
	"github.com/halfbit/pargo/tree"
)

// Apply runs r against input and returns the context it produced. On
// failure the returned Context is the zero value and err is a
// *SyntaxError: for a rule failure it is the error the rule returned, and
// for an Exact check that found unconsumed input it is positioned right
// after the rule's match.
func Apply(input string, r Rule, opts ...Option) (Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ctx := newContext(input, o.offset, o.rootID)
	res, err := r.evaluate(ctx)
	if err != nil {
		return Context{}, err
	}
	res = res.terminate()
	if o.exact && !res.cur.AtEnd() {
		tracer().Debugf("Exact: %d characters left unconsumed at position %d", res.cur.Len()-res.cur.Position(), res.cur.Position())
		return Context{}, newError(res)
	}
	return res, nil
}

// ApplyTree runs r against input and reports whether it matched. On
// success it returns the resulting tree; on failure it returns the zero
// Tree and false. Callers that need the failure detail should call Apply
// directly instead.
func ApplyTree(input string, r Rule, opts ...Option) (tree.Tree, bool) {
	ctx, err := Apply(input, r, opts...)
	if err != nil {
		return tree.Tree{}, false
	}
	return ctx.Tree(), true
}

// ApplyTreeOrThrow runs r against input and returns the resulting tree,
// panicking with the *SyntaxError on failure. It is named "OrThrow" in
// the Go sense of "panic" rather than Go's own error-return idiom, for
// call sites — REPLs, one-shot CLI tools — that have no useful recovery
// path other than reporting and exiting.
func ApplyTreeOrThrow(input string, r Rule, opts ...Option) tree.Tree {
	t, ok := ApplyTree(input, r, opts...)
	if !ok {
		ctx, err := Apply(input, r, opts...)
		_ = ctx
		panic(err)
	}
	return t
}
