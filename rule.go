package pargo

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pargo.rule'.
func tracer() tracing.Trace {
	return tracing.Select("pargo.rule")
}

// T returns the global syntax tracer, for CLI and REPL collaborators that
// want a single diagnostic stream instead of per-package trace keys. It
// is nil until something assigns gtrace.SyntaxTracer; no package in this
// module assigns it.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// stuckRepeatsPanic reports whether a Times body that matched without
// advancing the cursor should panic rather than silently stop iterating.
// It is aimed at helping debug a grammar: the default is false, so a
// production application sees the repeat simply end instead of crashing.
func stuckRepeatsPanic() bool {
	return gconf.GetBool("pargo.panic-on-stuck")
}

// Rule is an opaque, immutable value describing how to match input. Rules
// are built with the package-level constructors (Char, Range, Str,
// NewAhead, Capture, Keep, Tourney) and the fluent methods below, and are
// safe to share across goroutines: Apply builds a fresh Context for every
// invocation, so a Rule value carries no mutable evaluation state of its
// own (NewAhead is the one rule that holds mutable state, and only up
// until its target is Put once).
type Rule struct {
	node ruleNode
}

// ruleNode is the closed set of rule variants. It is unexported: the only
// way to construct one from outside this package is through Rule's public
// constructors and combinators.
type ruleNode interface {
	evaluate(ctx Context) (Context, error)
	kind() Kind
}

// Kind reports which of the closed set of rule variants r wraps.
func (r Rule) Kind() Kind {
	return r.node.kind()
}

func (r Rule) evaluate(ctx Context) (Context, error) {
	return r.node.evaluate(ctx)
}

// --- Empty -------------------------------------------------------------

type emptyNode struct{}

func (emptyNode) evaluate(ctx Context) (Context, error) { return ctx, nil }
func (emptyNode) kind() Kind                            { return KindEmpty }

// Empty always succeeds without consuming any input.
var Empty = Rule{node: emptyNode{}}

// --- One / Range ---------------------------------------------------------

type oneNode struct{ c rune }

func (n oneNode) evaluate(ctx Context) (Context, error) {
	if ctx.Char() == n.c {
		return ctx.advance(), nil
	}
	return Context{}, newError(ctx)
}
func (oneNode) kind() Kind { return KindOne }

// Char matches a single, specific character.
func Char(c rune) Rule {
	return Rule{node: oneNode{c: c}}
}

type rangeNode struct {
	lo, hi         rune
	exclusiveUpper bool
}

func (n rangeNode) evaluate(ctx Context) (Context, error) {
	c := ctx.Char()
	if c < n.lo {
		return Context{}, newError(ctx)
	}
	if n.exclusiveUpper {
		if c >= n.hi {
			return Context{}, newError(ctx)
		}
	} else if c > n.hi {
		return Context{}, newError(ctx)
	}
	return ctx.advance(), nil
}
func (rangeNode) kind() Kind { return KindRange }

// Range matches a single character in [lo, hi] (or [lo, hi) when
// exclusiveUpper is passed as true). A character literal is the
// degenerate case Range(c, c).
func Range(lo, hi rune, exclusiveUpper ...bool) Rule {
	excl := false
	if len(exclusiveUpper) > 0 {
		excl = exclusiveUpper[0]
	}
	return Rule{node: rangeNode{lo: lo, hi: hi, exclusiveUpper: excl}}
}

// Str matches a literal string, character by character, equivalent to a
// Chain of single-character rules.
func Str(s string) Rule {
	runes := []rune(s)
	if len(runes) == 0 {
		return Empty
	}
	rules := make([]Rule, len(runes))
	for i, r := range runes {
		rules[i] = Char(r)
	}
	return Rule{node: &chainNode{rules: rules}}
}

// --- Chain -----------------------------------------------------------------

type chainNode struct{ rules []Rule }

func (n *chainNode) evaluate(ctx Context) (Context, error) {
	cur := ctx
	for _, r := range n.rules {
		next, err := r.evaluate(cur)
		if err != nil {
			return Context{}, err
		}
		cur = next
	}
	return cur, nil
}
func (*chainNode) kind() Kind { return KindChain }

// Then chains r and other: other is evaluated on r's success, and the
// first failure of either short-circuits with no backtracking. Chaining
// onto an existing chain flattens it rather than nesting, mirroring how
// the source DSL's `&` operator appends to an existing chain.
func (r Rule) Then(other Rule) Rule {
	rules := flattenChain(r)
	rules = append(rules, flattenChain(other)...)
	return Rule{node: &chainNode{rules: rules}}
}

func flattenChain(r Rule) []Rule {
	if c, ok := r.node.(*chainNode); ok {
		out := make([]Rule, len(c.rules))
		copy(out, c.rules)
		return out
	}
	return []Rule{r}
}

// --- Branch (Seq and Tourney) ------------------------------------------

type branchNode struct {
	rules   []Rule
	tourney bool
}

func (n *branchNode) kind() Kind {
	if n.tourney {
		return KindBranchTourney
	}
	return KindBranchSeq
}

func (n *branchNode) evaluate(ctx Context) (Context, error) {
	if n.tourney {
		return n.evaluateTourney(ctx)
	}
	return n.evaluateSeq(ctx)
}

// evaluateSeq tries each branch in declaration order and returns the first
// success. If every branch fails, it returns the error with maximum
// progress (ties go to the first one encountered).
func (n *branchNode) evaluateSeq(ctx Context) (Context, error) {
	var worst *SyntaxError
	for _, r := range n.rules {
		res, err := r.evaluate(ctx)
		if err == nil {
			return res, nil
		}
		se := err.(*SyntaxError)
		if worst == nil || se.Progress() > worst.Progress() {
			worst = se
		}
	}
	if worst == nil {
		// Degenerate: an empty branch set refuses everything at the
		// starting position.
		return Context{}, newError(ctx)
	}
	return Context{}, worst
}

// evaluateTourney evaluates every branch against the same starting
// context and keeps the result that reached the furthest progress,
// preferring a success over an error at equal progress, and the
// first-encountered result among further ties.
func (n *branchNode) evaluateTourney(ctx Context) (Context, error) {
	var bestCtx Context
	var bestErr error
	bestProgress := -1
	haveBest := false

	for _, r := range n.rules {
		res, err := r.evaluate(ctx)
		var progress int
		if err != nil {
			progress = err.(*SyntaxError).Progress()
		} else {
			progress = res.Progress()
		}
		switch {
		case !haveBest:
			bestCtx, bestErr, bestProgress, haveBest = res, err, progress, true
		case progress > bestProgress:
			bestCtx, bestErr, bestProgress = res, err, progress
		case progress == bestProgress && bestErr != nil && err == nil:
			bestCtx, bestErr = res, err
		}
	}
	if !haveBest {
		return Context{}, newError(ctx)
	}
	return bestCtx, bestErr
}

// Or tries r, then other, in that order, returning the first success;
// Or'ing onto an existing seq-branch flattens it. Use Tourney instead when
// you want the longest match among ambiguous alternatives rather than the
// first.
func (r Rule) Or(other Rule) Rule {
	rules := flattenSeqBranch(r)
	rules = append(rules, flattenSeqBranch(other)...)
	return Rule{node: &branchNode{rules: rules}}
}

func flattenSeqBranch(r Rule) []Rule {
	if b, ok := r.node.(*branchNode); ok && !b.tourney {
		out := make([]Rule, len(b.rules))
		copy(out, b.rules)
		return out
	}
	return []Rule{r}
}

// Tourney evaluates every rule against the same starting context and picks
// the one that reaches the furthest progress, breaking ties toward
// success and then toward declaration order.
func Tourney(rules ...Rule) Rule {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return Rule{node: &branchNode{rules: cp, tourney: true}}
}

// --- Repeat ----------------------------------------------------------------

type repeatNode struct {
	body           Rule
	min            int
	max            int // negative means unbounded
	exclusiveUpper bool
}

func (n *repeatNode) kind() Kind { return KindRepeat }

// effectiveCap returns the maximum number of successful iterations this
// repeat will attempt, or -1 for unbounded.
func (n *repeatNode) effectiveCap() int {
	if n.max < 0 {
		return -1
	}
	if n.exclusiveUpper {
		return n.max - 1
	}
	return n.max
}

func (n *repeatNode) evaluate(ctx Context) (Context, error) {
	cur := ctx
	cap := n.effectiveCap()
	i := 0
	for cap < 0 || i < cap {
		next, err := n.body.evaluate(cur)
		if err != nil {
			if i >= n.min {
				return cur, nil
			}
			return Context{}, err
		}
		if next.Progress() == cur.Progress() {
			// The body matched without consuming input: looping again
			// would repeat forever on an ill-formed grammar. Count this
			// iteration, then stop, per the repeat-progress guard.
			cur = next
			i++
			if stuckRepeatsPanic() {
				panic("pargo: Times body matched without advancing the cursor")
			}
			tracer().Debugf("repeat stopped after a zero-advance iteration at position %d", cur.Progress())
			break
		}
		cur = next
		i++
	}
	if i < n.min {
		return Context{}, newError(cur)
	}
	return cur, nil
}

// Times repeats r between min and max times (max inclusive by default, or
// exclusive when exclusiveUpper is passed as true); a negative max means
// unbounded. A repeat with min == 0 never fails.
func (r Rule) Times(min, max int, exclusiveUpper ...bool) Rule {
	excl := false
	if len(exclusiveUpper) > 0 {
		excl = exclusiveUpper[0]
	}
	return Rule{node: &repeatNode{body: r, min: min, max: max, exclusiveUpper: excl}}
}

// --- Refuse (negative lookahead) ---------------------------------------

type refuseNode struct {
	body Rule
	cond Rule
}

func (*refuseNode) kind() Kind { return KindRefuse }

func (n *refuseNode) evaluate(ctx Context) (Context, error) {
	condResult, err := n.cond.evaluate(ctx)
	if err == nil {
		// cond succeeded: this is exactly the input the caller wanted to
		// refuse. cond's own consumption is discarded; only its reached
		// progress is reported.
		return Context{}, newError(condResult)
	}
	return n.body.evaluate(ctx)
}

// Refusing evaluates cond against the same starting position; if cond
// succeeds, r fails at the progress cond reached (negative lookahead).
// Otherwise r is evaluated normally. cond never consumes input in the
// enclosing context either way.
func (r Rule) Refusing(cond Rule) Rule {
	return Rule{node: &refuseNode{body: r, cond: cond}}
}

// --- Capture ---------------------------------------------------------------

type captureNode struct {
	body Rule
	id   string
}

func (*captureNode) kind() Kind { return KindCapture }

func (n *captureNode) evaluate(ctx Context) (Context, error) {
	sub, err := n.body.evaluate(ctx.rebase(n.id))
	if err != nil {
		return Context{}, err
	}
	return ctx.adopt(sub), nil
}

// Capture labels the subtree produced by r with id, adopting it as the
// next child of the enclosing context's tree on success.
func Capture(r Rule, id string) Rule {
	if id == "" {
		panic("pargo: Capture id must not be empty")
	}
	return Rule{node: &captureNode{body: r, id: id}}
}

// --- Keep --------------------------------------------------------------

type keepNode struct {
	body Rule
	id   string
}

func (*keepNode) kind() Kind { return KindKeep }

func (n *keepNode) evaluate(ctx Context) (Context, error) {
	sub, err := n.body.evaluate(ctx.rebase(n.id))
	if err != nil {
		return Context{}, err
	}
	text := ctx.cur.Slice(ctx.Progress(), sub.Progress())
	return Context{cur: sub.cur, root: ctx.root.SetAttr(n.id, text)}, nil
}

// Keep labels the substring matched by r as an attribute named id on the
// enclosing context's tree. The subtree r produces is discarded; only the
// matched text and the advanced cursor survive.
func Keep(r Rule, id string) Rule {
	if id == "" {
		panic("pargo: Keep id must not be empty")
	}
	return Rule{node: &keepNode{body: r, id: id}}
}

// --- Ahead (forward declaration) ----------------------------------------

type aheadNode struct {
	target *Rule
}

func (*aheadNode) kind() Kind { return KindAhead }

func (n *aheadNode) evaluate(ctx Context) (Context, error) {
	if n.target == nil {
		panic("pargo: evaluating an Ahead rule whose target was never set; call Put first")
	}
	return n.target.evaluate(ctx)
}

// Ahead is a late-bound rule that lets a grammar refer to itself before
// the referent is fully constructed, enabling recursive and mutually
// recursive grammars without ordering constraints. Use NewAhead to create
// one and Put to fill it in, exactly once, before the grammar is applied
// to any input.
type Ahead struct {
	node *aheadNode
}

// NewAhead creates an unbound forward reference. Evaluating it before Put
// is called is a programmer error and panics.
func NewAhead() *Ahead {
	return &Ahead{node: &aheadNode{}}
}

// Put sets the rule this Ahead stands for. It may only be called once.
func (a *Ahead) Put(target Rule) {
	if a.node.target != nil {
		panic("pargo: Ahead.Put called more than once")
	}
	a.node.target = &target
}

// Rule returns a wrapped as a plain Rule, suitable for passing to Then,
// Or, Times and the rest of the combinator surface.
func (a *Ahead) Rule() Rule {
	return Rule{node: a.node}
}
