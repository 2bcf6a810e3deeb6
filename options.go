package pargo

// Option configures a call to Apply. Without any options, Apply starts
// matching at offset 0, labels the root node "root", and does not require
// the rule to consume the entire input.
type Option func(*applyOptions)

type applyOptions struct {
	offset int
	rootID string
	exact  bool
}

func defaultOptions() applyOptions {
	return applyOptions{offset: 0, rootID: "root"}
}

// WithOffset starts matching at the given character offset instead of the
// beginning of the input.
func WithOffset(offset int) Option {
	return func(o *applyOptions) {
		o.offset = offset
	}
}

// WithRootID labels the top-level tree produced by Apply with id instead
// of the default "root".
func WithRootID(id string) Option {
	return func(o *applyOptions) {
		o.rootID = id
	}
}

// Exact requires the rule to consume the input up to and including its
// last character; any unconsumed trailing input is reported as a syntax
// error positioned right after the rule's match.
func Exact() Option {
	return func(o *applyOptions) {
		o.exact = true
	}
}
