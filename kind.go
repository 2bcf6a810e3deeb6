package pargo

// Kind identifies which of the closed set of rule variants a Rule wraps.
// It exists purely for introspection through Rule.Kind — evaluation
// itself never switches on Kind, it dispatches through the ruleNode
// interface.
//
//go:generate stringer -type=Kind
type Kind int

const (
	KindEmpty Kind = iota
	KindOne
	KindRange
	KindChain
	KindBranchSeq
	KindBranchTourney
	KindRepeat
	KindRefuse
	KindCapture
	KindKeep
	KindAhead
)
