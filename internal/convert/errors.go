package convert

import "fmt"

// IsolationError reports that the initialization span could not be located
type IsolationError struct {
	Marker string
	Reason string
}

func (e *IsolationError) Error() string {
	return fmt.Sprintf("isolating init block: %s (marker %q)", e.Reason, e.Marker)
}

// UnmatchedShapeError reports a kept block whose declaration matches no rule.
// It aborts the whole conversion.
type UnmatchedShapeError struct {
	Declaration string
	Block       string
}

func (e *UnmatchedShapeError) Error() string {
	return fmt.Sprintf("couldn't transform block %q:\n%s", e.Declaration, e.Block)
}
