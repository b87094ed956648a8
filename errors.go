package dlxcc

import (
	"errors"
	"fmt"
)

// Construction errors, returned from Build and Registry.Register.
var (
	ErrDuplicateItem   = errors.New("dlxcc: duplicate item")
	ErrUnknownItem     = errors.New("dlxcc: unknown item")
	ErrKindMismatch    = errors.New("dlxcc: item used with the wrong kind of constraint")
	ErrDuplicateSubset = errors.New("dlxcc: duplicate subset name")
	ErrEmptySubset     = errors.New("dlxcc: subset has no constraints")
)

// invariantViolation panics on an impossible internal state: an unbalanced
// link, a size underflow, or a mutation primitive encountering a node of
// the wrong kind. These can never be returned as errors — by spec.md §7
// they indicate a bug in the arena bookkeeping, not bad input.
func invariantViolation(msg string, args ...any) {
	panic(&logicBug{msg: fmt.Sprintf(msg, args...)})
}

type logicBug struct{ msg string }

func (e *logicBug) Error() string { return "dlxcc: invariant violation: " + e.msg }
