package kakuro

import "errors"

// Construction errors, returned from Parse and Compile.
var (
	ErrMalformedGrid = errors.New("kakuro: malformed grid")
	ErrInvalidClue   = errors.New("kakuro: invalid clue")
)
