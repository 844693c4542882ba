package scoring

import "errors"

// Sentinel kinds for scoring errors. Missing city data is never an error;
// only malformed preferences are.
var (
	ErrNegativeWeight = errors.New("negative preference weight")
)
