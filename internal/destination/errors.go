package destination

import "errors"

var (
	ErrMalformedDestination = errors.New("malformed destination")
)
