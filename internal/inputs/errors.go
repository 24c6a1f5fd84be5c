package inputs

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConfigFile   = errors.New("invalid config file")
)
