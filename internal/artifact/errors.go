package artifact

import "errors"

var (
	ErrStore       = errors.New("artifact store error")
	ErrInvalidName = errors.New("invalid artifact name")
	ErrInvalidURL  = errors.New("invalid artifact store URL")
)
