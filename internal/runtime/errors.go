package runtime

import "errors"

var (
	ErrRuntime             = errors.New("runtime error")
	ErrContainerNotRunning = errors.New("container is not running")
)
