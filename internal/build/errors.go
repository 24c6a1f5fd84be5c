package build

import "errors"

var (
	ErrBuild   = errors.New("build failed")
	ErrCapture = errors.New("result bundle capture failed")
)
