package capture

import "errors"

var (
	ErrMissingResultBundle = errors.New("result bundle not found")
	ErrArchive             = errors.New("archive failed")
	ErrUpload              = errors.New("upload failed")
)
