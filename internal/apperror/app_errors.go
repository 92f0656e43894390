package apperror

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cell index out of range")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrInvalidRoster   = errors.New("invalid player roster")
)
