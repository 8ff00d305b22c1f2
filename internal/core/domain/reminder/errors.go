package reminder

import "errors"

var (
	ErrIntervalTooShort  = errors.New("interval is too short")
	ErrIntervalTooLong   = errors.New("interval is too long")
	ErrMalformedSettings = errors.New("malformed settings")
)
