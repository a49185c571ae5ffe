package cli

import "errors"

var (
	ErrNoHotel = errors.New("no hotel provided")
	ErrPanic   = errors.New("panic in action")
)
