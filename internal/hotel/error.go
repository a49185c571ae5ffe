package hotel

import "errors"

var (
	// ErrInvalidInput rejects malformed input: an empty room number, a
	// non-positive price, an empty guest name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports a room or booking lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable reports a booking attempt on an occupied room.
	ErrUnavailable = errors.New("room is not available")
	// ErrInvalidRange reports a check-out date that is not after check-in.
	ErrInvalidRange = errors.New("invalid date range")

	ErrNextID = errors.New("get next id from generator")
)
