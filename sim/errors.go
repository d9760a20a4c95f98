package sim

import "errors"

var (
	// ErrInvalidSchedule reports an event scheduled before the current time,
	// or a process resumed from a state it cannot be resumed from.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrResourceMisuse reports a release without a matching grant.
	ErrResourceMisuse = errors.New("resource misuse")
)
