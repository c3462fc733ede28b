// Package instance — sentinel error set.
//
// All algorithms in this package return these sentinels (directly, or
// wrapped with fmt.Errorf and %w for extra context); callers match via
// errors.Is. No panics on user-triggered error conditions.
package instance

import "errors"

var (
	// ErrEmptyDisks is returned when constructing a tour instance with no disks.
	ErrEmptyDisks = errors.New("instance: tour requires at least one disk")

	// ErrInvalidRadius is returned when a disk has a negative radius.
	ErrInvalidRadius = errors.New("instance: disk radius must be non-negative")

	// ErrInvalidEps is returned when the feasibility tolerance is negative.
	ErrInvalidEps = errors.New("instance: feasibility tolerance must be non-negative")

	// ErrIndexOutOfRange is returned by At for an out-of-range disk index.
	ErrIndexOutOfRange = errors.New("instance: disk index out of range")

	// ErrNotPathInstance is returned by Start/End on a tour instance.
	ErrNotPathInstance = errors.New("instance: not a path instance")
)
