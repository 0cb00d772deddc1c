package store

import "errors"

var (
	// errRegionTooLarge is returned when an encoded node exceeds the
	// largest size class this arena's bucketing scheme can host.
	errRegionTooLarge = errors.New("store: encoded node exceeds largest size class")

	// ErrClosed names the closed-arena condition. No LinearStore method
	// returns it: calls made after Close are not checked.
	ErrClosed = errors.New("store: arena is closed")
)
