package network

import "errors"

var (
	// ErrUnknownStation indicates a connection or lookup referenced an undeclared station.
	ErrUnknownStation = errors.New("network: unknown station")

	// ErrDuplicateConnection indicates the same station pair appears twice.
	ErrDuplicateConnection = errors.New("network: duplicate connection")

	// ErrBadIndex indicates a 1-based station index outside the station list.
	ErrBadIndex = errors.New("network: station index out of range")

	// ErrBadLookup indicates an unsupported lookup mode.
	ErrBadLookup = errors.New("network: unsupported lookup mode")
)
