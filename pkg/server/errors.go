package server

import "errors"

var (
	// ErrMaxSessionsReached is returned when the session cap is reached.
	ErrMaxSessionsReached = errors.New("server: maximum sessions reached")

	// ErrSessionClosed is returned when writing to a closed session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrInvalidTarget is returned for a widget id that is not one the
	// server could have issued.
	ErrInvalidTarget = errors.New("server: invalid target id")

	// ErrEventQueueFull is returned when the client outpaces the event loop.
	ErrEventQueueFull = errors.New("server: event queue full")
)
