package service

import "errors"

var (
	// ErrSessionActive indicates a start was attempted while a session is
	// already running.
	ErrSessionActive = errors.New("a session is already active")

	// ErrNoActiveSession indicates a stop or cancel was attempted with no
	// session running.
	ErrNoActiveSession = errors.New("no active session")

	// ErrInvalidDuration indicates duration text that does not match the
	// accepted grammar or parses to a non-positive value.
	ErrInvalidDuration = errors.New("invalid duration")
)
