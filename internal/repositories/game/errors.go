package game

import "errors"

var (
	// ErrNilConfig is returned when a repository is built without a config
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrMalformedGames is returned when the stored collection cannot be decoded
	ErrMalformedGames = errors.New("stored games are malformed")
)
