package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrServiceClosed    GameError = "game service is closed"
)
