package domain

import "errors"

var (
	// ErrGameOver is returned when a dart is thrown after a win or bust.
	ErrGameOver = errors.New("game is over")
	// ErrGameInProgress is returned when a session is requested before the game ends.
	ErrGameInProgress = errors.New("game is still in progress")
	// ErrInvalidStartingScore is returned for starting scores that cannot be checked out.
	ErrInvalidStartingScore = errors.New("invalid starting score")
	// ErrUnaimableTarget is returned when a throw is aimed at a miss or malformed target.
	ErrUnaimableTarget = errors.New("target cannot be aimed at")
	// ErrInvalidPercentage is returned when a hit ratio falls outside 10-100.
	ErrInvalidPercentage = errors.New("hit percentage must be between 10 and 100")
	// ErrInvalidDifficulty is returned for unknown difficulty bands.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
