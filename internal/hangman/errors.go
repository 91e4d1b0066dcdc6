package hangman

import "errors"

var (
	// ErrInvalidLetter is returned for guesses outside A-Z.
	ErrInvalidLetter = errors.New("guess must be a single letter A-Z")
	// ErrLetterUsed is returned when a letter was already tried for the current puzzle.
	ErrLetterUsed = errors.New("letter already used")
	// ErrInvalidState is returned for guesses submitted after the round ended.
	ErrInvalidState = errors.New("round is already over")
	// ErrEmptyPuzzleSet is returned when a session is started without puzzles.
	ErrEmptyPuzzleSet = errors.New("no puzzles to play")
	// ErrSessionComplete is returned by Advance on the last puzzle.
	// It is a terminal signal, not a failure.
	ErrSessionComplete = errors.New("no more puzzles")
	// ErrNotStarted is returned when a session is used before Start succeeded.
	ErrNotStarted = errors.New("session not started")
)
