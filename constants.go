package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome      = "/"
	RouteGuess     = "/guess"
	RouteNext      = "/next"
	RoutePlayAgain = "/play-again"
	RouteGameState = "/game-state"
	RouteAPIState  = "/api/state"
	RouteHealthz   = "/healthz"
)

// Page text
const (
	PageTitle   = "Hangman"
	PageMessage = "Guess the answer before the hangman is complete!"
)

// Error message constants
const (
	ErrorRoundOver     = "This round is over."
	ErrorInvalidLetter = "Pick a letter from A to Z."
	ErrorLetterUsed    = "You already tried that letter."
	ErrorNoQuestions   = "No questions are available right now."
)

// Context key constants
type contextKey string

const (
	requestIDKey contextKey = "request_id"
)
