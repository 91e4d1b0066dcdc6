package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hangman/internal/hangman"
	"hangman/internal/types"
)

// App holds the loaded puzzles and every player's session.
type App struct {
	Config       Config
	Puzzles      []types.Puzzle
	Figure       []string // stage ids of the hanged-man figure
	Policy       hangman.WinPolicy
	IsProduction bool
	StartTime    time.Time

	Sessions     map[string]*playerSession
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
}

// playerSession is one browser's game. mu serialises its events.
type playerSession struct {
	mu             sync.Mutex
	game           *hangman.Session
	board          *BoardView
	complete       bool // next was requested on the last puzzle
	lastAccessTime time.Time
}

// LetterButton is one A-Z choice on the board.
type LetterButton struct {
	Letter  string
	Used    bool
	Correct bool
}

// Placeholder is one character slot of the answer.
type Placeholder struct {
	Char     string
	Revealed bool
}

// StageView is one piece of the hanged-man figure.
type StageView struct {
	ID      string
	Visible bool
}
