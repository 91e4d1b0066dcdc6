package types

// Puzzle is a single tip/answer pair. It is never mutated after loading.
type Puzzle struct {
	Tip    string `json:"tip"`
	Answer string `json:"answer"`
}

// StateSnapshot is the JSON view of a player's current round.
type StateSnapshot struct {
	Tip         string   `json:"tip"`
	Mask        []string `json:"mask"`
	UsedLetters []string `json:"usedLetters"`
	LivesUsed   int      `json:"livesUsed"`
	MaxLives    int      `json:"maxLives"`
	Outcome     string   `json:"outcome"`
	Answer      string   `json:"answer,omitempty"`
	Cursor      int      `json:"cursor"`
	Total       int      `json:"total"`
	LastPuzzle  bool     `json:"lastPuzzle"`
}
