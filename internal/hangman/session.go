package hangman

import (
	"slices"

	"github.com/samber/lo"

	"hangman/internal/types"
)

// Option configures a Session.
type Option func(*Session)

// WithShuffle shuffles the puzzle set once per Start.
func WithShuffle(on bool) Option {
	return func(s *Session) { s.shuffle = on }
}

// WithShuffler replaces the default uniform shuffle.
func WithShuffler(fn func([]types.Puzzle) []types.Puzzle) Option {
	return func(s *Session) { s.shuffler = fn }
}

// WithMaxLives sets how many wrong guesses lose a round.
func WithMaxLives(n int) Option {
	return func(s *Session) { s.maxLives = n }
}

// WithWinPolicy selects how a solved answer is detected.
func WithWinPolicy(p WinPolicy) Option {
	return func(s *Session) { s.policy = p }
}

// Session sequences puzzles and forwards render commands to its View.
// It is not safe for concurrent use.
type Session struct {
	view     View
	loaded   []types.Puzzle
	puzzles  []types.Puzzle
	cursor   int
	game     *Game
	shuffle  bool
	shuffler func([]types.Puzzle) []types.Puzzle
	maxLives int
	policy   WinPolicy
}

// NewSession returns an unstarted session rendering to view.
func NewSession(view View, opts ...Option) *Session {
	if view == nil {
		view = NopView{}
	}
	s := &Session{
		view:     view,
		shuffler: func(p []types.Puzzle) []types.Puzzle { return lo.Shuffle(p) },
		maxLives: DefaultMaxLives,
		policy:   PolicyFaithful,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins play at the first puzzle. It fails with ErrEmptyPuzzleSet when
// there is nothing to play, leaving any previous state untouched.
func (s *Session) Start(puzzles []types.Puzzle) error {
	if len(puzzles) == 0 {
		return ErrEmptyPuzzleSet
	}
	s.loaded = slices.Clone(puzzles)
	s.puzzles = slices.Clone(puzzles)
	if s.shuffle {
		s.puzzles = s.shuffler(s.puzzles)
	}
	s.cursor = 0
	s.load()
	return nil
}

// Restart plays the same puzzle set again from the beginning.
func (s *Session) Restart() error {
	if s.game == nil {
		return ErrNotStarted
	}
	return s.Start(s.loaded)
}

// Advance moves to the next puzzle. On the last puzzle it returns
// ErrSessionComplete and leaves the cursor where it is.
func (s *Session) Advance() error {
	if s.game == nil {
		return ErrNotStarted
	}
	if s.IsLast() {
		return ErrSessionComplete
	}
	s.cursor++
	s.load()
	return nil
}

// Guess submits a letter for the current puzzle and renders its effect.
func (s *Session) Guess(letter string) (GuessResult, error) {
	if s.game == nil {
		return GuessResult{Stage: -1}, ErrNotStarted
	}
	res, err := s.game.SubmitGuess(letter)
	if err != nil {
		return res, err
	}
	s.view.MarkLetterUsed(res.Letter, res.Correct)
	if !res.Correct {
		s.view.RenderLifeStage(res.Stage)
	}
	if res.Outcome.Terminal() {
		s.view.ShowOutcome(res.Outcome, s.game.Answer())
	}
	return res, nil
}

func (s *Session) load() {
	p := s.puzzles[s.cursor]
	s.game = NewGame(p, s.maxLives, s.policy)
	s.view.ResetBoard()
	s.view.RenderTip(p.Tip)
	s.view.RenderAnswerPlaceholders(s.game.Answer())
	s.view.RenderLetterChoices(Letters)
}

// Started reports whether Start has succeeded at least once.
func (s *Session) Started() bool { return s.game != nil }

// CurrentPuzzle returns the puzzle at the cursor.
func (s *Session) CurrentPuzzle() (types.Puzzle, bool) {
	if s.game == nil {
		return types.Puzzle{}, false
	}
	return s.puzzles[s.cursor], true
}

// CurrentOutcome returns the outcome of the current round.
func (s *Session) CurrentOutcome() Outcome {
	if s.game == nil {
		return InProgress
	}
	return s.game.Outcome()
}

// Game exposes the state machine for the current puzzle, nil before Start.
func (s *Session) Game() *Game { return s.game }

// Cursor returns the index of the current puzzle.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the size of the puzzle set.
func (s *Session) Len() int { return len(s.puzzles) }

// IsLast reports whether the cursor is on the final puzzle.
func (s *Session) IsLast() bool { return s.cursor == len(s.puzzles)-1 }

// Snapshot summarises the current round. The answer is only included once
// the round is over.
func (s *Session) Snapshot() types.StateSnapshot {
	if s.game == nil {
		return types.StateSnapshot{Outcome: string(InProgress)}
	}
	out := s.game.Outcome()
	snap := types.StateSnapshot{
		Tip:         s.game.Puzzle().Tip,
		Mask:        s.game.Mask(),
		UsedLetters: s.game.UsedLetters(),
		LivesUsed:   s.game.LivesUsed(),
		MaxLives:    s.game.MaxLives(),
		Outcome:     string(out),
		Cursor:      s.cursor,
		Total:       len(s.puzzles),
		LastPuzzle:  s.IsLast(),
	}
	if out.Terminal() {
		snap.Answer = s.game.Answer()
	}
	return snap
}
