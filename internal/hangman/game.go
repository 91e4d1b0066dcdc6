package hangman

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"hangman/internal/types"
)

// Outcome is the derived status of the current round.
type Outcome string

const (
	InProgress Outcome = "in-progress"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// WinPolicy selects how a completed answer is detected.
type WinPolicy string

const (
	// PolicyFaithful compares the sorted guessed letters against the sorted
	// characters of the whole answer. Answers with a repeated letter, or with
	// any non-letter character, can never be won under this policy.
	PolicyFaithful WinPolicy = "faithful"
	// PolicyStrict wins once every letter of the answer has been revealed.
	PolicyStrict WinPolicy = "strict"
)

// ParseWinPolicy maps a config value to a WinPolicy. Empty means faithful.
func ParseWinPolicy(s string) (WinPolicy, error) {
	switch WinPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFaithful:
		return PolicyFaithful, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown win policy %q", s)
	}
}

// Stage names of the hanged-man figure, in reveal order.
var (
	CanonicalStages = []string{
		"first-gallow-wood",
		"second-gallow-wood",
		"third-gallow-wood",
		"fourth-gallow-wood",
		"rope",
		"man-head",
		"man-body",
		"man-left-hand",
		"man-right-hand",
		"man-left-foot",
		"man-right-foot",
	}
	// ReducedStages is the figure without the rope.
	ReducedStages = lo.Without(CanonicalStages, "rope")
)

// DefaultMaxLives is one life per stage of the canonical figure.
var DefaultMaxLives = len(CanonicalStages)

// GuessResult describes the effect of one accepted guess.
type GuessResult struct {
	Letter  string
	Correct bool
	// Stage is the zero-based index of the stage revealed by a wrong guess,
	// or -1 for a correct one.
	Stage   int
	Outcome Outcome
}

// Game tracks guesses and lives for a single puzzle.
type Game struct {
	puzzle   types.Puzzle
	answer   string
	guessed  map[string]struct{}
	used     []string
	lives    int
	maxLives int
	policy   WinPolicy
}

// NewGame starts a round in progress with no guesses and no lives used.
func NewGame(p types.Puzzle, maxLives int, policy WinPolicy) *Game {
	if maxLives <= 0 {
		maxLives = DefaultMaxLives
	}
	if policy == "" {
		policy = PolicyFaithful
	}
	return &Game{
		puzzle:   p,
		answer:   NormalizeAnswer(p.Answer),
		guessed:  make(map[string]struct{}),
		maxLives: maxLives,
		policy:   policy,
	}
}

// SubmitGuess applies a letter guess. Guessing after the round ended returns
// ErrInvalidState; a letter already tried returns ErrLetterUsed. Neither
// changes any state.
func (g *Game) SubmitGuess(input string) (GuessResult, error) {
	if out := g.Outcome(); out.Terminal() {
		return GuessResult{Stage: -1, Outcome: out}, ErrInvalidState
	}
	letter, err := NormalizeLetter(input)
	if err != nil {
		return GuessResult{Stage: -1, Outcome: InProgress}, err
	}
	if slices.Contains(g.used, letter) {
		return GuessResult{Letter: letter, Stage: -1, Outcome: InProgress}, ErrLetterUsed
	}
	g.used = append(g.used, letter)

	res := GuessResult{Letter: letter, Stage: -1}
	if strings.Contains(g.answer, letter) {
		g.guessed[letter] = struct{}{}
		res.Correct = true
	} else {
		if g.lives < g.maxLives {
			g.lives++
		}
		res.Stage = g.lives - 1
	}
	res.Outcome = g.Outcome()
	return res, nil
}

// Outcome derives the round status from the guesses and lives used.
func (g *Game) Outcome() Outcome {
	if g.lives >= g.maxLives {
		return Lost
	}
	if g.solved() {
		return Won
	}
	return InProgress
}

func (g *Game) solved() bool {
	switch g.policy {
	case PolicyStrict:
		letters := answerLetters(g.answer)
		if len(letters) == 0 {
			return false
		}
		return lo.EveryBy(letters, func(l string) bool {
			_, ok := g.guessed[l]
			return ok
		})
	default:
		return sortedChars(strings.Join(g.GuessedLetters(), "")) == sortedChars(g.answer)
	}
}

// Puzzle returns the puzzle being played.
func (g *Game) Puzzle() types.Puzzle { return g.puzzle }

// Answer returns the normalised answer.
func (g *Game) Answer() string { return g.answer }

// LivesUsed returns the Life Counter.
func (g *Game) LivesUsed() int { return g.lives }

// MaxLives returns the number of wrong guesses that lose the round.
func (g *Game) MaxLives() int { return g.maxLives }

// Policy returns the win policy in effect.
func (g *Game) Policy() WinPolicy { return g.policy }

// UsedLetters returns every letter tried so far, in guess order.
func (g *Game) UsedLetters() []string { return slices.Clone(g.used) }

// GuessedLetters returns the Guess Set, sorted.
func (g *Game) GuessedLetters() []string {
	keys := lo.Keys(g.guessed)
	slices.Sort(keys)
	return keys
}

// IsUsed reports whether the letter was already tried.
func (g *Game) IsUsed(letter string) bool {
	return slices.Contains(g.used, letter)
}

// Mask returns one entry per answer character: the character once revealed,
// or "" while hidden. Characters outside A-Z are always shown.
func (g *Game) Mask() []string {
	return lo.Map([]rune(g.answer), func(r rune, _ int) string {
		s := string(r)
		if r > 0x7f || !isLetter(byte(r)) {
			return s
		}
		if _, ok := g.guessed[s]; ok {
			return s
		}
		return ""
	})
}

func answerLetters(answer string) []string {
	return lo.Uniq(lo.FilterMap([]rune(answer), func(r rune, _ int) (string, bool) {
		return string(r), r <= 0x7f && isLetter(byte(r))
	}))
}

func sortedChars(s string) string {
	rs := []rune(strings.ToLower(s))
	slices.Sort(rs)
	return string(rs)
}
