package main

import (
	"slices"

	"github.com/samber/lo"

	"hangman/internal/hangman"
)

// BoardView is the HTML render surface. The session drives it through
// hangman.View and templates read it back when a page is rendered.
type BoardView struct {
	Tip          string
	Letters      []LetterButton
	Placeholders []Placeholder
	Stages       []StageView
	Outcome      hangman.Outcome
	Answer       string
	DialogOpen   bool
}

var _ hangman.View = (*BoardView)(nil)

// NewBoardView returns an empty board for the given figure.
func NewBoardView(figure []string) *BoardView {
	b := &BoardView{
		Stages: lo.Map(figure, func(id string, _ int) StageView { return StageView{ID: id} }),
	}
	b.ResetBoard()
	return b
}

// RenderLetterChoices lays out one unused button per letter.
func (b *BoardView) RenderLetterChoices(letters []string) {
	b.Letters = lo.Map(letters, func(l string, _ int) LetterButton { return LetterButton{Letter: l} })
}

// RenderAnswerPlaceholders adds one slot per answer character.
func (b *BoardView) RenderAnswerPlaceholders(answer string) {
	b.Placeholders = lo.Map([]rune(answer), func(r rune, _ int) Placeholder {
		return Placeholder{Char: string(r), Revealed: r < 'A' || r > 'Z'}
	})
}

// RenderTip sets the tip shown above the answer.
func (b *BoardView) RenderTip(text string) {
	b.Tip = text
}

// MarkLetterUsed disables the button and, for a correct letter, reveals
// every matching placeholder.
func (b *BoardView) MarkLetterUsed(letter string, wasCorrect bool) {
	for i := range b.Letters {
		if b.Letters[i].Letter == letter {
			b.Letters[i].Used = true
			b.Letters[i].Correct = wasCorrect
		}
	}
	if !wasCorrect {
		return
	}
	for i := range b.Placeholders {
		if b.Placeholders[i].Char == letter {
			b.Placeholders[i].Revealed = true
		}
	}
}

// RenderLifeStage shows the figure stage at stageIndex.
func (b *BoardView) RenderLifeStage(stageIndex int) {
	if stageIndex < 0 || stageIndex >= len(b.Stages) {
		logWarn("No figure stage at index %d (figure has %d)", stageIndex, len(b.Stages))
		return
	}
	b.Stages[stageIndex].Visible = true
}

// ShowOutcome opens the result dialog.
func (b *BoardView) ShowOutcome(outcome hangman.Outcome, answer string) {
	b.Outcome = outcome
	b.Answer = answer
	b.DialogOpen = true
}

// ResetBoard clears the board and hides the figure.
func (b *BoardView) ResetBoard() {
	b.Tip = ""
	b.Letters = nil
	b.Placeholders = nil
	for i := range b.Stages {
		b.Stages[i].Visible = false
	}
	b.Outcome = hangman.InProgress
	b.Answer = ""
	b.DialogOpen = false
}

// clone copies the board so a template can read it after the session lock
// is released.
func (b *BoardView) clone() *BoardView {
	c := *b
	c.Letters = slices.Clone(b.Letters)
	c.Placeholders = slices.Clone(b.Placeholders)
	c.Stages = slices.Clone(b.Stages)
	return &c
}

// VisibleStages counts the revealed pieces of the figure.
func (b *BoardView) VisibleStages() int {
	return lo.CountBy(b.Stages, func(s StageView) bool { return s.Visible })
}

// figureFor picks the stage list matching maxLives.
func figureFor(maxLives int) []string {
	switch maxLives {
	case len(hangman.CanonicalStages):
		return hangman.CanonicalStages
	case len(hangman.ReducedStages):
		return hangman.ReducedStages
	default:
		logWarn("No figure has %d stages, using the %d-stage figure", maxLives, len(hangman.CanonicalStages))
		return hangman.CanonicalStages
	}
}
