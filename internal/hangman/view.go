package hangman

// View is the render surface driven by a Session. The session only emits
// commands; it never reads visual state back.
type View interface {
	RenderLetterChoices(letters []string)
	RenderAnswerPlaceholders(answer string)
	RenderTip(text string)
	MarkLetterUsed(letter string, wasCorrect bool)
	RenderLifeStage(stageIndex int)
	ShowOutcome(outcome Outcome, answer string)
	ResetBoard()
}

// NopView discards every render command.
type NopView struct{}

func (NopView) RenderLetterChoices([]string)   {}
func (NopView) RenderAnswerPlaceholders(string) {}
func (NopView) RenderTip(string)                {}
func (NopView) MarkLetterUsed(string, bool)     {}
func (NopView) RenderLifeStage(int)             {}
func (NopView) ShowOutcome(Outcome, string)     {}
func (NopView) ResetBoard()                     {}
