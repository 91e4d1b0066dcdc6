package hangman

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"hangman/internal/types"
)

// recordingView keeps every render command as a string.
type recordingView struct {
	calls []string
}

func (v *recordingView) RenderLetterChoices(letters []string) {
	v.calls = append(v.calls, fmt.Sprintf("letters:%d", len(letters)))
}
func (v *recordingView) RenderAnswerPlaceholders(answer string) {
	v.calls = append(v.calls, "placeholders:"+answer)
}
func (v *recordingView) RenderTip(text string) { v.calls = append(v.calls, "tip:"+text) }
func (v *recordingView) MarkLetterUsed(letter string, wasCorrect bool) {
	v.calls = append(v.calls, fmt.Sprintf("used:%s:%v", letter, wasCorrect))
}
func (v *recordingView) RenderLifeStage(stageIndex int) {
	v.calls = append(v.calls, fmt.Sprintf("stage:%d", stageIndex))
}
func (v *recordingView) ShowOutcome(outcome Outcome, answer string) {
	v.calls = append(v.calls, fmt.Sprintf("outcome:%s:%s", outcome, answer))
}
func (v *recordingView) ResetBoard() { v.calls = append(v.calls, "reset") }

func (v *recordingView) count(prefix string) int {
	n := 0
	for _, c := range v.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func testPuzzles() []types.Puzzle {
	return []types.Puzzle{
		{Tip: TestTipBird, Answer: TestAnswerCrane},
		{Tip: TestTipFruit, Answer: TestAnswerApple},
		{Tip: "a metal", Answer: "gold"},
	}
}

func TestStartEmptyPuzzleSet(t *testing.T) {
	s := NewSession(nil)
	if err := s.Start(nil); !errors.Is(err, ErrEmptyPuzzleSet) {
		t.Errorf("Start(nil) err = %v, want ErrEmptyPuzzleSet", err)
	}
	if err := s.Start([]types.Puzzle{}); !errors.Is(err, ErrEmptyPuzzleSet) {
		t.Errorf("Start([]) err = %v, want ErrEmptyPuzzleSet", err)
	}
	if s.Started() {
		t.Error("session should not be started after empty Start")
	}
	if _, err := s.Guess("A"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Guess before start err = %v, want ErrNotStarted", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Advance before start err = %v, want ErrNotStarted", err)
	}
}

func TestStartRendersFirstPuzzle(t *testing.T) {
	v := &recordingView{}
	s := NewSession(v)
	if err := s.Start(testPuzzles()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	want := []string{"reset", "tip:" + TestTipBird, "placeholders:CRANE", "letters:26"}
	if !slices.Equal(v.calls, want) {
		t.Errorf("render calls = %v, want %v", v.calls, want)
	}
	p, ok := s.CurrentPuzzle()
	if !ok || p.Answer != TestAnswerCrane {
		t.Errorf("CurrentPuzzle = %+v, %v", p, ok)
	}
	if s.Cursor() != 0 || s.CurrentOutcome() != InProgress {
		t.Errorf("cursor=%d outcome=%s after start", s.Cursor(), s.CurrentOutcome())
	}
}

func TestGuessRendersEffects(t *testing.T) {
	v := &recordingView{}
	s := NewSession(v)
	_ = s.Start(testPuzzles())
	v.calls = nil

	if _, err := s.Guess("c"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Guess("q"); err != nil {
		t.Fatal(err)
	}
	want := []string{"used:C:true", "used:Q:false", "stage:0"}
	if !slices.Equal(v.calls, want) {
		t.Errorf("render calls = %v, want %v", v.calls, want)
	}

	for _, l := range []string{"R", "A", "N", "E"} {
		_, _ = s.Guess(l)
	}
	if s.CurrentOutcome() != Won {
		t.Fatalf("outcome = %s, want won", s.CurrentOutcome())
	}
	if v.calls[len(v.calls)-1] != "outcome:won:CRANE" {
		t.Errorf("last call = %q, want outcome:won:CRANE", v.calls[len(v.calls)-1])
	}
}

func TestLifeStageRenderedExactlyMaxLivesTimes(t *testing.T) {
	v := &recordingView{}
	s := NewSession(v, WithMaxLives(7))
	_ = s.Start([]types.Puzzle{{Tip: TestTipFruit, Answer: TestAnswerApple}})
	for _, l := range []string{"Z", "Z", "Y", "X", "W", "V", "U", "T", "S", "R"} {
		_, _ = s.Guess(l)
	}
	if s.CurrentOutcome() != Lost {
		t.Fatalf("outcome = %s, want lost", s.CurrentOutcome())
	}
	if n := v.count("stage:"); n != 7 {
		t.Errorf("stage renders = %d, want 7", n)
	}
	if n := v.count("outcome:lost"); n != 1 {
		t.Errorf("outcome renders = %d, want 1", n)
	}
}

func TestAdvance(t *testing.T) {
	v := &recordingView{}
	s := NewSession(v)
	_ = s.Start(testPuzzles())
	_, _ = s.Guess("Z")

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor())
	}
	if g := s.Game(); g.LivesUsed() != 0 || len(g.UsedLetters()) != 0 {
		t.Errorf("new puzzle not reset: lives=%d used=%v", g.LivesUsed(), g.UsedLetters())
	}
	if v.calls[len(v.calls)-4] != "reset" {
		t.Errorf("advance did not reset the board: %v", v.calls)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("second Advance: %v", err)
	}
	if !s.IsLast() {
		t.Fatal("expected last puzzle")
	}
	if err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Advance on last err = %v, want ErrSessionComplete", err)
	}
	if s.Cursor() != 2 {
		t.Errorf("cursor moved to %d on complete session", s.Cursor())
	}
}

func TestRestart(t *testing.T) {
	s := NewSession(nil)
	_ = s.Start(testPuzzles())
	_ = s.Advance()
	_, _ = s.Guess("G")
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Cursor() != 0 || s.Game().LivesUsed() != 0 || len(s.Game().UsedLetters()) != 0 {
		t.Errorf("restart did not reset: cursor=%d lives=%d", s.Cursor(), s.Game().LivesUsed())
	}
	if s.Len() != 3 {
		t.Errorf("len = %d, want 3", s.Len())
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	calls := 0
	reverse := func(p []types.Puzzle) []types.Puzzle {
		calls++
		slices.Reverse(p)
		return p
	}
	in := testPuzzles()
	s := NewSession(nil, WithShuffle(true), WithShuffler(reverse))
	if err := s.Start(in); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("shuffler called %d times, want 1", calls)
	}
	p, _ := s.CurrentPuzzle()
	if p.Answer != "gold" {
		t.Errorf("first puzzle = %q, want gold", p.Answer)
	}
	if in[0].Answer != TestAnswerCrane {
		t.Error("Start must not reorder the caller's slice")
	}

	d := NewSession(nil, WithShuffle(true))
	_ = d.Start(in)
	seen := map[string]bool{}
	for {
		p, _ := d.CurrentPuzzle()
		seen[p.Answer] = true
		if err := d.Advance(); errors.Is(err, ErrSessionComplete) {
			break
		}
	}
	if len(seen) != len(in) {
		t.Errorf("shuffled session visited %d puzzles, want %d", len(seen), len(in))
	}
}

func TestSnapshot(t *testing.T) {
	s := NewSession(nil, WithWinPolicy(PolicyStrict))
	_ = s.Start([]types.Puzzle{{Tip: TestTipFruit, Answer: TestAnswerApple}})
	_, _ = s.Guess("P")
	snap := s.Snapshot()
	if snap.Answer != "" {
		t.Error("answer must stay hidden while in progress")
	}
	if snap.Tip != TestTipFruit || snap.Total != 1 || !snap.LastPuzzle {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if !slices.Equal(snap.Mask, []string{"", "P", "P", "", ""}) {
		t.Errorf("mask = %q", snap.Mask)
	}
	for _, l := range []string{"A", "L", "E"} {
		_, _ = s.Guess(l)
	}
	snap = s.Snapshot()
	if snap.Outcome != string(Won) || snap.Answer != TestAnswerApple {
		t.Errorf("final snapshot = %+v", snap)
	}
}
