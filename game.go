package main

import (
	"context"
	"errors"
	"time"

	"hangman/internal/hangman"
	"hangman/internal/types"
)

// newPlayerSession builds a board and starts a session over the loaded puzzles.
// With no puzzles the session stays unstarted and pages show a notice.
func (app *App) newPlayerSession(ctx context.Context) *playerSession {
	board := NewBoardView(app.Figure)
	game := hangman.NewSession(board,
		hangman.WithShuffle(app.Config.Shuffle),
		hangman.WithMaxLives(len(app.Figure)),
		hangman.WithWinPolicy(app.Policy),
	)
	if err := game.Start(app.Puzzles); err != nil {
		reqLogger(ctx).Warn().Err(err).Msg("session cannot start")
	}
	return &playerSession{game: game, board: board, lastAccessTime: time.Now()}
}

// processGuess applies a letter and returns a user-facing error message.
// Guesses on a finished round are ignored.
func (app *App) processGuess(ctx context.Context, sessionID string, ps *playerSession, letter string) string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.lastAccessTime = time.Now()

	res, err := ps.game.Guess(letter)
	l := reqLogger(ctx)
	switch {
	case err == nil:
		l.Info().Str("session", sessionID).Str("letter", res.Letter).Bool("correct", res.Correct).
			Str("outcome", string(res.Outcome)).Msg("guess")
		if res.Outcome.Terminal() {
			l.Info().Str("session", sessionID).Str("answer", ps.game.Game().Answer()).
				Msgf("player %s", res.Outcome)
		}
		return ""
	case errors.Is(err, hangman.ErrInvalidState):
		l.Warn().Str("session", sessionID).Msg("guess on finished round ignored")
		return ErrorRoundOver
	case errors.Is(err, hangman.ErrLetterUsed):
		return ErrorLetterUsed
	case errors.Is(err, hangman.ErrInvalidLetter):
		return ErrorInvalidLetter
	case errors.Is(err, hangman.ErrNotStarted):
		return ErrorNoQuestions
	default:
		l.Warn().Err(err).Str("session", sessionID).Msg("guess failed")
		return err.Error()
	}
}

// advanceSession moves to the next puzzle. Reaching the end of the list marks
// the session complete so the dialog offers a replay.
func (app *App) advanceSession(ctx context.Context, sessionID string, ps *playerSession) string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.lastAccessTime = time.Now()

	if !ps.game.Started() {
		return ErrorNoQuestions
	}
	err := ps.game.Advance()
	switch {
	case err == nil:
		reqLogger(ctx).Info().Str("session", sessionID).Int("cursor", ps.game.Cursor()).Msg("next puzzle")
		return ""
	case errors.Is(err, hangman.ErrSessionComplete):
		ps.complete = true
		reqLogger(ctx).Info().Str("session", sessionID).Msg("all puzzles played")
		return ""
	default:
		return err.Error()
	}
}

// restartSession plays the puzzle set again. When the session never started,
// it retries with the currently loaded puzzles.
func (app *App) restartSession(ctx context.Context, sessionID string, ps *playerSession) string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.lastAccessTime = time.Now()

	var err error
	if ps.game.Started() {
		err = ps.game.Restart()
	} else {
		err = ps.game.Start(app.Puzzles)
	}
	if err != nil {
		reqLogger(ctx).Warn().Err(err).Str("session", sessionID).Msg("restart failed")
		return ErrorNoQuestions
	}
	ps.complete = false
	reqLogger(ctx).Info().Str("session", sessionID).Msg("session restarted")
	return ""
}

// snapshot returns the JSON view of a player's round.
func (ps *playerSession) snapshot() types.StateSnapshot {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.game.Snapshot()
}
