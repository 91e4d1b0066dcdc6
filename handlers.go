package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pageData collects everything the templates need for one player.
func (app *App) pageData(ps *playerSession, errMsg string) gin.H {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return gin.H{
		"title":      PageTitle,
		"message":    PageMessage,
		"board":      ps.board.clone(),
		"started":    ps.game.Started(),
		"complete":   ps.complete,
		"lastPuzzle": ps.game.IsLast(),
		"number":     ps.game.Cursor() + 1,
		"total":      ps.game.Len(),
		"livesUsed":  ps.board.VisibleStages(),
		"maxLives":   len(ps.board.Stages),
		"error":      errMsg,
	}
}

// render writes the board fragment for HTMX requests and the full page otherwise.
func (app *App) render(c *gin.Context, ps *playerSession, errMsg string) {
	if errMsg != "" {
		payload := map[string]string{"server_error": errMsg}
		if b, err := json.Marshal(payload); err == nil {
			c.Header("HX-Trigger", string(b))
		} else {
			logWarn("Failed to marshal HX-Trigger payload: %v", err)
		}
	}
	data := app.pageData(ps, errMsg)
	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "game-board", data)
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// homeHandler renders the main game page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)
	c.HTML(http.StatusOK, "index.html", app.pageData(ps, ""))
}

// guessHandler processes a letter click.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(ctx, sessionID)
	errMsg := app.processGuess(ctx, sessionID, ps, c.PostForm("letter"))
	app.render(c, ps, errMsg)
}

// nextHandler advances to the next puzzle.
func (app *App) nextHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(ctx, sessionID)
	errMsg := app.advanceSession(ctx, sessionID, ps)
	if errMsg == "" && c.GetHeader("HX-Request") != "true" {
		c.Redirect(http.StatusSeeOther, RouteHome)
		return
	}
	app.render(c, ps, errMsg)
}

// playAgainHandler restarts the puzzle list for the current session.
func (app *App) playAgainHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(ctx, sessionID)
	errMsg := app.restartSession(ctx, sessionID, ps)
	if errMsg == "" && c.GetHeader("HX-Request") != "true" {
		c.Redirect(http.StatusSeeOther, RouteHome)
		return
	}
	app.render(c, ps, errMsg)
}

// gameStateHandler renders the current game board as an HTML fragment.
func (app *App) gameStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)
	c.HTML(http.StatusOK, "game-board", app.pageData(ps, ""))
}

// apiStateHandler returns the current round as JSON.
func (app *App) apiStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	ps := app.getPlayerSession(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, ps.snapshot())
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	app.SessionMutex.RLock()
	sessions := len(app.Sessions)
	app.SessionMutex.RUnlock()
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"puzzles_loaded": len(app.Puzzles),
		"sessions":       sessions,
		"win_policy":     string(app.Policy),
		"uptime":         formatUptime(time.Since(app.StartTime)),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
