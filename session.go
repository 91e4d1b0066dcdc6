package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getPlayerSession retrieves or creates the player session for a session ID.
func (app *App) getPlayerSession(ctx context.Context, sessionID string) *playerSession {
	app.SessionMutex.RLock()
	ps, exists := app.Sessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		ps.mu.Lock()
		ps.lastAccessTime = time.Now()
		ps.mu.Unlock()
		return ps
	}

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	if ps, exists := app.Sessions[sessionID]; exists {
		return ps
	}
	reqLogger(ctx).Info().Str("session", sessionID).Msg("creating new game")
	ps = app.newPlayerSession(ctx)
	app.Sessions[sessionID] = ps
	return ps
}

// cleanupIdleSessions drops sessions not touched within maxAge.
func (app *App) cleanupIdleSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	for id, ps := range app.Sessions {
		ps.mu.Lock()
		idle := ps.lastAccessTime.Before(cutoff)
		ps.mu.Unlock()
		if idle {
			delete(app.Sessions, id)
			removed++
		}
	}
	if removed > 0 {
		logInfo("Session cleanup completed: removed %d idle sessions, %d remain", removed, len(app.Sessions))
	}
	return removed
}

// sweepSessions runs cleanupIdleSessions every interval until ctx is done.
func (app *App) sweepSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.cleanupIdleSessions(app.Config.SessionTimeout)
		}
	}
}
