package main

import (
	"context"
	"sync"
	"testing"
	"time"
)

const (
	TestSessionActive   = "active-session-0001"
	TestSessionExpired1 = "expired-session-1"
	TestSessionExpired2 = "expired-session-2"
)

func TestGetPlayerSessionCaches(t *testing.T) {
	app := testApp(testPuzzles())
	ctx := context.Background()
	a := app.getPlayerSession(ctx, TestSessionActive)
	b := app.getPlayerSession(ctx, TestSessionActive)
	if a != b {
		t.Error("getPlayerSession should return the cached session")
	}
	if !a.game.Started() {
		t.Error("new session should be started")
	}
}

func TestGetPlayerSessionConcurrent(t *testing.T) {
	app := testApp(testPuzzles())
	ctx := context.Background()
	var wg sync.WaitGroup
	results := make([]*playerSession, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = app.getPlayerSession(ctx, TestSessionActive)
		}(i)
	}
	wg.Wait()
	for _, ps := range results {
		if ps != results[0] {
			t.Fatal("concurrent callers received different sessions")
		}
	}
}

func TestCleanupIdleSessions(t *testing.T) {
	app := testApp(testPuzzles())
	ctx := context.Background()
	for _, id := range []string{TestSessionActive, TestSessionExpired1, TestSessionExpired2} {
		app.getPlayerSession(ctx, id)
	}
	old := time.Now().Add(-3 * time.Hour)
	app.Sessions[TestSessionExpired1].lastAccessTime = old
	app.Sessions[TestSessionExpired2].lastAccessTime = old

	if removed := app.cleanupIdleSessions(2 * time.Hour); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if _, ok := app.Sessions[TestSessionActive]; !ok {
		t.Error("active session was removed")
	}
	if len(app.Sessions) != 1 {
		t.Errorf("sessions left = %d, want 1", len(app.Sessions))
	}
}

func TestSweepSessionsStops(t *testing.T) {
	app := testApp(testPuzzles())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.sweepSessions(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweepSessions did not stop after cancel")
	}
}
