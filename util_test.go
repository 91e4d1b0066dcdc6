package main

import (
	"context"
	"testing"
	"time"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !dirExists(dir) {
		t.Errorf("Expected dirExists to return true for existing dir")
	}
	if dirExists(dir + "-notfound") {
		t.Errorf("Expected dirExists to return false for non-existent dir")
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		dur      time.Duration
		expected string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second * 65, "1 minute, 5 seconds"},
		{time.Second * 3665, "1 hour, 1 minute, 5 seconds"},
		{time.Second * 1, "1 second"},
	}
	for _, c := range cases {
		got := formatUptime(c.dur)
		if got != c.expected {
			t.Errorf("formatUptime(%v) = %q, want %q", c.dur, got, c.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" || plural(2) != "s" || plural(0) != "s" {
		t.Errorf("plural gave %q %q %q", plural(1), plural(2), plural(0))
	}
}

func TestReqLogger(t *testing.T) {
	if reqLogger(context.Background()) == nil {
		t.Fatal("reqLogger returned nil without request id")
	}
	ctx := context.WithValue(context.Background(), requestIDKey, "req-1")
	if reqLogger(ctx) == nil {
		t.Fatal("reqLogger returned nil with request id")
	}
}
