package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsLabel(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Enumerating paths (4,4) → (7,3)")
	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("Stop without a cancelled parent should not report cancellation")
	}
	out := buf.String()
	if !strings.Contains(out, "Enumerating paths (4,4) → (7,3)") {
		t.Errorf("spinner never drew its label: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("Stop did not clear the line: %q", out)
	}
}

func TestSpinnerFrame(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Enumerating")

	tests := []struct {
		i       int
		elapsed time.Duration
		want    string
	}{
		{0, 0, "⠋ Enumerating"},
		{1, 500 * time.Millisecond, "⠙ Enumerating"},
		{10, 1500 * time.Millisecond, "⠋ Enumerating (1.5s)"},
		{12, 12 * time.Second, "⠹ Enumerating (12.0s)"},
	}
	for _, tt := range tests {
		if got := s.frame(tt.i, tt.elapsed); got != tt.want {
			t.Errorf("frame(%d, %v) = %q, want %q", tt.i, tt.elapsed, got, tt.want)
		}
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, &bytes.Buffer{}, "Enumerating")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report the cancelled parent")
	}
	s.Stop()
}

func TestSpinnerStopsOnTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, &bytes.Buffer{}, "Enumerating")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report the expired parent")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Enumerating")
	s.Start()

	s.Stop()
	s.Stop()
	if s.Elapsed() <= 0 {
		t.Errorf("Elapsed = %v after Start", s.Elapsed())
	}
}
