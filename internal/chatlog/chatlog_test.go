package chatlog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type closableBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closableBuffer) Close() error {
	b.closed = true
	return nil
}

func TestEventWritesOneLinePerEvent(t *testing.T) {
	buf := &closableBuffer{}
	transcript := NewWithWriter(buf)
	transcript.nowFunc = func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	}

	events := []struct{ speaker, message string }{
		{"system", "session started"},
		{"user", "hello"},
		{"Aiko", "hey you!"},
	}
	for _, event := range events {
		if err := transcript.Event(event.speaker, event.message); err != nil {
			t.Fatalf("event failed: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != "[2025-06-01 12:30:00] user: hello" {
		t.Fatalf("unexpected line format: %q", lines[1])
	}
}

func TestCloseReleasesWriter(t *testing.T) {
	buf := &closableBuffer{}
	transcript := NewWithWriter(buf)
	if err := transcript.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !buf.closed {
		t.Fatalf("writer not closed")
	}
}
