// Package chatlog writes the append-only conversation transcript.
package chatlog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Transcript appends one line per conversation event in the form
// "[timestamp] speaker: message". Rotation is handled by the underlying
// writer.
type Transcript struct {
	mu      sync.Mutex
	writer  io.WriteCloser
	nowFunc func() time.Time
}

// New opens a rotating transcript at path.
func New(path string) *Transcript {
	return &Transcript{
		writer: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
		},
		nowFunc: time.Now,
	}
}

// NewWithWriter wraps an arbitrary writer; tests use this.
func NewWithWriter(w io.WriteCloser) *Transcript {
	return &Transcript{writer: w, nowFunc: time.Now}
}

// Event appends one transcript line. Write failures are returned but a
// transcript failure never stops the session.
func (t *Transcript) Event(speaker, message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	line := fmt.Sprintf("[%s] %s: %s\n", t.nowFunc().Format("2006-01-02 15:04:05"), speaker, message)
	if _, err := io.WriteString(t.writer, line); err != nil {
		return fmt.Errorf("failed to append transcript line: %w", err)
	}
	return nil
}

// Close releases the underlying writer.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writer.Close()
}
