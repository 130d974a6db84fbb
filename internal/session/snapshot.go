package session

import (
	"context"
	"time"

	"github.com/moodloop/amica/internal/conversation"
	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
)

// Snapshot is the durable form of a session. The round trip through any
// store is loss-free for every field the core reads.
type Snapshot struct {
	SessionID           string              `json:"session_id"`
	LastInteraction     time.Time           `json:"lastInteraction"`
	InteractionCount    int                 `json:"interactionCount"`
	TopicsDiscussed     []string            `json:"topicsDiscussed"`
	MoodHistory         []mood.HistoryEntry `json:"moodHistory"`
	ConversationHistory []conversation.Turn `json:"conversationHistory"`
	HasDirective        bool                `json:"hasDirective"`
	DetectedTopics      objective.Counters  `json:"detectedTopics"`
	DetectedIntents     objective.Counters  `json:"detectedIntents"`
	Mood                mood.Mood           `json:"mood"`
	Objectives          objective.Set       `json:"objectives"`
	LastSaved           time.Time           `json:"lastSaved"`
}

// Store persists session snapshots. Load returns (nil, nil) when no
// snapshot exists for the session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Close() error
}
