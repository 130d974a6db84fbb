// Package session holds the per-session mutable state and its persisted
// snapshot form.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/moodloop/amica/internal/conversation"
	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
)

// State aggregates everything a session mutates per turn. There are no
// package-level mood or objective values anywhere; all state flows
// through here.
type State struct {
	SessionID         string
	Mood              mood.Mood
	MoodHistory       []mood.HistoryEntry
	Objectives        objective.Set
	Topics            objective.Counters
	Intents           objective.Counters
	TopicsDiscussed   []string
	Window            *conversation.Window
	LastInteractionAt time.Time
	InteractionCount  int
}

// New returns a fresh session with a generated ID and a neutral mood.
func New(maxExchanges int) *State {
	return &State{
		SessionID: uuid.NewString(),
		Mood: mood.Mood{
			State:       mood.StateNeutral,
			Intensity:   0.5,
			EmotionTags: mood.TagsFor(mood.StateNeutral),
		},
		Topics:  objective.Counters{},
		Intents: objective.Counters{},
		Window:  conversation.NewWindow(maxExchanges),
	}
}

// RecordMood applies a new mood and appends it to the bounded history.
func (s *State) RecordMood(next mood.Mood) {
	s.Mood = next
	s.MoodHistory = mood.PushHistory(s.MoodHistory, mood.HistoryEntry{
		Timestamp: next.UpdatedAt,
		State:     next.State,
		Intensity: next.Intensity,
	})
}

// NoteTopicsDiscussed folds newly matched topic labels into the unique,
// insertion-ordered discussed list.
func (s *State) NoteTopicsDiscussed() {
	for _, label := range objective.DetectedTopics(s.Topics) {
		seen := false
		for _, existing := range s.TopicsDiscussed {
			if existing == label {
				seen = true
				break
			}
		}
		if !seen {
			s.TopicsDiscussed = append(s.TopicsDiscussed, label)
		}
	}
}

// Snapshot captures the state for persistence.
func (s *State) Snapshot(now time.Time) *Snapshot {
	return &Snapshot{
		SessionID:           s.SessionID,
		LastInteraction:     s.LastInteractionAt,
		InteractionCount:    s.InteractionCount,
		TopicsDiscussed:     append([]string(nil), s.TopicsDiscussed...),
		MoodHistory:         append([]mood.HistoryEntry(nil), s.MoodHistory...),
		ConversationHistory: s.Window.Turns(),
		HasDirective:        s.Window.HasDirective(),
		DetectedTopics:      cloneCounters(s.Topics),
		DetectedIntents:     cloneCounters(s.Intents),
		Mood:                s.Mood,
		Objectives:          s.Objectives,
		LastSaved:           now,
	}
}

// FromSnapshot rebuilds a session from a persisted snapshot.
func FromSnapshot(snap *Snapshot, maxExchanges int) *State {
	state := &State{
		SessionID:         snap.SessionID,
		Mood:              snap.Mood,
		MoodHistory:       append([]mood.HistoryEntry(nil), snap.MoodHistory...),
		Objectives:        snap.Objectives,
		Topics:            cloneCounters(snap.DetectedTopics),
		Intents:           cloneCounters(snap.DetectedIntents),
		TopicsDiscussed:   append([]string(nil), snap.TopicsDiscussed...),
		Window:            conversation.Restore(snap.ConversationHistory, maxExchanges, snap.HasDirective),
		LastInteractionAt: snap.LastInteraction,
		InteractionCount:  snap.InteractionCount,
	}
	if state.SessionID == "" {
		state.SessionID = uuid.NewString()
	}
	if state.Mood.State == "" {
		state.Mood = mood.Mood{
			State:       mood.StateNeutral,
			Intensity:   0.5,
			EmotionTags: mood.TagsFor(mood.StateNeutral),
		}
	}
	state.Objectives.Normalize()
	return state
}

func cloneCounters(counters objective.Counters) objective.Counters {
	out := objective.Counters{}
	for label, count := range counters {
		out[label] = count
	}
	return out
}
