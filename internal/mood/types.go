package mood

import "time"

// State is a discrete affect label.
type State string

const (
	StateSad      State = "sad"
	StateNeutral  State = "neutral"
	StateCalm     State = "calm"
	StateCurious  State = "curious"
	StateHappy    State = "happy"
	StateRomantic State = "romantic"
	StateExcited  State = "excited"
	StateJealous  State = "jealous"
)

// Mood is the current affect state: a discrete label plus a continuous
// intensity scalar in [0.1, 0.9].
type Mood struct {
	State       State     `json:"state"`
	Intensity   float64   `json:"intensity"`
	EmotionTags []string  `json:"emotion_tags"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryEntry is one recorded mood sample.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	State     State     `json:"state"`
	Intensity float64   `json:"intensity"`
}

// MaxHistory bounds the mood history; oldest entries are evicted first.
const MaxHistory = 10

// PushHistory appends an entry and evicts the oldest beyond MaxHistory.
func PushHistory(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	history = append(history, entry)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	return history
}

// ClampIntensity bounds intensity to [0.1, 0.9].
func ClampIntensity(value float64) float64 {
	switch {
	case value < 0.1:
		return 0.1
	case value > 0.9:
		return 0.9
	default:
		return value
	}
}
