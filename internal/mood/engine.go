// Package mood implements the continuous-intensity affect model with
// discrete state mapping and trigger overrides.
package mood

import (
	"math/rand"
	"strings"
	"time"
)

// Per-category occurrence weights.
const (
	positiveWeight   = 0.2
	negativeWeight   = 0.2
	questionWeight   = 0.1
	excitementWeight = 0.3

	deltaScale       = 0.3
	jealousIntensity = 0.7
)

// Engine derives the next mood from the current one and raw user text.
// Threshold tables and lexicons are data, not code: deployments with
// older tuning pass LegacyThresholds instead of the defaults.
type Engine struct {
	lexicons   Lexicons
	thresholds []Threshold

	randFn  func() float64
	nowFunc func() time.Time
}

// NewEngine returns an engine on the reference tables.
func NewEngine() *Engine {
	return NewEngineWithTables(DefaultLexicons, DefaultThresholds)
}

// NewEngineWithTables returns an engine on caller-supplied tables.
func NewEngineWithTables(lexicons Lexicons, thresholds []Threshold) *Engine {
	return &Engine{
		lexicons:   lexicons,
		thresholds: thresholds,
		randFn:     rand.Float64,
		nowFunc:    time.Now,
	}
}

// Update computes the next mood for the given user text. Any text
// containing a jealousy trigger word forces the jealous state outright;
// otherwise the weighted lexicon delta moves the intensity and the
// threshold table selects the state. Update is total: it never fails.
func (e *Engine) Update(current Mood, text string, jealousyTriggers []string) Mood {
	lowered := strings.ToLower(text)

	positive := float64(countOccurrences(lowered, e.lexicons.Positive)) * positiveWeight
	negative := float64(countOccurrences(lowered, e.lexicons.Negative)) * negativeWeight
	// Question score feeds no delta yet; computed to keep the scoring
	// surface uniform for later tuning.
	_ = float64(countOccurrences(lowered, e.lexicons.Question)) * questionWeight
	excitement := float64(countOccurrences(lowered, e.lexicons.Excitement)) * excitementWeight

	fluctuation := e.randFn()*0.2 - 0.1
	delta := positive - negative + excitement + fluctuation
	intensity := ClampIntensity(current.Intensity + delta*deltaScale)

	now := e.nowFunc()

	if containsTrigger(lowered, jealousyTriggers) {
		return Mood{
			State:       StateJealous,
			Intensity:   jealousIntensity,
			EmotionTags: TagsFor(StateJealous),
			UpdatedAt:   now,
		}
	}

	state := e.selectState(intensity)
	return Mood{
		State:       state,
		Intensity:   intensity,
		EmotionTags: TagsFor(state),
		UpdatedAt:   now,
	}
}

// selectState scans the threshold table from the highest minimum down
// and returns the first state the intensity reaches.
func (e *Engine) selectState(intensity float64) State {
	for _, threshold := range e.thresholds {
		if intensity >= threshold.MinIntensity {
			return threshold.State
		}
	}
	if len(e.thresholds) == 0 {
		return StateNeutral
	}
	return e.thresholds[len(e.thresholds)-1].State
}

func countOccurrences(lowered string, words []string) int {
	total := 0
	for _, word := range words {
		if word == "" {
			continue
		}
		total += strings.Count(lowered, word)
	}
	return total
}

func containsTrigger(lowered string, triggers []string) bool {
	for _, trigger := range triggers {
		trigger = strings.ToLower(strings.TrimSpace(trigger))
		if trigger == "" {
			continue
		}
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}
