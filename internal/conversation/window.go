// Package conversation maintains the bounded turn window sent to the
// generation service.
package conversation

import "google.golang.org/genai"

// Role identifies a turn's speaker on the wire.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one entry in the window.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// DefaultMaxExchanges is the reference window size; legacy deployments
// run with 10.
const DefaultMaxExchanges = 15

// Window is the ordered turn sequence. When a persona directive has been
// seeded it occupies index 0 and is never evicted; capacity enforcement
// drops the oldest user/model pair after it instead.
type Window struct {
	turns        []Turn
	maxExchanges int
	hasDirective bool
}

// NewWindow returns an empty window. A maxExchanges of zero or less falls
// back to the default.
func NewWindow(maxExchanges int) *Window {
	if maxExchanges <= 0 {
		maxExchanges = DefaultMaxExchanges
	}
	return &Window{maxExchanges: maxExchanges}
}

// Restore rebuilds a window from persisted turns. hadDirective marks
// whether the first turn is the reserved persona directive.
func Restore(turns []Turn, maxExchanges int, hadDirective bool) *Window {
	w := NewWindow(maxExchanges)
	w.turns = append(w.turns, turns...)
	w.hasDirective = hadDirective && len(w.turns) > 0
	w.EnforceCapacity()
	return w
}

// SeedDirective places the persona directive at the head of an empty
// window. Seeding a non-empty window or seeding twice is a no-op.
func (w *Window) SeedDirective(text string) {
	if w.hasDirective || len(w.turns) > 0 || text == "" {
		return
	}
	w.turns = append(w.turns, Turn{Role: RoleUser, Text: text})
	w.hasDirective = true
}

// Append adds a turn at the tail.
func (w *Window) Append(role Role, text string) {
	w.turns = append(w.turns, Turn{Role: role, Text: text})
}

// EnforceCapacity evicts the oldest exchange while the window exceeds
// 2*maxExchanges+1 entries. With a directive present the pair at [1,2]
// goes; otherwise the pair at [0,1].
func (w *Window) EnforceCapacity() {
	limit := 2*w.maxExchanges + 1
	for len(w.turns) > limit {
		if w.hasDirective {
			w.turns = append(w.turns[:1], w.turns[3:]...)
		} else {
			w.turns = w.turns[2:]
		}
	}
}

// Len returns the number of turns currently held.
func (w *Window) Len() int {
	return len(w.turns)
}

// HasDirective reports whether the head entry is the reserved directive.
func (w *Window) HasDirective() bool {
	return w.hasDirective
}

// Turns returns a copy of the window.
func (w *Window) Turns() []Turn {
	out := make([]Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// Contents converts the window to the generation wire shape.
func (w *Window) Contents() []*genai.Content {
	contents := make([]*genai.Content, 0, len(w.turns))
	for _, turn := range w.turns {
		contents = append(contents, &genai.Content{
			Role:  string(turn.Role),
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	return contents
}
