// Package prompt assembles the persona directive seeded as the head of a
// fresh conversation window.
package prompt

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
	"github.com/moodloop/amica/internal/persona"
)

// ComposeContext carries every record the directive is built from. Any
// absent record simply omits its section.
type ComposeContext struct {
	Identity     persona.Identity
	Partner      persona.PartnerDetails
	Personality  persona.Personality
	Mood         mood.Mood
	Relationship persona.Relationship
	Objectives   objective.Set
	Intents      objective.Counters
	Topics       objective.Counters
}

// Composer renders the persona directive. Composition is deterministic:
// identical inputs produce byte-identical output.
type Composer struct{}

// NewComposer returns a Composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the directive text block.
func (c *Composer) Compose(ctx ComposeContext) (string, error) {
	data := struct {
		Identity        persona.Identity
		HasIdentity     bool
		Partner         persona.PartnerDetails
		HasPartner      bool
		Personality     persona.Personality
		HasPersonality  bool
		Mood            mood.Mood
		HasMood         bool
		Relationship    persona.Relationship
		HasRelationship bool
		Objectives      objective.Set
		HasObjectives   bool
		DetectedIntents []string
		DetectedTopics  []string
		ToneLines       []string
	}{
		Identity:        ctx.Identity,
		HasIdentity:     !ctx.Identity.IsZero(),
		Partner:         ctx.Partner,
		HasPartner:      !ctx.Partner.IsZero(),
		Personality:     ctx.Personality,
		HasPersonality:  !ctx.Personality.IsZero(),
		Mood:            ctx.Mood,
		HasMood:         ctx.Mood.State != "",
		Relationship:    ctx.Relationship,
		HasRelationship: !ctx.Relationship.IsZero(),
		Objectives:      ctx.Objectives,
		DetectedIntents: objective.DetectedIntents(ctx.Intents),
		DetectedTopics:  objective.DetectedTopics(ctx.Topics),
		ToneLines:       toneLines(ctx.Relationship.EmotionalTone),
	}
	data.HasObjectives = len(ctx.Objectives.Primary)+len(ctx.Objectives.ShortTerm)+
		len(ctx.Objectives.LongTerm)+len(ctx.Objectives.TaskSpecific)+
		len(data.DetectedIntents)+len(data.DetectedTopics) > 0

	var buf bytes.Buffer
	if err := directiveTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compose persona directive: %w", err)
	}
	return buf.String(), nil
}

// toneLines renders the emotional tone percentages in sorted label order
// so the output stays deterministic across runs.
func toneLines(tone map[string]float64) []string {
	labels := make([]string, 0, len(tone))
	for label := range tone {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s: %.0f%%", label, tone[label]))
	}
	return lines
}
