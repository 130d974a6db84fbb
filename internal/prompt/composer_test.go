package prompt

import (
	"strings"
	"testing"

	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
	"github.com/moodloop/amica/internal/persona"
)

func fullContext() ComposeContext {
	return ComposeContext{
		Identity: persona.Identity{
			Name:               "Aiko",
			Age:                24,
			Gender:             "female",
			Traits:             []string{"playful", "caring"},
			Background:         "Grew up by the sea.",
			CommunicationStyle: "warm and teasing",
			Catchphrases:       []string{"you know~"},
		},
		Partner: persona.PartnerDetails{
			Personal: persona.PartnerPersonal{Name: "Sam", Age: 27, Location: "Berlin"},
			Career:   persona.PartnerCareer{Occupation: "engineer", Company: "a startup"},
			Favorites: persona.PartnerFavorites{
				Foods:   []string{"ramen"},
				Hobbies: []string{"climbing", "chess"},
			},
		},
		Personality: persona.Personality{
			MBTIType:       "ENFP",
			Temperament:    "sanguine",
			ThinkingStyle:  "intuitive",
			SocialBehavior: "outgoing",
			Motivators:     []string{"connection"},
		},
		Mood: mood.Mood{
			State:       mood.StateHappy,
			Intensity:   0.72,
			EmotionTags: []string{"cheerful", "warm"},
		},
		Relationship: persona.Relationship{
			Type:                "girlfriend",
			Nicknames:           []string{"sweetheart"},
			EmotionalTone:       map[string]float64{"playful": 60, "affectionate": 80},
			CommunicationStyle:  "gentle teasing",
			RelationshipHistory: "Together for a year.",
			SharedMemory:        []string{"first trip to Kyoto"},
		},
		Objectives: objective.Set{
			Primary:   []string{"Respond empathetically"},
			ShortTerm: []string{"Ask about their day"},
			LongTerm:  []string{"Build emotional trust and safety"},
			TaskSpecific: []objective.TaskGoal{
				{Task: "Plan a birthday surprise", SuccessCriteria: "An idea is chosen", Importance: "high"},
			},
		},
		Intents: objective.Counters{"venting": 2},
		Topics:  objective.Counters{"work": 3, "travel": 1},
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := NewComposer()
	ctx := fullContext()

	first, err := composer.Compose(ctx)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := composer.Compose(fullContext())
		if err != nil {
			t.Fatalf("compose failed: %v", err)
		}
		if again != first {
			t.Fatalf("output differs between calls:\n%s\n---\n%s", first, again)
		}
	}
}

func TestComposeSectionOrder(t *testing.T) {
	directive, err := NewComposer().Compose(fullContext())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	sections := []string{
		"[Identity]", "[Your partner]", "[Personality]", "[Current mood]",
		"[Relationship]", "[Conversation objectives]", "[How to behave]",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(directive, section)
		if idx < 0 {
			t.Fatalf("missing section %s in:\n%s", section, directive)
		}
		if idx < last {
			t.Fatalf("section %s out of order in:\n%s", section, directive)
		}
		last = idx
	}
}

func TestComposeOmitsAbsentSections(t *testing.T) {
	directive, err := NewComposer().Compose(ComposeContext{
		Identity: persona.Identity{Name: "Aiko"},
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	for _, section := range []string{"[Your partner]", "[Personality]", "[Current mood]", "[Relationship]", "[Conversation objectives]"} {
		if strings.Contains(directive, section) {
			t.Fatalf("unexpected section %s in:\n%s", section, directive)
		}
	}
	if !strings.Contains(directive, "[Identity]") || !strings.Contains(directive, "[How to behave]") {
		t.Fatalf("expected identity and suffix in:\n%s", directive)
	}
}

func TestComposeEmptyContextStillCarriesBehavioralSuffix(t *testing.T) {
	directive, err := NewComposer().Compose(ComposeContext{})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if !strings.HasPrefix(directive, "[How to behave]") {
		t.Fatalf("expected bare behavioral suffix, got:\n%s", directive)
	}
}

func TestComposeRendersDetectedSignals(t *testing.T) {
	directive, err := NewComposer().Compose(fullContext())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if !strings.Contains(directive, "Recurring user intents: venting") {
		t.Fatalf("missing intents in:\n%s", directive)
	}
	if !strings.Contains(directive, "Recurring topics: work, travel") {
		t.Fatalf("missing topics in:\n%s", directive)
	}
	if !strings.Contains(directive, "affectionate: 80%, playful: 60%") {
		t.Fatalf("missing tone lines in:\n%s", directive)
	}
}
