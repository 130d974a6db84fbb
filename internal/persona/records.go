// Package persona defines the JSON configuration records a persona is
// assembled from and their degrade-to-empty loader.
package persona

import (
	"github.com/moodloop/amica/internal/mood"
	"github.com/moodloop/amica/internal/objective"
)

// Identity describes who the persona is.
type Identity struct {
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Traits             []string `json:"traits"`
	Background         string   `json:"background"`
	CommunicationStyle string   `json:"communication_style"`
	Values             []string `json:"values"`
	Goals              []string `json:"goals"`
	Likes              []string `json:"likes"`
	Dislikes           []string `json:"dislikes"`
	Catchphrases       []string `json:"catchphrases"`
}

// IsZero reports whether no identity data was loaded.
func (i Identity) IsZero() bool {
	return i.Name == "" && i.Background == "" && len(i.Traits) == 0
}

// BigFive holds the five-factor scores, each in [0,1].
type BigFive struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Personality describes how the persona thinks and behaves.
type Personality struct {
	MBTIType        string   `json:"mbti_type"`
	MBTIDescription string   `json:"mbti_description"`
	BigFive         BigFive  `json:"big_five"`
	Temperament     string   `json:"temperament"`
	ThinkingStyle   string   `json:"thinking_style"`
	DecisionStyle   string   `json:"decision_style"`
	SocialBehavior  string   `json:"social_behavior"`
	ConflictStyle   string   `json:"conflict_style"`
	LearningStyle   string   `json:"learning_style"`
	StressResponse  string   `json:"stress_response"`
	Motivators      []string `json:"motivators"`
	Demotivators    []string `json:"demotivators"`
}

// IsZero reports whether no personality data was loaded.
func (p Personality) IsZero() bool {
	return p.MBTIType == "" && p.Temperament == "" && p.ThinkingStyle == ""
}

// MoodRecord is the persisted mood block plus optional context.
type MoodRecord struct {
	CurrentMood          mood.Mood             `json:"current_mood"`
	EmotionalTemperature *EmotionalTemperature `json:"emotional_temperature,omitempty"`
	ContextualFlags      map[string]string     `json:"contextual_flags,omitempty"`
}

// EmotionalTemperature is an optional session-wide warmth scalar.
type EmotionalTemperature struct {
	Overall float64 `json:"overall"`
}

// JealousyBehavior configures the trigger-word override of the mood
// engine.
type JealousyBehavior struct {
	TriggerWords []string `json:"trigger_words"`
}

// Relationship describes the persona-user bond.
type Relationship struct {
	Type                string             `json:"type"`
	Nicknames           []string           `json:"nicknames"`
	EmotionalTone       map[string]float64 `json:"emotional_tone"`
	CommunicationStyle  string             `json:"communication_style"`
	RelationshipHistory string             `json:"relationship_history"`
	SharedMemory        []string           `json:"shared_memory"`
	JealousyBehavior    JealousyBehavior   `json:"jealousy_behavior"`
	CustomBehaviorFlags map[string]string  `json:"custom_behavior_flags"`
}

// IsZero reports whether no relationship data was loaded.
func (r Relationship) IsZero() bool {
	return r.Type == "" && len(r.Nicknames) == 0 && r.RelationshipHistory == ""
}

// PartnerDetails is the nested record describing the user as the persona
// knows them.
type PartnerDetails struct {
	Personal   PartnerPersonal   `json:"personal"`
	Appearance PartnerAppearance `json:"appearance"`
	Education  PartnerEducation  `json:"education"`
	Career     PartnerCareer     `json:"career"`
	Favorites  PartnerFavorites  `json:"favorites"`
}

// IsZero reports whether no partner data was loaded.
func (p PartnerDetails) IsZero() bool {
	return p.Personal.Name == "" && p.Career.Occupation == "" && p.Education.Field == ""
}

type PartnerPersonal struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
}

type PartnerAppearance struct {
	Height    string `json:"height"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
	Style     string `json:"style"`
}

type PartnerEducation struct {
	Level       string `json:"level"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

type PartnerCareer struct {
	Occupation string `json:"occupation"`
	Company    string `json:"company"`
	Ambitions  string `json:"ambitions"`
}

type PartnerFavorites struct {
	Foods   []string `json:"foods"`
	Music   []string `json:"music"`
	Movies  []string `json:"movies"`
	Hobbies []string `json:"hobbies"`
}

// ObjectiveRecord seeds the objective tracker at session start.
type ObjectiveRecord struct {
	ConversationObjectives []string          `json:"conversation_objectives"`
	ConversationGoals      ConversationGoals `json:"conversation_goals"`
}

// ConversationGoals mirrors the goal granularities of the tracker.
type ConversationGoals struct {
	ShortTerm    []string             `json:"short_term"`
	LongTerm     []string             `json:"long_term"`
	TaskSpecific []objective.TaskGoal `json:"task_specific"`
}

// ToSet converts the record into a tracker set with bounds applied.
func (o ObjectiveRecord) ToSet() objective.Set {
	set := objective.Set{
		Primary:      append([]string(nil), o.ConversationObjectives...),
		ShortTerm:    append([]string(nil), o.ConversationGoals.ShortTerm...),
		LongTerm:     append([]string(nil), o.ConversationGoals.LongTerm...),
		TaskSpecific: append([]objective.TaskGoal(nil), o.ConversationGoals.TaskSpecific...),
	}
	set.Normalize()
	return set
}

// Records bundles everything the loader found for one persona.
type Records struct {
	Identity     Identity
	Personality  Personality
	Mood         MoodRecord
	Relationship Relationship
	Partner      PartnerDetails
	Objective    ObjectiveRecord
}
