package objective

import (
	"fmt"
	"testing"
)

func TestUpdateTopicCountersAccumulate(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	tracker.Update(set, topics, intents, "my code has a bug", "let's debug your code together")
	first := topics["coding"]
	if first == 0 {
		t.Fatalf("expected coding matches, got %v", topics)
	}

	tracker.Update(set, topics, intents, "more code talk", "")
	if topics["coding"] <= first {
		t.Fatalf("expected counter to grow, got %d then %d", first, topics["coding"])
	}
}

func TestUpdateIntentFiresOncePerTurn(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	// Two advice patterns in one message still count once.
	tracker.Update(set, topics, intents, "what should I do? any advice for me?", "")
	if intents["seeking_advice"] != 1 {
		t.Fatalf("expected one firing, got %d", intents["seeking_advice"])
	}
}

func TestUpdateIntentsIgnoreAgentText(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	tracker.Update(set, topics, intents, "hello", "what should I say? any advice?")
	if intents["seeking_advice"] != 0 {
		t.Fatalf("intent detected from agent text: %v", intents)
	}
}

func TestUpdateDistressInjectsEmpathyObjective(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	tracker.Update(set, Counters{}, Counters{}, "I feel completely hopeless lately", "")

	if !contains(set.Primary, "Respond empathetically") {
		t.Fatalf("missing empathy objective: %v", set.Primary)
	}
	if !contains(set.ShortTerm, "Support user's emotional state") {
		t.Fatalf("missing short-term support goal: %v", set.ShortTerm)
	}
}

func TestUpdateCodingAddsTaskOnce(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	tracker.Update(set, topics, intents, "stuck on a bug in my code", "")
	tracker.Update(set, topics, intents, "still debugging that code", "")

	count := 0
	for _, goal := range set.TaskSpecific {
		if goal.Task == taskCoding.Task {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one coding task, got %d in %v", count, set.TaskSpecific)
	}
}

func TestUpdateIntentMappingAddsObjectives(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"what should I cook tonight", "Provide helpful advice"},
		{"I am so frustrated with everything", "Respond empathetically"},
		{"what is the capital of France", "Provide accurate information"},
		{"let's plan our weekend trip", "Help with planning and organization"},
		{"I love you so much", "Nurture the romantic connection"},
	}

	for _, tc := range cases {
		tracker := NewTracker()
		set := &Set{}
		tracker.Update(set, Counters{}, Counters{}, tc.text, "")
		if !contains(set.Primary, tc.want) {
			t.Fatalf("text %q: expected %q in %v", tc.text, tc.want, set.Primary)
		}
	}
}

func TestUpdateTopTopicsPromoteLongTermGoals(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	tracker.Update(set, topics, intents, "my job and my boss and a work deadline", "")
	if !contains(set.LongTerm, topicGoalTable["work"]) {
		t.Fatalf("expected work goal in %v", set.LongTerm)
	}
}

func TestUpdateBoundsHoldUnderArbitrarySequences(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	topics := Counters{}
	intents := Counters{}

	texts := []string{
		"I feel hopeless and depressed about my job interview",
		"what should I do about my code bug",
		"let's plan a birthday gift for my girlfriend",
		"I am so frustrated with my boss at work",
		"what is a good movie, do you like music",
		"I love you, thinking of you on our trip",
		"how do I fix this, it's not working, I'm stuck",
		"we should study for the exam this weekend",
	}
	for round := 0; round < 10; round++ {
		for _, text := range texts {
			tracker.Update(set, topics, intents, text, "sure, "+text)
		}
	}

	if len(set.Primary) > MaxPrimary {
		t.Fatalf("primary overflow: %d", len(set.Primary))
	}
	if len(set.LongTerm) > MaxLongTerm {
		t.Fatalf("long-term overflow: %d", len(set.LongTerm))
	}
	if len(set.TaskSpecific) > MaxTaskSpecific {
		t.Fatalf("task overflow: %d", len(set.TaskSpecific))
	}
	assertUnique(t, set.Primary)
	assertUnique(t, set.ShortTerm)
	assertUnique(t, set.LongTerm)

	seen := map[string]bool{}
	for _, goal := range set.TaskSpecific {
		if seen[goal.Task] {
			t.Fatalf("duplicate task %q", goal.Task)
		}
		seen[goal.Task] = true
	}
}

func TestUpdateToleratesEmptyInputs(t *testing.T) {
	tracker := NewTracker()
	set := &Set{}
	tracker.Update(set, Counters{}, Counters{}, "", "")
	tracker.Update(nil, nil, nil, "anything", "anything")
	if len(set.Primary)+len(set.ShortTerm)+len(set.LongTerm)+len(set.TaskSpecific) != 0 {
		t.Fatalf("empty input mutated the set: %+v", set)
	}
}

func TestTopLabelsTiesBreakByCanonicalOrder(t *testing.T) {
	counters := Counters{"work": 3, "coding": 3, "travel": 1}
	top := topLabels(counters, TopicLabels)
	if fmt.Sprint(top) != fmt.Sprint([]string{"coding", "work"}) {
		t.Fatalf("unexpected ranking: %v", top)
	}
}

func TestDetectedLabelsAreOrderedAndNonzero(t *testing.T) {
	topics := Counters{"travel": 2, "coding": 1}
	if fmt.Sprint(DetectedTopics(topics)) != fmt.Sprint([]string{"coding", "travel"}) {
		t.Fatalf("unexpected detected topics: %v", DetectedTopics(topics))
	}
	if DetectedIntents(Counters{}) != nil {
		t.Fatalf("expected nil for empty counters")
	}
}

func TestNormalizeRestoresInvariants(t *testing.T) {
	set := &Set{
		Primary:  []string{"a", "b", "a", "c", "d", "e", "f", "g", "h"},
		LongTerm: []string{"x", "x", "y", "z", "w", "v", "u"},
		TaskSpecific: []TaskGoal{
			{Task: "one"}, {Task: "one"}, {Task: "two"}, {Task: "three"}, {Task: "four"},
		},
	}
	set.Normalize()
	if len(set.Primary) != MaxPrimary {
		t.Fatalf("primary not truncated: %v", set.Primary)
	}
	if len(set.LongTerm) != MaxLongTerm {
		t.Fatalf("long-term not truncated: %v", set.LongTerm)
	}
	if len(set.TaskSpecific) != MaxTaskSpecific {
		t.Fatalf("tasks not truncated: %v", set.TaskSpecific)
	}
}

func contains(list []string, want string) bool {
	for _, value := range list {
		if value == want {
			return true
		}
	}
	return false
}

func assertUnique(t *testing.T, list []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, value := range list {
		if seen[value] {
			t.Fatalf("duplicate entry %q in %v", value, list)
		}
		seen[value] = true
	}
}
