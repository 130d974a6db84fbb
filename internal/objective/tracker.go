// Package objective tracks conversational goals from keyword and regex
// signals. Classification is deterministic substring/regex matching; there
// is no tokenization and no learned model.
package objective

import (
	"sort"
	"strings"
)

// topPromotions is how many leading topics and intents feed goal
// promotion each turn.
const topPromotions = 2

// Tracker updates an objective set from per-turn text signals.
type Tracker struct{}

// NewTracker returns a Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update applies one turn's signals. Topic counters accumulate substring
// matches over the combined text; intent counters gain at most one per
// intent per turn from the user text; both drive goal promotion. The set
// and counters are mutated in place. Update tolerates empty inputs and
// never fails.
func (t *Tracker) Update(set *Set, topics, intents Counters, userText, agentText string) {
	if set == nil || topics == nil || intents == nil {
		return
	}

	combined := strings.ToLower(strings.TrimSpace(userText + " " + agentText))

	t.countTopics(topics, combined)
	t.detectIntents(intents, userText)
	t.injectRuleObjectives(set, combined)
	t.mapIntentsToObjectives(set, intents, userText)
	t.promoteTopTopics(set, topics)
	t.promoteTopIntents(set, intents)

	set.Normalize()
}

// DetectedTopics returns the labels with a nonzero counter, in canonical
// order.
func DetectedTopics(topics Counters) []string {
	var out []string
	for _, label := range TopicLabels {
		if topics[label] > 0 {
			out = append(out, label)
		}
	}
	return out
}

// DetectedIntents returns the labels with a nonzero counter, in canonical
// order.
func DetectedIntents(intents Counters) []string {
	var out []string
	for _, label := range IntentLabels {
		if intents[label] > 0 {
			out = append(out, label)
		}
	}
	return out
}

func (t *Tracker) countTopics(topics Counters, combined string) {
	if combined == "" {
		return
	}
	for _, label := range TopicLabels {
		matches := 0
		for _, word := range topicLexicons[label] {
			matches += strings.Count(combined, word)
		}
		if matches > 0 {
			topics[label] += matches
		}
	}
}

func (t *Tracker) detectIntents(intents Counters, userText string) {
	if strings.TrimSpace(userText) == "" {
		return
	}
	for _, label := range IntentLabels {
		for _, pattern := range intentPatterns[label] {
			if pattern.MatchString(userText) {
				intents[label]++
				break
			}
		}
	}
}

// injectRuleObjectives applies the fixed keyword rules that add
// objectives regardless of counter state.
func (t *Tracker) injectRuleObjectives(set *Set, combined string) {
	if combined == "" {
		return
	}
	if distressPattern.MatchString(combined) {
		set.AddPrimary(objectiveEmpathy)
		set.AddShortTerm(goalSupportEmotion)
	}
	if codingPattern.MatchString(combined) {
		set.AddTask(taskCoding)
	}
	if giftPattern.MatchString(combined) {
		set.AddTask(taskGift)
	}
	if careerPattern.MatchString(combined) {
		set.AddTask(taskCareer)
	}
	if datingPattern.MatchString(combined) {
		set.AddTask(taskRelationship)
	}
}

// mapIntentsToObjectives adds the fixed objectives for intents that fired
// on this turn's user text.
func (t *Tracker) mapIntentsToObjectives(set *Set, intents Counters, userText string) {
	fired := func(label string) bool {
		for _, pattern := range intentPatterns[label] {
			if pattern.MatchString(userText) {
				return true
			}
		}
		return false
	}

	if fired("seeking_advice") || fired("problem_solving") {
		set.AddPrimary(objectiveAdvice)
		set.AddShortTerm(goalSolveProblem)
	}
	if fired("venting") || fired("seeking_emotional_support") {
		set.AddPrimary(objectiveEmpathy)
		set.AddShortTerm(goalSupportEmotion)
	}
	if fired("asking_information") {
		set.AddPrimary(objectiveInformation)
	}
	if fired("making_plans") {
		set.AddPrimary(objectivePlanning)
	}
	if fired("romantic_situation") {
		set.AddPrimary(objectiveRomance)
	}
}

func (t *Tracker) promoteTopTopics(set *Set, topics Counters) {
	for _, label := range topLabels(topics, TopicLabels) {
		if goal, ok := topicGoalTable[label]; ok {
			set.AddLongTerm(goal)
		}
	}
}

func (t *Tracker) promoteTopIntents(set *Set, intents Counters) {
	for _, label := range topLabels(intents, IntentLabels) {
		if objective, ok := intentObjectiveTable[label]; ok {
			set.AddPrimary(objective)
		}
	}
}

// topLabels ranks nonzero counters descending; ties break by the
// canonical label order so ranking is deterministic.
func topLabels(counters Counters, order []string) []string {
	ranked := make([]string, 0, len(order))
	for _, label := range order {
		if counters[label] > 0 {
			ranked = append(ranked, label)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return counters[ranked[i]] > counters[ranked[j]]
	})
	if len(ranked) > topPromotions {
		ranked = ranked[:topPromotions]
	}
	return ranked
}
