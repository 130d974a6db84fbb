package objective

// TaskGoal is a task-specific goal keyed by its task text.
type TaskGoal struct {
	Task            string `json:"task"`
	SuccessCriteria string `json:"success_criteria"`
	Importance      string `json:"importance"`
}

// Bounds on the tracked goal lists. Short-term goals are unbounded but
// deduplicated.
const (
	MaxPrimary      = 6
	MaxLongTerm     = 5
	MaxTaskSpecific = 3
)

// Set is the tracked goal structure. All lists are insertion-ordered and
// deduplicated; bounded lists evict their oldest entry on overflow.
type Set struct {
	Primary      []string   `json:"primary_objectives"`
	ShortTerm    []string   `json:"short_term_goals"`
	LongTerm     []string   `json:"long_term_goals"`
	TaskSpecific []TaskGoal `json:"task_specific_goals"`
}

// Counters tallies cumulative label matches across a session. Counts
// never reset and never decrease.
type Counters map[string]int

// AddPrimary inserts a primary objective, evicting the oldest beyond the
// bound. Insertion is a no-op if the objective is already present.
func (s *Set) AddPrimary(objective string) {
	s.Primary = appendBounded(s.Primary, objective, MaxPrimary)
}

// AddShortTerm inserts a short-term goal if not already present.
func (s *Set) AddShortTerm(goal string) {
	s.ShortTerm = appendBounded(s.ShortTerm, goal, 0)
}

// AddLongTerm inserts a long-term goal, evicting the oldest beyond the
// bound.
func (s *Set) AddLongTerm(goal string) {
	s.LongTerm = appendBounded(s.LongTerm, goal, MaxLongTerm)
}

// AddTask inserts a task-specific goal keyed by its task text. Duplicate
// tasks are skipped; on overflow only the most recent entries survive.
func (s *Set) AddTask(goal TaskGoal) {
	for _, existing := range s.TaskSpecific {
		if existing.Task == goal.Task {
			return
		}
	}
	s.TaskSpecific = append(s.TaskSpecific, goal)
	if len(s.TaskSpecific) > MaxTaskSpecific {
		s.TaskSpecific = s.TaskSpecific[len(s.TaskSpecific)-MaxTaskSpecific:]
	}
}

// Normalize re-applies set semantics and bounds to every list. Restored
// snapshots pass through here so hand-edited or legacy state cannot
// violate the invariants.
func (s *Set) Normalize() {
	s.Primary = dedupe(s.Primary, MaxPrimary)
	s.ShortTerm = dedupe(s.ShortTerm, 0)
	s.LongTerm = dedupe(s.LongTerm, MaxLongTerm)

	seen := make(map[string]bool, len(s.TaskSpecific))
	tasks := s.TaskSpecific[:0]
	for _, goal := range s.TaskSpecific {
		if goal.Task == "" || seen[goal.Task] {
			continue
		}
		seen[goal.Task] = true
		tasks = append(tasks, goal)
	}
	if len(tasks) > MaxTaskSpecific {
		tasks = tasks[len(tasks)-MaxTaskSpecific:]
	}
	s.TaskSpecific = tasks
}

// appendBounded inserts value preserving uniqueness and first-seen order.
// A max of 0 means unbounded.
func appendBounded(list []string, value string, max int) []string {
	if value == "" {
		return list
	}
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	list = append(list, value)
	if max > 0 && len(list) > max {
		list = list[len(list)-max:]
	}
	return list
}

func dedupe(list []string, max int) []string {
	seen := make(map[string]bool, len(list))
	out := list[:0]
	for _, value := range list {
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	if max > 0 && len(out) > max {
		out = out[len(out)-max:]
	}
	return out
}
