package mood

// Lexicons are the fixed word lists scored by the engine. Occurrences are
// substring matches over the lower-cased text.
type Lexicons struct {
	Positive   []string
	Negative   []string
	Question   []string
	Excitement []string
}

// Threshold binds a state to the minimum intensity that selects it.
type Threshold struct {
	State        State
	MinIntensity float64
}

// DefaultLexicons is the reference vocabulary.
var DefaultLexicons = Lexicons{
	Positive: []string{
		"love", "happy", "great", "awesome", "wonderful", "amazing",
		"good", "nice", "beautiful", "sweet", "thank", "glad", "fun",
	},
	Negative: []string{
		"sad", "angry", "hate", "terrible", "awful", "bad", "tired",
		"upset", "annoyed", "lonely", "stressed", "worried", "hurt",
	},
	Question: []string{
		"what", "why", "how", "when", "where", "who", "?",
	},
	Excitement: []string{
		"wow", "omg", "yay", "excited", "can't wait", "amazing",
		"incredible", "!!",
	},
}

// DefaultThresholds is the reference state table, ordered highest first.
// Selection scans from the top and takes the first state whose minimum
// the new intensity reaches, so ties favor the higher-threshold state.
var DefaultThresholds = []Threshold{
	{StateExcited, 0.85},
	{StateRomantic, 0.75},
	{StateHappy, 0.65},
	{StateCurious, 0.55},
	{StateCalm, 0.45},
	{StateNeutral, 0.3},
	{StateSad, 0.1},
}

// LegacyThresholds is the older table that tops out at romantic instead
// of excited. Kept selectable because deployed personas differ on which
// table they were tuned against.
var LegacyThresholds = []Threshold{
	{StateRomantic, 0.85},
	{StateExcited, 0.75},
	{StateHappy, 0.65},
	{StateCurious, 0.55},
	{StateCalm, 0.45},
	{StateNeutral, 0.3},
	{StateSad, 0.1},
}

// tagTable maps each state to its fixed emotion tags.
var tagTable = map[State][]string{
	StateSad:      {"melancholic", "reflective"},
	StateNeutral:  {"balanced", "attentive"},
	StateCalm:     {"peaceful", "gentle"},
	StateCurious:  {"inquisitive", "engaged"},
	StateHappy:    {"cheerful", "warm"},
	StateRomantic: {"affectionate", "tender"},
	StateExcited:  {"enthusiastic", "energetic"},
	StateJealous:  {"jealous", "protective", "insecure"},
}

// defaultTags is returned for any state outside the table.
var defaultTags = []string{"balanced", "present"}

// TagsFor returns the fixed emotion tags for a state. The result is a
// copy; callers may not mutate the table through it.
func TagsFor(state State) []string {
	tags, ok := tagTable[state]
	if !ok {
		tags = defaultTags
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
